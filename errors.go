package orderfixtures

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrUnhandledScenarioVariant represents a scenario field outside its enumeration
	ErrUnhandledScenarioVariant = errors.New("unhandled scenario variant")

	// ErrMissingFixtureData represents a scenario the fixture cannot back
	ErrMissingFixtureData = errors.New("missing fixture data")

	// ErrInvalidFixture represents a fixture context that cannot be used at all
	ErrInvalidFixture = errors.New("invalid fixture")

	// ErrInvalidParam represents an invalid parameter error
	ErrInvalidParam = errors.New("invalid parameter")
)

// UnhandledScenarioError names the scenario dimension and the value it carried
type UnhandledScenarioError struct {
	Dimension string
	Value     string
}

func (e *UnhandledScenarioError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnhandledScenarioVariant, e.Dimension, e.Value)
}

func (e *UnhandledScenarioError) Unwrap() error {
	return ErrUnhandledScenarioVariant
}

// MissingFixtureDataError describes which lookup came back empty
type MissingFixtureDataError struct {
	Message string
	Owner   common.Address
}

func (e *MissingFixtureDataError) Error() string {
	if e.Owner == (common.Address{}) {
		return fmt.Sprintf("%s: %s", ErrMissingFixtureData, e.Message)
	}
	return fmt.Sprintf("%s: %s for %s", ErrMissingFixtureData, e.Message, e.Owner.Hex())
}

func (e *MissingFixtureDataError) Unwrap() error {
	return ErrMissingFixtureData
}

// InvalidParamError represents an invalid parameter error with context
type InvalidParamError struct {
	Message string
}

func (e *InvalidParamError) Error() string {
	return e.Message
}

func (e *InvalidParamError) Unwrap() error {
	return ErrInvalidParam
}
