package orderfixtures

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
	log "github.com/sirupsen/logrus"
)

// ScenarioResolver generates orders from scenarios against a fixed fixture.
// It holds no mutable state and is safe for concurrent use.
type ScenarioResolver struct {
	fixture *FixtureContext
	codec   chain.AssetCodec
}

// NewScenarioResolver creates a resolver over a copy of fixture. A nil codec
// selects chain.DefaultAssetCodec.
func NewScenarioResolver(fixture FixtureContext, codec chain.AssetCodec) (*ScenarioResolver, error) {
	if err := fixture.validate(); err != nil {
		return nil, err
	}
	if codec == nil {
		codec = chain.DefaultAssetCodec{}
	}
	return &ScenarioResolver{
		fixture: fixture.clone(),
		codec:   codec,
	}, nil
}

// GenerateOrder resolves every dimension of scenario into an order. Apart
// from the salt the result depends only on the fixture and the scenario.
func (r *ScenarioResolver) GenerateOrder(scenario OrderScenario) (*chain.Order, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	makerAddress := r.fixture.UserAddresses[MakerAddressIndex]
	takerAddress := r.fixture.UserAddresses[TakerAddressIndex]

	feeRecipientAddress, err := r.feeRecipientAddress(scenario.FeeRecipientScenario)
	if err != nil {
		return nil, err
	}

	makerAssetData, err := r.assetData("makerAssetDataScenario", scenario.MakerAssetDataScenario, makerAddress, 0)
	if err != nil {
		return nil, err
	}
	// ERC721 lookups use the correct taker even when the order names another
	takerAssetData, err := r.assetData("takerAssetDataScenario", scenario.TakerAssetDataScenario, takerAddress, 1)
	if err != nil {
		return nil, err
	}

	makerAssetAmount, err := AssetAmount("makerAssetAmountScenario", scenario.MakerAssetAmountScenario, scenario.MakerAssetDataScenario)
	if err != nil {
		return nil, err
	}
	takerAssetAmount, err := AssetAmount("takerAssetAmountScenario", scenario.TakerAssetAmountScenario, scenario.TakerAssetDataScenario)
	if err != nil {
		return nil, err
	}

	makerFee, err := FeeAmount("makerFeeScenario", scenario.MakerFeeScenario)
	if err != nil {
		return nil, err
	}
	takerFee, err := FeeAmount("takerFeeScenario", scenario.TakerFeeScenario)
	if err != nil {
		return nil, err
	}

	expirationTimeSeconds, err := expirationTimeSeconds(scenario.ExpirationTimeSecondsScenario)
	if err != nil {
		return nil, err
	}

	switch scenario.TakerScenario {
	case TakerScenarioCorrectlySpecified:
		// already the taker the fixture funded
	case TakerScenarioIncorrectlySpecified:
		takerAddress = r.fixture.UserAddresses[NotTakerAddressIndex]
	case TakerScenarioUnspecified:
		takerAddress = chain.NullAddress
	default:
		return nil, unhandled("takerScenario", scenario.TakerScenario)
	}

	salt, err := r.codec.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	order := &chain.Order{
		SenderAddress:         r.fixture.SenderAddress,
		MakerAddress:          makerAddress,
		TakerAddress:          takerAddress,
		MakerFee:              makerFee,
		TakerFee:              takerFee,
		MakerAssetAmount:      makerAssetAmount,
		TakerAssetAmount:      takerAssetAmount,
		MakerAssetData:        makerAssetData,
		TakerAssetData:        takerAssetData,
		Salt:                  salt,
		ExchangeAddress:       r.fixture.ExchangeAddress,
		FeeRecipientAddress:   feeRecipientAddress,
		ExpirationTimeSeconds: expirationTimeSeconds,
	}

	log.WithFields(log.Fields{
		"makerAsset":  scenario.MakerAssetDataScenario,
		"takerAsset":  scenario.TakerAssetDataScenario,
		"makerAmount": makerAssetAmount.String(),
		"takerAmount": takerAssetAmount.String(),
		"taker":       scenario.TakerScenario,
	}).Debug("generated order from scenario")

	return order, nil
}

func (r *ScenarioResolver) feeRecipientAddress(scenario FeeRecipientAddressScenario) (common.Address, error) {
	switch scenario {
	case FeeRecipientAddressScenarioBurnAddress:
		return chain.NullAddress, nil
	case FeeRecipientAddressScenarioEthUserAddress:
		return r.fixture.UserAddresses[FeeRecipientAddressIndex], nil
	default:
		return common.Address{}, unhandled("feeRecipientScenario", scenario)
	}
}

// assetData encodes the asset of one order side. tokenIndex picks the
// maker's (0) or taker's (1) token out of the multi-token registries, and
// owner is whose ERC721 ids are looked up.
func (r *ScenarioResolver) assetData(dimension string, scenario AssetDataScenario, owner common.Address, tokenIndex int) ([]byte, error) {
	var (
		token common.Address
		err   error
	)

	switch scenario {
	case AssetDataScenarioZRXFeeToken:
		return r.codec.EncodeERC20AssetData(r.fixture.ZRXAddress)
	case AssetDataScenarioERC20NonZRXEighteenDecimals:
		token, err = tokenAt("non-ZRX 18 decimal tokens", r.fixture.NonZRXERC20EighteenDecimalTokenAddresses, tokenIndex)
		if err != nil {
			return nil, err
		}
		return r.codec.EncodeERC20AssetData(token)
	case AssetDataScenarioERC20FiveDecimals:
		token, err = tokenAt("5 decimal tokens", r.fixture.ERC20FiveDecimalTokenAddresses, tokenIndex)
		if err != nil {
			return nil, err
		}
		return r.codec.EncodeERC20AssetData(token)
	case AssetDataScenarioERC721:
		tokenID, err := r.fixture.firstERC721TokenID(owner)
		if err != nil {
			return nil, err
		}
		return r.codec.EncodeERC721AssetData(r.fixture.ERC721TokenAddress, tokenID)
	default:
		return nil, unhandled(dimension, scenario)
	}
}

func expirationTimeSeconds(scenario ExpirationTimeSecondsScenario) (*big.Int, error) {
	switch scenario {
	case ExpirationTimeSecondsScenarioInFuture:
		return big.NewInt(FarFutureExpirationTimeSeconds), nil
	case ExpirationTimeSecondsScenarioInPast:
		return new(big.Int), nil // Jan 1, 1970
	default:
		return nil, unhandled("expirationTimeSecondsScenario", scenario)
	}
}
