package orderfixtures

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Roles of the entries in FixtureContext.UserAddresses
const (
	MakerAddressIndex        = 1
	TakerAddressIndex        = 2
	NotTakerAddressIndex     = 3
	FeeRecipientAddressIndex = 4

	minUserAddresses = FeeRecipientAddressIndex + 1
)

// ERC721TokenIDsByOwner maps owner address to token contract to owned ids
type ERC721TokenIDsByOwner map[common.Address]map[common.Address][]*big.Int

// FixtureContext is the deployed test environment orders are generated
// against.
type FixtureContext struct {
	UserAddresses                            []common.Address
	SenderAddress                            common.Address
	ZRXAddress                               common.Address
	NonZRXERC20EighteenDecimalTokenAddresses []common.Address
	ERC20FiveDecimalTokenAddresses           []common.Address
	ERC721TokenAddress                       common.Address
	ERC721Balances                           ERC721TokenIDsByOwner
	ExchangeAddress                          common.Address
}

func (f *FixtureContext) validate() error {
	if len(f.UserAddresses) < minUserAddresses {
		return fmt.Errorf("%w: need at least %d user addresses, got %d",
			ErrInvalidFixture, minUserAddresses, len(f.UserAddresses))
	}
	return nil
}

// clone copies the slices and maps so the caller cannot mutate a fixture
// that a resolver already holds.
func (f *FixtureContext) clone() *FixtureContext {
	balances := make(ERC721TokenIDsByOwner, len(f.ERC721Balances))
	for owner, byToken := range f.ERC721Balances {
		tokens := make(map[common.Address][]*big.Int, len(byToken))
		for token, ids := range byToken {
			copied := make([]*big.Int, len(ids))
			for i, id := range ids {
				copied[i] = new(big.Int).Set(id)
			}
			tokens[token] = copied
		}
		balances[owner] = tokens
	}

	return &FixtureContext{
		UserAddresses:                            append([]common.Address(nil), f.UserAddresses...),
		SenderAddress:                            f.SenderAddress,
		ZRXAddress:                               f.ZRXAddress,
		NonZRXERC20EighteenDecimalTokenAddresses: append([]common.Address(nil), f.NonZRXERC20EighteenDecimalTokenAddresses...),
		ERC20FiveDecimalTokenAddresses:           append([]common.Address(nil), f.ERC20FiveDecimalTokenAddresses...),
		ERC721TokenAddress:                       f.ERC721TokenAddress,
		ERC721Balances:                           balances,
		ExchangeAddress:                          f.ExchangeAddress,
	}
}

// firstERC721TokenID returns the first id owner holds of the fixture's ERC721
// token.
func (f *FixtureContext) firstERC721TokenID(owner common.Address) (*big.Int, error) {
	ids := f.ERC721Balances[owner][f.ERC721TokenAddress]
	if len(ids) == 0 {
		return nil, &MissingFixtureDataError{
			Message: fmt.Sprintf("no ERC721 token ids of %s", f.ERC721TokenAddress.Hex()),
			Owner:   owner,
		}
	}
	return new(big.Int).Set(ids[0]), nil
}

// tokenAt returns the token at index, or the last registered one when the
// registry is shorter.
func tokenAt(registry string, tokens []common.Address, index int) (common.Address, error) {
	if len(tokens) == 0 {
		return common.Address{}, &MissingFixtureDataError{Message: fmt.Sprintf("no %s registered", registry)}
	}
	if index >= len(tokens) {
		index = len(tokens) - 1
	}
	return tokens[index], nil
}
