package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
)

// fixtureFile is the JSON layout of a fixture context. Token ids may be
// decimal or 0x-prefixed hex strings.
type fixtureFile struct {
	UserAddresses                            []common.Address                                             `json:"userAddresses"`
	SenderAddress                            common.Address                                               `json:"senderAddress"`
	ZRXAddress                               common.Address                                               `json:"zrxAddress"`
	NonZRXERC20EighteenDecimalTokenAddresses []common.Address                                             `json:"nonZrxErc20EighteenDecimalTokenAddresses"`
	ERC20FiveDecimalTokenAddresses           []common.Address                                             `json:"erc20FiveDecimalTokenAddresses"`
	ERC721TokenAddress                       common.Address                                               `json:"erc721TokenAddress"`
	ERC721Balances                           map[common.Address]map[common.Address][]*math.HexOrDecimal256 `json:"erc721Balances"`
	ExchangeAddress                          common.Address                                               `json:"exchangeAddress"`
}

func loadFixture(path string) (orderfixtures.FixtureContext, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return orderfixtures.FixtureContext{}, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var f fixtureFile
	if err := json.Unmarshal(content, &f); err != nil {
		return orderfixtures.FixtureContext{}, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}

	balances := make(orderfixtures.ERC721TokenIDsByOwner, len(f.ERC721Balances))
	for owner, byToken := range f.ERC721Balances {
		balances[owner] = make(map[common.Address][]*big.Int, len(byToken))
		for token, ids := range byToken {
			for _, id := range ids {
				if id == nil {
					return orderfixtures.FixtureContext{}, fmt.Errorf("null token id of %s for %s", token.Hex(), owner.Hex())
				}
				balances[owner][token] = append(balances[owner][token], (*big.Int)(id))
			}
		}
	}

	return orderfixtures.FixtureContext{
		UserAddresses:                            f.UserAddresses,
		SenderAddress:                            f.SenderAddress,
		ZRXAddress:                               f.ZRXAddress,
		NonZRXERC20EighteenDecimalTokenAddresses: f.NonZRXERC20EighteenDecimalTokenAddresses,
		ERC20FiveDecimalTokenAddresses:           f.ERC20FiveDecimalTokenAddresses,
		ERC721TokenAddress:                       f.ERC721TokenAddress,
		ERC721Balances:                           balances,
		ExchangeAddress:                          f.ExchangeAddress,
	}, nil
}

func loadScenario(path string) (orderfixtures.OrderScenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return orderfixtures.OrderScenario{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var s orderfixtures.OrderScenario
	if err := json.Unmarshal(content, &s); err != nil {
		return orderfixtures.OrderScenario{}, fmt.Errorf("failed to decode scenario %s: %w", path, err)
	}
	return s, nil
}
