// Example usage of the order fixtures library
package main

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
)

func main() {
	// Addresses of a local ganache snapshot, replace with your deployment
	users := []common.Address{
		common.HexToAddress("0x5409ed021d9299bf6814279a6a1411a7e866a631"), // coinbase
		common.HexToAddress("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb"), // maker
		common.HexToAddress("0xe36ea790bc9d7ab70c55260c66d52b1eca985f84"), // taker
		common.HexToAddress("0xe834ec434daba538cd1b9fe1582052b880bd7e63"), // not the taker
		common.HexToAddress("0x78dc5d2d739606d31509c31d654056a45185ecb6"), // fee recipient
	}
	erc721Token := common.HexToAddress("0x07f96aa816c1f244cbc6ef114bb2b023ba54a2eb")

	fixture := orderfixtures.FixtureContext{
		UserAddresses: users,
		ZRXAddress:    common.HexToAddress("0x871dd7c2b4b25e1aa18728e9d5f2af4c4e431f5c"),
		NonZRXERC20EighteenDecimalTokenAddresses: []common.Address{
			common.HexToAddress("0x1d7022f5b17d2f8b695918fb48fa1089c9f85401"),
			common.HexToAddress("0x0b1ba0af832d7c05fd64161e0db78e85978e8082"),
		},
		ERC20FiveDecimalTokenAddresses: []common.Address{
			common.HexToAddress("0x34d402f14d58e001d8efbe6585051bf9706aa064"),
		},
		ERC721TokenAddress: erc721Token,
		ERC721Balances: orderfixtures.ERC721TokenIDsByOwner{
			users[orderfixtures.MakerAddressIndex]: {erc721Token: {big.NewInt(1)}},
			users[orderfixtures.TakerAddressIndex]: {erc721Token: {big.NewInt(2)}},
		},
		ExchangeAddress: common.HexToAddress("0x48bacb9266a570d521063ef5dd96e61686dbe788"),
	}

	resolver, err := orderfixtures.NewScenarioResolver(fixture, nil)
	if err != nil {
		log.Fatalf("Failed to create resolver: %v", err)
	}

	// Example: a ZRX for five-decimal token order anyone may fill
	scenario := orderfixtures.OrderScenario{
		FeeRecipientScenario:          orderfixtures.FeeRecipientAddressScenarioBurnAddress,
		MakerAssetDataScenario:        orderfixtures.AssetDataScenarioZRXFeeToken,
		TakerAssetDataScenario:        orderfixtures.AssetDataScenarioERC20FiveDecimals,
		MakerAssetAmountScenario:      orderfixtures.OrderAssetAmountScenarioLarge,
		TakerAssetAmountScenario:      orderfixtures.OrderAssetAmountScenarioSmall,
		MakerFeeScenario:              orderfixtures.OrderAssetAmountScenarioZero,
		TakerFeeScenario:              orderfixtures.OrderAssetAmountScenarioZero,
		ExpirationTimeSecondsScenario: orderfixtures.ExpirationTimeSecondsScenarioInFuture,
		TakerScenario:                 orderfixtures.TakerScenarioUnspecified,
	}

	order, err := resolver.GenerateOrder(scenario)
	if err != nil {
		log.Fatalf("Failed to generate order: %v", err)
	}
	fmt.Printf("Order: %+v\n", orderfixtures.NewOrderJSON(order))
	fmt.Printf("Maker sells %s ZRX for %s taker tokens\n",
		orderfixtures.FormatUnits(order.MakerAssetAmount, scenario.MakerAssetDataScenario.Decimals()),
		orderfixtures.FormatUnits(order.TakerAssetAmount, scenario.TakerAssetDataScenario.Decimals()),
	)

	// Example: an NFT swap between the funded maker and taker
	scenario.MakerAssetDataScenario = orderfixtures.AssetDataScenarioERC721
	scenario.TakerAssetDataScenario = orderfixtures.AssetDataScenarioERC721
	scenario.TakerScenario = orderfixtures.TakerScenarioCorrectlySpecified
	order, err = resolver.GenerateOrder(scenario)
	if err != nil {
		log.Fatalf("Failed to generate order: %v", err)
	}
	takerAsset, err := chain.DecodeAssetData(order.TakerAssetData)
	if err != nil {
		log.Fatalf("Failed to decode asset data: %v", err)
	}
	fmt.Printf("Taker gives token %s of %s\n", takerAsset.TokenID, takerAsset.TokenAddress.Hex())

	// Example: check the proxy authorization of the exchange
	config, err := orderfixtures.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	client, err := orderfixtures.NewClient(config)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authorized, err := client.IsExchangeAuthorized(ctx, fixture.ExchangeAddress)
	if err != nil {
		log.Printf("Failed to query proxy: %v", err)
	} else {
		fmt.Printf("Exchange authorized: %v\n", authorized)
	}
}
