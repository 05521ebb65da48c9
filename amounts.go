package orderfixtures

import (
	"math/big"
)

// FarFutureExpirationTimeSeconds is close enough to infinite for a test run
const FarFutureExpirationTimeSeconds = 2524604400

var (
	TenUnitsEighteenDecimals           = mustBigInt("10000000000000000000")
	FiveUnitsEighteenDecimals          = mustBigInt("5000000000000000000")
	PointOneUnitsEighteenDecimals      = mustBigInt("100000000000000000")
	PointZeroFiveUnitsEighteenDecimals = mustBigInt("50000000000000000")
	TenUnitsFiveDecimals               = big.NewInt(1000000)
	FiveUnitsFiveDecimals              = big.NewInt(500000)
	OneNFTUnit                         = big.NewInt(1)
)

// unitScale groups asset kinds that share a decimal precision
type unitScale int

const (
	unitScaleEighteenDecimals unitScale = iota
	unitScaleFiveDecimals
	unitScaleNonFungible
)

var unitScaleByAsset = map[AssetDataScenario]unitScale{
	AssetDataScenarioZRXFeeToken:                 unitScaleEighteenDecimals,
	AssetDataScenarioERC20NonZRXEighteenDecimals: unitScaleEighteenDecimals,
	AssetDataScenarioERC20FiveDecimals:           unitScaleFiveDecimals,
	AssetDataScenarioERC721:                      unitScaleNonFungible,
}

// assetAmounts maps (magnitude, unit scale) to a quantity
var assetAmounts = map[OrderAssetAmountScenario]map[unitScale]*big.Int{
	OrderAssetAmountScenarioLarge: {
		unitScaleEighteenDecimals: TenUnitsEighteenDecimals,
		unitScaleFiveDecimals:     TenUnitsFiveDecimals,
		unitScaleNonFungible:      OneNFTUnit,
	},
	OrderAssetAmountScenarioSmall: {
		unitScaleEighteenDecimals: FiveUnitsEighteenDecimals,
		unitScaleFiveDecimals:     FiveUnitsFiveDecimals,
		unitScaleNonFungible:      OneNFTUnit,
	},
	OrderAssetAmountScenarioZero: {
		unitScaleEighteenDecimals: new(big.Int),
		unitScaleFiveDecimals:     new(big.Int),
		unitScaleNonFungible:      new(big.Int),
	},
}

// fee tokens are always 18 decimals
var feeAmounts = map[OrderAssetAmountScenario]*big.Int{
	OrderAssetAmountScenarioLarge: PointOneUnitsEighteenDecimals,
	OrderAssetAmountScenarioSmall: PointZeroFiveUnitsEighteenDecimals,
	OrderAssetAmountScenarioZero:  new(big.Int),
}

// AssetAmount returns the quantity of asset for the given magnitude. The
// result is a fresh copy.
func AssetAmount(dimension string, magnitude OrderAssetAmountScenario, asset AssetDataScenario) (*big.Int, error) {
	byScale, ok := assetAmounts[magnitude]
	if !ok {
		return nil, unhandled(dimension, magnitude)
	}
	scale, ok := unitScaleByAsset[asset]
	if !ok {
		return nil, unhandled("assetDataScenario", asset)
	}
	return new(big.Int).Set(byScale[scale]), nil
}

// FeeAmount returns the fee for the given magnitude. The result is a fresh
// copy.
func FeeAmount(dimension string, magnitude OrderAssetAmountScenario) (*big.Int, error) {
	fee, ok := feeAmounts[magnitude]
	if !ok {
		return nil, unhandled(dimension, magnitude)
	}
	return new(big.Int).Set(fee), nil
}

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer literal: " + s)
	}
	return v
}
