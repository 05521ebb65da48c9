package orderfixtures

// FeeRecipientAddressScenario selects who receives the order fees
type FeeRecipientAddressScenario string

const (
	FeeRecipientAddressScenarioBurnAddress    FeeRecipientAddressScenario = "BURN_ADDRESS"
	FeeRecipientAddressScenarioEthUserAddress FeeRecipientAddressScenario = "ETH_USER_ADDRESS"
)

// AssetDataScenario selects the kind of asset on one side of the order
type AssetDataScenario string

const (
	AssetDataScenarioZRXFeeToken                 AssetDataScenario = "ZRX_FEE_TOKEN"
	AssetDataScenarioERC20NonZRXEighteenDecimals AssetDataScenario = "ERC20_NON_ZRX_EIGHTEEN_DECIMALS"
	AssetDataScenarioERC20FiveDecimals           AssetDataScenario = "ERC20_FIVE_DECIMALS"
	AssetDataScenarioERC721                      AssetDataScenario = "ERC721"
)

// Decimals returns the decimal precision of the asset kind. Non-fungible
// assets have none.
func (s AssetDataScenario) Decimals() int32 {
	switch s {
	case AssetDataScenarioZRXFeeToken, AssetDataScenarioERC20NonZRXEighteenDecimals:
		return 18
	case AssetDataScenarioERC20FiveDecimals:
		return 5
	default:
		return 0
	}
}

// OrderAssetAmountScenario is the magnitude bucket of an amount or fee
type OrderAssetAmountScenario string

const (
	OrderAssetAmountScenarioLarge OrderAssetAmountScenario = "LARGE"
	OrderAssetAmountScenarioSmall OrderAssetAmountScenario = "SMALL"
	OrderAssetAmountScenarioZero  OrderAssetAmountScenario = "ZERO"
)

// ExpirationTimeSecondsScenario selects whether the order is already expired
type ExpirationTimeSecondsScenario string

const (
	ExpirationTimeSecondsScenarioInFuture ExpirationTimeSecondsScenario = "IN_FUTURE"
	ExpirationTimeSecondsScenarioInPast   ExpirationTimeSecondsScenario = "IN_PAST"
)

// TakerScenario selects how the taker address is filled in
type TakerScenario string

const (
	TakerScenarioCorrectlySpecified   TakerScenario = "CORRECTLY_SPECIFIED"
	TakerScenarioIncorrectlySpecified TakerScenario = "INCORRECTLY_SPECIFIED"
	TakerScenarioUnspecified          TakerScenario = "UNSPECIFIED"
)

var (
	feeRecipientAddressScenarios = []FeeRecipientAddressScenario{
		FeeRecipientAddressScenarioBurnAddress,
		FeeRecipientAddressScenarioEthUserAddress,
	}
	assetDataScenarios = []AssetDataScenario{
		AssetDataScenarioZRXFeeToken,
		AssetDataScenarioERC20NonZRXEighteenDecimals,
		AssetDataScenarioERC20FiveDecimals,
		AssetDataScenarioERC721,
	}
	orderAssetAmountScenarios = []OrderAssetAmountScenario{
		OrderAssetAmountScenarioLarge,
		OrderAssetAmountScenarioSmall,
		OrderAssetAmountScenarioZero,
	}
	expirationTimeSecondsScenarios = []ExpirationTimeSecondsScenario{
		ExpirationTimeSecondsScenarioInFuture,
		ExpirationTimeSecondsScenarioInPast,
	}
	takerScenarios = []TakerScenario{
		TakerScenarioCorrectlySpecified,
		TakerScenarioIncorrectlySpecified,
		TakerScenarioUnspecified,
	}
)

// OrderScenario describes the intent of a generated order along each
// independent dimension.
type OrderScenario struct {
	FeeRecipientScenario          FeeRecipientAddressScenario   `json:"feeRecipientScenario"`
	MakerAssetDataScenario        AssetDataScenario             `json:"makerAssetDataScenario"`
	TakerAssetDataScenario        AssetDataScenario             `json:"takerAssetDataScenario"`
	MakerAssetAmountScenario      OrderAssetAmountScenario      `json:"makerAssetAmountScenario"`
	TakerAssetAmountScenario      OrderAssetAmountScenario      `json:"takerAssetAmountScenario"`
	MakerFeeScenario              OrderAssetAmountScenario      `json:"makerFeeScenario"`
	TakerFeeScenario              OrderAssetAmountScenario      `json:"takerFeeScenario"`
	ExpirationTimeSecondsScenario ExpirationTimeSecondsScenario `json:"expirationTimeSecondsScenario"`
	TakerScenario                 TakerScenario                 `json:"takerScenario"`
}

// Validate checks every dimension against its enumeration and reports the
// first one that is out of range.
func (s OrderScenario) Validate() error {
	if !contains(feeRecipientAddressScenarios, s.FeeRecipientScenario) {
		return unhandled("feeRecipientScenario", s.FeeRecipientScenario)
	}
	if !contains(assetDataScenarios, s.MakerAssetDataScenario) {
		return unhandled("makerAssetDataScenario", s.MakerAssetDataScenario)
	}
	if !contains(assetDataScenarios, s.TakerAssetDataScenario) {
		return unhandled("takerAssetDataScenario", s.TakerAssetDataScenario)
	}
	if !contains(orderAssetAmountScenarios, s.MakerAssetAmountScenario) {
		return unhandled("makerAssetAmountScenario", s.MakerAssetAmountScenario)
	}
	if !contains(orderAssetAmountScenarios, s.TakerAssetAmountScenario) {
		return unhandled("takerAssetAmountScenario", s.TakerAssetAmountScenario)
	}
	if !contains(orderAssetAmountScenarios, s.MakerFeeScenario) {
		return unhandled("makerFeeScenario", s.MakerFeeScenario)
	}
	if !contains(orderAssetAmountScenarios, s.TakerFeeScenario) {
		return unhandled("takerFeeScenario", s.TakerFeeScenario)
	}
	if !contains(expirationTimeSecondsScenarios, s.ExpirationTimeSecondsScenario) {
		return unhandled("expirationTimeSecondsScenario", s.ExpirationTimeSecondsScenario)
	}
	if !contains(takerScenarios, s.TakerScenario) {
		return unhandled("takerScenario", s.TakerScenario)
	}
	return nil
}

// AllScenarios returns every combination of scenario dimensions
func AllScenarios() []OrderScenario {
	var out []OrderScenario
	for _, feeRecipient := range feeRecipientAddressScenarios {
		for _, makerAsset := range assetDataScenarios {
			for _, takerAsset := range assetDataScenarios {
				for _, makerAmount := range orderAssetAmountScenarios {
					for _, takerAmount := range orderAssetAmountScenarios {
						for _, makerFee := range orderAssetAmountScenarios {
							for _, takerFee := range orderAssetAmountScenarios {
								for _, expiration := range expirationTimeSecondsScenarios {
									for _, taker := range takerScenarios {
										out = append(out, OrderScenario{
											FeeRecipientScenario:          feeRecipient,
											MakerAssetDataScenario:        makerAsset,
											TakerAssetDataScenario:        takerAsset,
											MakerAssetAmountScenario:      makerAmount,
											TakerAssetAmountScenario:      takerAmount,
											MakerFeeScenario:              makerFee,
											TakerFeeScenario:              takerFee,
											ExpirationTimeSecondsScenario: expiration,
											TakerScenario:                 taker,
										})
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return out
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func unhandled[T ~string](dimension string, value T) error {
	return &UnhandledScenarioError{Dimension: dimension, Value: string(value)}
}
