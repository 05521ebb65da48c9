package orderfixtures_test

import (
	"encoding/json"
	"testing"

	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderScenarioUnmarshal(t *testing.T) {
	raw := `{
		"feeRecipientScenario": "ETH_USER_ADDRESS",
		"makerAssetDataScenario": "ERC721",
		"takerAssetDataScenario": "ZRX_FEE_TOKEN",
		"makerAssetAmountScenario": "SMALL",
		"takerAssetAmountScenario": "LARGE",
		"makerFeeScenario": "ZERO",
		"takerFeeScenario": "SMALL",
		"expirationTimeSecondsScenario": "IN_PAST",
		"takerScenario": "CORRECTLY_SPECIFIED"
	}`

	var s orderfixtures.OrderScenario
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	require.NoError(t, s.Validate())
	assert.Equal(t, orderfixtures.AssetDataScenarioERC721, s.MakerAssetDataScenario)
	assert.Equal(t, orderfixtures.ExpirationTimeSecondsScenarioInPast, s.ExpirationTimeSecondsScenario)
}

func TestOrderScenarioValidateFirstBadDimension(t *testing.T) {
	s := baseScenario()
	s.MakerFeeScenario = "MEDIUM"
	s.TakerScenario = "NOBODY"

	err := s.Validate()
	require.Error(t, err)
	assert.Equal(t, `unhandled scenario variant: makerFeeScenario "MEDIUM"`, err.Error())
}

func TestAllScenariosDistinctAndValid(t *testing.T) {
	scenarios := orderfixtures.AllScenarios()
	seen := make(map[orderfixtures.OrderScenario]struct{}, len(scenarios))
	for _, s := range scenarios {
		require.NoError(t, s.Validate())
		seen[s] = struct{}{}
	}
	assert.Len(t, seen, len(scenarios))
}

func TestAssetDataScenarioDecimals(t *testing.T) {
	assert.Equal(t, int32(18), orderfixtures.AssetDataScenarioZRXFeeToken.Decimals())
	assert.Equal(t, int32(18), orderfixtures.AssetDataScenarioERC20NonZRXEighteenDecimals.Decimals())
	assert.Equal(t, int32(5), orderfixtures.AssetDataScenarioERC20FiveDecimals.Decimals())
	assert.Equal(t, int32(0), orderfixtures.AssetDataScenarioERC721.Decimals())
}
