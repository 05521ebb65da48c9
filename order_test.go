package orderfixtures_test

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderJSON(t *testing.T) {
	order, err := newResolver(t).GenerateOrder(baseScenario())
	require.NoError(t, err)

	out := orderfixtures.NewOrderJSON(order)
	assert.Equal(t, "10000000000000000000", out.MakerAssetAmount)
	assert.Equal(t, "500000", out.TakerAssetAmount)
	assert.Equal(t, "2524604400", out.ExpirationTimeSeconds)
	assert.Equal(t, order.Salt.String(), out.Salt)
	assert.Equal(t, hexutil.Encode(order.MakerAssetData), out.MakerAssetData)
	assert.Equal(t, chain.OrderHash(order).Hex(), out.OrderHash)

	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "0xf47261b0", fields["makerAssetData"][:10])
	assert.Equal(t, "0x0000000000000000000000000000000000000000", fields["takerAddress"])
}
