package orderfixtures_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialing an http endpoint does not connect, so none of these touch a node
func TestClientNetworkSwitch(t *testing.T) {
	client, err := orderfixtures.NewClient(&orderfixtures.Config{
		RPCURL:    "http://127.0.0.1:1",
		NetworkID: orderfixtures.NetworkIDGanache,
		LogLevel:  "info",
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, orderfixtures.NetworkIDGanache, client.NetworkID())
	addr, err := client.TokenTransferProxy().ContractAddress()
	require.NoError(t, err)
	assert.Equal(t, chain.TokenTransferProxyArtifact.Networks[50], addr)

	client.SetNetworkID(orderfixtures.NetworkIDMainnet)
	assert.Equal(t, orderfixtures.NetworkIDMainnet, client.NetworkID())
	addr, err = client.TokenTransferProxy().ContractAddress()
	require.NoError(t, err)
	assert.Equal(t, chain.TokenTransferProxyArtifact.Networks[1], addr)

	client.SetNetworkID(3)
	_, err = client.TokenTransferProxy().ContractAddress()
	require.ErrorIs(t, err, chain.ErrContractNotDeployedOnNetwork)
}

func TestClientAddressOverride(t *testing.T) {
	override := "0x00000000000000000000000000000000000000aa"
	client, err := orderfixtures.NewClient(&orderfixtures.Config{
		RPCURL:                 "http://127.0.0.1:1",
		NetworkID:              1337,
		TokenTransferProxyAddr: override,
		LogLevel:               "info",
	})
	require.NoError(t, err)
	defer client.Close()

	addr, err := client.TokenTransferProxy().ContractAddress()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(override), addr)
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := orderfixtures.NewClient(&orderfixtures.Config{NetworkID: 50, LogLevel: "info"})
	require.ErrorIs(t, err, orderfixtures.ErrInvalidParam)
}
