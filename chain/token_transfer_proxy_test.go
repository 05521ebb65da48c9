package chain_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	authorizedExchange   = common.HexToAddress("0x48bacb9266a570d521063ef5dd96e61686dbe788")
	unauthorizedExchange = common.HexToAddress("0x12459c951127e0c374ff9105dda097662a027093")
)

func TestTokenTransferProxyIsAuthorized(t *testing.T) {
	backend := newFakeBackend(ganacheProxy)
	backend.authorized = []common.Address{authorizedExchange}

	proxy, err := chain.NewTokenTransferProxy(backend, 50, nil)
	require.NoError(t, err)

	ok, err := proxy.IsAuthorized(context.Background(), authorizedExchange)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = proxy.IsAuthorized(context.Background(), unauthorizedExchange)
	require.NoError(t, err)
	assert.False(t, ok)

	// both calls went through one resolved handle
	assert.Equal(t, int32(1), backend.codeAtCalls.Load())
}

func TestTokenTransferProxyGetAuthorizedAddresses(t *testing.T) {
	backend := newFakeBackend(ganacheProxy)
	backend.authorized = []common.Address{authorizedExchange, unauthorizedExchange}

	proxy, err := chain.NewTokenTransferProxy(backend, 50, nil)
	require.NoError(t, err)

	addrs, err := proxy.GetAuthorizedAddresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []common.Address{authorizedExchange, unauthorizedExchange}, addrs)
}

func TestTokenTransferProxyNetworkSwitch(t *testing.T) {
	backend := newFakeBackend(ganacheProxy)

	proxy, err := chain.NewTokenTransferProxy(backend, 50, nil)
	require.NoError(t, err)

	addr, err := proxy.ContractAddress()
	require.NoError(t, err)
	assert.Equal(t, ganacheProxy, addr)

	// mainnet has an address but no code on this backend
	proxy.SetNetworkID(1)
	_, err = proxy.IsAuthorized(context.Background(), authorizedExchange)
	require.ErrorIs(t, err, chain.ErrContractDoesNotExist)

	proxy.SetAddressOverride(&ganacheProxy)
	_, err = proxy.IsAuthorized(context.Background(), authorizedExchange)
	require.NoError(t, err)
}
