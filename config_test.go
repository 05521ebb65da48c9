package orderfixtures_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	orderfixtures "github.com/kaifufi/zeroex-order-fixtures-go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := orderfixtures.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	assert.Equal(t, orderfixtures.NetworkIDGanache, cfg.NetworkID)
	assert.Nil(t, cfg.ProxyAddressOverride())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ORDERFIXTURES_RPC_URL", "http://node:8545")
	t.Setenv("ORDERFIXTURES_NETWORK_ID", "1")
	t.Setenv("ORDERFIXTURES_TOKEN_TRANSFER_PROXY_ADDRESS", "0x8da0d80f5007ef1e431dd2127178d224e32c2ef4")
	t.Setenv("ORDERFIXTURES_LOG_LEVEL", "debug")

	cfg, err := orderfixtures.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://node:8545", cfg.RPCURL)
	assert.Equal(t, orderfixtures.NetworkIDMainnet, cfg.NetworkID)
	require.NotNil(t, cfg.ProxyAddressOverride())
	assert.Equal(t, common.HexToAddress("0x8da0d80f5007ef1e431dd2127178d224e32c2ef4"), *cfg.ProxyAddressOverride())

	level := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(level) })
	require.NoError(t, cfg.ApplyLogLevel())
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config orderfixtures.Config
	}{
		{"missing rpc url", orderfixtures.Config{NetworkID: 50, LogLevel: "info"}},
		{"bad proxy address", orderfixtures.Config{RPCURL: "http://x", NetworkID: 50, TokenTransferProxyAddr: "0x1234", LogLevel: "info"}},
		{"unknown network", orderfixtures.Config{RPCURL: "http://x", NetworkID: 3, LogLevel: "info"}},
		{"bad log level", orderfixtures.Config{RPCURL: "http://x", NetworkID: 50, LogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.config.Validate(), orderfixtures.ErrInvalidParam)
		})
	}

	// an explicit proxy address works on any network
	cfg := orderfixtures.Config{
		RPCURL:                 "http://x",
		NetworkID:              1337,
		TokenTransferProxyAddr: "0x1dc4c1cefef38a777b15aa20260a54e584b16c48",
		LogLevel:               "warn",
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadLogLevelIgnoresNodeSettings(t *testing.T) {
	t.Setenv("ORDERFIXTURES_NETWORK_ID", "3")
	t.Setenv("ORDERFIXTURES_TOKEN_TRANSFER_PROXY_ADDRESS", "0x1234")
	t.Setenv("ORDERFIXTURES_LOG_LEVEL", "warn")

	_, err := orderfixtures.LoadConfig()
	require.ErrorIs(t, err, orderfixtures.ErrInvalidParam)

	level, err := orderfixtures.LoadLogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)
}
