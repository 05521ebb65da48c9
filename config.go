package orderfixtures

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// NetworkID represents an Ethereum network id
type NetworkID uint64

const (
	NetworkIDMainnet NetworkID = 1  // Ethereum mainnet
	NetworkIDGanache NetworkID = 50 // ganache snapshot used by the contract tests
)

// SupportedNetworkIDs lists all networks with known deployments
var SupportedNetworkIDs = []NetworkID{NetworkIDMainnet, NetworkIDGanache}

const (
	// RPCURLKey is the JSON-RPC endpoint handles are resolved against
	RPCURLKey = "RPC_URL"
	// NetworkIDKey selects the deployment addresses of the contract artifacts
	NetworkIDKey = "NETWORK_ID"
	// TokenTransferProxyAddrKey overrides the TokenTransferProxy address
	TokenTransferProxyAddrKey = "TOKEN_TRANSFER_PROXY_ADDRESS"
	// LogLevelKey is a logrus level name, ie. debug, info, warn
	LogLevelKey = "LOG_LEVEL"

	envPrefix = "ORDERFIXTURES"
)

// Config holds configuration for creating a Client
type Config struct {
	RPCURL                 string
	NetworkID              NetworkID
	TokenTransferProxyAddr string
	LogLevel               string
}

func newViper() *viper.Viper {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.AutomaticEnv()

	vip.SetDefault(RPCURLKey, "http://localhost:8545")
	vip.SetDefault(NetworkIDKey, uint64(NetworkIDGanache))
	vip.SetDefault(TokenTransferProxyAddrKey, "")
	vip.SetDefault(LogLevelKey, log.InfoLevel.String())
	return vip
}

// LoadConfig reads the configuration from ORDERFIXTURES_* environment
// variables.
func LoadConfig() (*Config, error) {
	vip := newViper()
	cfg := &Config{
		RPCURL:                 vip.GetString(RPCURLKey),
		NetworkID:              NetworkID(vip.GetUint64(NetworkIDKey)),
		TokenTransferProxyAddr: vip.GetString(TokenTransferProxyAddrKey),
		LogLevel:               vip.GetString(LogLevelKey),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error while validating config: %w", err)
	}
	return cfg, nil
}

// LoadLogLevel reads only ORDERFIXTURES_LOG_LEVEL, for callers that never
// dial a node.
func LoadLogLevel() (log.Level, error) {
	raw := newViper().GetString(LogLevelKey)
	level, err := log.ParseLevel(raw)
	if err != nil {
		return 0, &InvalidParamError{Message: fmt.Sprintf("invalid log level: %s", raw)}
	}
	return level, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return &InvalidParamError{Message: "rpc url is required"}
	}
	if c.TokenTransferProxyAddr != "" && !common.IsHexAddress(c.TokenTransferProxyAddr) {
		return &InvalidParamError{
			Message: fmt.Sprintf("invalid token transfer proxy address: %s", c.TokenTransferProxyAddr),
		}
	}
	if c.TokenTransferProxyAddr == "" {
		isSupported := false
		for _, id := range SupportedNetworkIDs {
			if c.NetworkID == id {
				isSupported = true
				break
			}
		}
		if !isSupported {
			return &InvalidParamError{
				Message: fmt.Sprintf("network_id must be one of %v unless a proxy address is given", SupportedNetworkIDs),
			}
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &InvalidParamError{Message: fmt.Sprintf("invalid log level: %s", c.LogLevel)}
	}
	return nil
}

// ProxyAddressOverride returns the configured proxy address, if any
func (c *Config) ProxyAddressOverride() *common.Address {
	if c.TokenTransferProxyAddr == "" {
		return nil
	}
	addr := common.HexToAddress(c.TokenTransferProxyAddr)
	return &addr
}

// ApplyLogLevel sets the global logrus level
func (c *Config) ApplyLogLevel() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
