package orderfixtures

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
)

// Client connects the network-facing wrappers to an Ethereum node
type Client struct {
	ethClient          *ethclient.Client
	networkID          NetworkID
	tokenTransferProxy *chain.TokenTransferProxy
}

// NewClient dials config.RPCURL and prepares the contract wrappers. Contract
// handles are resolved on first use.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ethClient, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	proxy, err := chain.NewTokenTransferProxy(ethClient, uint64(config.NetworkID), config.ProxyAddressOverride())
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("failed to create token transfer proxy: %w", err)
	}

	return &Client{
		ethClient:          ethClient,
		networkID:          config.NetworkID,
		tokenTransferProxy: proxy,
	}, nil
}

// Close closes the client and cleans up resources
func (c *Client) Close() {
	if c.ethClient != nil {
		c.ethClient.Close()
	}
}

// NetworkID returns the network the wrappers look deployments up on
func (c *Client) NetworkID() NetworkID {
	return c.networkID
}

// SetNetworkID switches networks and drops every cached contract handle
func (c *Client) SetNetworkID(networkID NetworkID) {
	c.networkID = networkID
	c.tokenTransferProxy.SetNetworkID(uint64(networkID))
}

// TokenTransferProxy returns the TokenTransferProxy wrapper
func (c *Client) TokenTransferProxy() *chain.TokenTransferProxy {
	return c.tokenTransferProxy
}

// IsExchangeAuthorized reports whether the proxy will move tokens for exchange
func (c *Client) IsExchangeAuthorized(ctx context.Context, exchange common.Address) (bool, error) {
	return c.tokenTransferProxy.IsAuthorized(ctx, exchange)
}
