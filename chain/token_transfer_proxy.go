package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// TokenTransferProxy queries which exchanges the proxy has authorized
type TokenTransferProxy struct {
	cache *ContractHandleCache
}

// NewTokenTransferProxy creates a TokenTransferProxy bound to backend
func NewTokenTransferProxy(backend bind.ContractCaller, networkID uint64, addressOverride *common.Address) (*TokenTransferProxy, error) {
	cache, err := NewContractHandleCache(TokenTransferProxyArtifact, backend, networkID, addressOverride)
	if err != nil {
		return nil, err
	}
	return &TokenTransferProxy{cache: cache}, nil
}

// IsAuthorized checks if the exchange address is authorized by the proxy
func (p *TokenTransferProxy) IsAuthorized(ctx context.Context, exchangeAddr common.Address) (bool, error) {
	handle, err := p.cache.Handle(ctx)
	if err != nil {
		return false, err
	}

	out, err := handle.Call(ctx, "authorized", exchangeAddr)
	if err != nil {
		return false, err
	}

	authorized, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected authorized output type %T", out[0])
	}
	return authorized, nil
}

// GetAuthorizedAddresses returns all exchange addresses authorized by the proxy
func (p *TokenTransferProxy) GetAuthorizedAddresses(ctx context.Context) ([]common.Address, error) {
	handle, err := p.cache.Handle(ctx)
	if err != nil {
		return nil, err
	}

	out, err := handle.Call(ctx, "getAuthorizedAddresses")
	if err != nil {
		return nil, err
	}

	addrs, ok := out[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected getAuthorizedAddresses output type %T", out[0])
	}
	return addrs, nil
}

// ContractAddress returns the address of the proxy being used
func (p *TokenTransferProxy) ContractAddress() (common.Address, error) {
	return p.cache.Address()
}

// SetNetworkID points the wrapper at another network's deployment
func (p *TokenTransferProxy) SetNetworkID(networkID uint64) {
	p.cache.SetNetworkID(networkID)
}

// SetAddressOverride points the wrapper at an explicit proxy address
func (p *TokenTransferProxy) SetAddressOverride(addr *common.Address) {
	p.cache.SetAddressOverride(addr)
}
