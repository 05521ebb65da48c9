package chain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Handle resolution errors
var (
	ErrContractNotDeployedOnNetwork = errors.New("contract not deployed on network")
	ErrContractDoesNotExist         = errors.New("contract does not exist")
)

// resolveTimeout bounds a shared resolution that no single caller owns
const resolveTimeout = 30 * time.Second

// HandleResolutionError is returned when a contract handle cannot be resolved
type HandleResolutionError struct {
	Contract  string
	NetworkID uint64
	Address   common.Address
	Err       error
}

func (e *HandleResolutionError) Error() string {
	if e.Address == (common.Address{}) {
		return fmt.Sprintf("resolve %s on network %d: %v", e.Contract, e.NetworkID, e.Err)
	}
	return fmt.Sprintf("resolve %s at %s on network %d: %v", e.Contract, e.Address.Hex(), e.NetworkID, e.Err)
}

func (e *HandleResolutionError) Unwrap() error {
	return e.Err
}

// ContractHandle is a resolved, callable reference to a deployed contract
type ContractHandle struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// Address returns the address the handle is bound to
func (h *ContractHandle) Address() common.Address {
	return h.address
}

// ABI returns the parsed contract interface
func (h *ContractHandle) ABI() abi.ABI {
	return h.abi
}

// Call invokes a constant method and returns its unpacked outputs
func (h *ContractHandle) Call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := h.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	return out, nil
}

// ContractHandleCache lazily resolves a handle to a deployed contract and
// keeps it until invalidated. Concurrent misses share one resolution; a
// resolution that started before Invalidate is handed to its callers but not
// stored.
type ContractHandleCache struct {
	parsedABI abi.ABI
	name      string
	networks  map[uint64]common.Address
	backend   bind.ContractCaller

	mu              sync.Mutex
	networkID       uint64
	addressOverride *common.Address
	handle          *ContractHandle
	generation      uint64

	group singleflight.Group
}

// NewContractHandleCache creates a cache for artifact on networkID. When
// addressOverride is non-nil it takes precedence over the artifact's
// deployment addresses.
func NewContractHandleCache(
	artifact Artifact,
	backend bind.ContractCaller,
	networkID uint64,
	addressOverride *common.Address,
) (*ContractHandleCache, error) {
	parsed, err := abi.JSON(strings.NewReader(artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s ABI: %w", artifact.ContractName, err)
	}
	if backend == nil {
		return nil, fmt.Errorf("backend is required for %s", artifact.ContractName)
	}

	networks := make(map[uint64]common.Address, len(artifact.Networks))
	for id, addr := range artifact.Networks {
		networks[id] = addr
	}

	return &ContractHandleCache{
		parsedABI:       parsed,
		name:            artifact.ContractName,
		networks:        networks,
		backend:         backend,
		networkID:       networkID,
		addressOverride: copyAddress(addressOverride),
	}, nil
}

// Address returns the configured contract address without resolving a handle
func (c *ContractHandleCache) Address() (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addressLocked()
}

func (c *ContractHandleCache) addressLocked() (common.Address, error) {
	if c.addressOverride != nil {
		return *c.addressOverride, nil
	}
	addr, ok := c.networks[c.networkID]
	if !ok {
		return common.Address{}, &HandleResolutionError{
			Contract:  c.name,
			NetworkID: c.networkID,
			Err:       ErrContractNotDeployedOnNetwork,
		}
	}
	return addr, nil
}

// Handle returns the cached handle, resolving one if the slot is empty.
// Resolution failures are returned as is and leave the slot empty.
func (c *ContractHandleCache) Handle(ctx context.Context) (*ContractHandle, error) {
	c.mu.Lock()
	if c.handle != nil {
		h := c.handle
		c.mu.Unlock()
		return h, nil
	}
	generation := c.generation
	c.mu.Unlock()

	// the key scopes in-flight resolutions to one generation. The shared
	// resolution ignores caller cancellation; each caller stops waiting on
	// its own ctx.
	key := strconv.FormatUint(generation, 10)
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		resolveCtx, cancel := context.WithTimeout(detached, resolveTimeout)
		defer cancel()
		return c.resolve(resolveCtx, generation)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*ContractHandle), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *ContractHandleCache) resolve(ctx context.Context, generation uint64) (*ContractHandle, error) {
	c.mu.Lock()
	if c.handle != nil && c.generation == generation {
		h := c.handle
		c.mu.Unlock()
		return h, nil
	}
	addr, err := c.addressLocked()
	networkID := c.networkID
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{
		"contract": c.name,
		"address":  addr.Hex(),
		"network":  networkID,
	})

	code, err := c.backend.CodeAt(ctx, addr, nil)
	if err != nil {
		logger.WithError(err).Warn("contract handle resolution failed")
		return nil, &HandleResolutionError{Contract: c.name, NetworkID: networkID, Address: addr, Err: err}
	}
	if len(code) == 0 {
		logger.Warn("no contract code at address")
		return nil, &HandleResolutionError{Contract: c.name, NetworkID: networkID, Address: addr, Err: ErrContractDoesNotExist}
	}

	handle := &ContractHandle{
		address:  addr,
		abi:      c.parsedABI,
		contract: bind.NewBoundContract(addr, c.parsedABI, c.backend, nil, nil),
	}

	c.mu.Lock()
	if c.generation == generation {
		c.handle = handle
	}
	c.mu.Unlock()

	logger.Debug("contract handle resolved")
	return handle, nil
}

// Invalidate drops the cached handle. It is a no-op when nothing is cached.
func (c *ContractHandleCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked()
}

func (c *ContractHandleCache) invalidateLocked() {
	c.generation++
	if c.handle == nil {
		return
	}
	log.WithFields(log.Fields{
		"contract": c.name,
		"address":  c.handle.address.Hex(),
	}).Debug("contract handle invalidated")
	c.handle = nil
}

// SetNetworkID switches the network used to look up the deployment address
// and invalidates the cached handle.
func (c *ContractHandleCache) SetNetworkID(networkID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.networkID = networkID
	c.invalidateLocked()
}

// SetAddressOverride replaces the explicit address and invalidates the
// cached handle. A nil override falls back to the artifact addresses.
func (c *ContractHandleCache) SetAddressOverride(addr *common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addressOverride = copyAddress(addr)
	c.invalidateLocked()
}

func copyAddress(addr *common.Address) *common.Address {
	if addr == nil {
		return nil
	}
	a := *addr
	return &a
}
