package chain_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
)

var (
	mainnetProxy = chain.TokenTransferProxyArtifact.Networks[1]
	ganacheProxy = chain.TokenTransferProxyArtifact.Networks[50]
)

// fakeBackend serves contract code and TokenTransferProxy calls from memory
type fakeBackend struct {
	mu         sync.Mutex
	code       map[common.Address][]byte
	authorized []common.Address
	codeErr    error

	// when set, CodeAt signals entered and waits for release
	entered chan struct{}
	release chan struct{}

	codeAtCalls atomic.Int32
}

func newFakeBackend(deployed ...common.Address) *fakeBackend {
	b := &fakeBackend{code: make(map[common.Address][]byte)}
	for _, addr := range deployed {
		b.code[addr] = []byte{0x60, 0x80, 0x60, 0x40}
	}
	return b
}

func (b *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	b.codeAtCalls.Add(1)
	if b.entered != nil {
		b.entered <- struct{}{}
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.codeErr != nil {
		return nil, b.codeErr
	}
	return b.code[contract], nil
}

func (b *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	parsed := chain.GetTokenTransferProxyABI()
	if len(call.Data) < 4 {
		return nil, errors.New("missing method id")
	}
	method, err := parsed.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch method.Name {
	case "authorized":
		args, err := method.Inputs.Unpack(call.Data[4:])
		if err != nil {
			return nil, err
		}
		target := args[0].(common.Address)
		for _, addr := range b.authorized {
			if addr == target {
				return method.Outputs.Pack(true)
			}
		}
		return method.Outputs.Pack(false)
	case "getAuthorizedAddresses":
		return method.Outputs.Pack(append([]common.Address{}, b.authorized...))
	default:
		return nil, errors.New("unexpected method " + method.Name)
	}
}

func (b *fakeBackend) setCodeErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.codeErr = err
}
