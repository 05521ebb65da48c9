package chain

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Asset data errors
var (
	ErrInvalidAssetData  = errors.New("invalid asset data")
	ErrUnknownAssetProxy = errors.New("unknown asset proxy id")
)

// Proxy ids are the first four bytes of keccak256 of the asset signature.
var (
	ERC20ProxyID  = proxyID("ERC20Token(address)")
	ERC721ProxyID = proxyID("ERC721Token(address,uint256)")
)

var (
	erc20AssetDataArgs  abi.Arguments
	erc721AssetDataArgs abi.Arguments
)

func init() {
	addressType, _ := abi.NewType("address", "", nil)
	uint256Type, _ := abi.NewType("uint256", "", nil)

	erc20AssetDataArgs = abi.Arguments{
		{Type: addressType}, // tokenAddress
	}
	erc721AssetDataArgs = abi.Arguments{
		{Type: addressType}, // tokenAddress
		{Type: uint256Type}, // tokenId
	}
}

func proxyID(signature string) [4]byte {
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(signature))[:4])
	return id
}

// AssetData is the decoded form of an asset data byte string
type AssetData struct {
	ProxyID      [4]byte
	TokenAddress common.Address
	// TokenID is nil for ERC20 asset data
	TokenID *big.Int
}

// IsERC721 reports whether the asset data references a non-fungible token
func (a *AssetData) IsERC721() bool {
	return a.ProxyID == ERC721ProxyID
}

// AssetCodec encodes asset references and generates order salts
type AssetCodec interface {
	EncodeERC20AssetData(tokenAddress common.Address) ([]byte, error)
	EncodeERC721AssetData(tokenAddress common.Address, tokenID *big.Int) ([]byte, error)
	GenerateSalt() (*big.Int, error)
}

// DefaultAssetCodec is the 0x v2 asset data codec
type DefaultAssetCodec struct{}

var _ AssetCodec = DefaultAssetCodec{}

// EncodeERC20AssetData implements AssetCodec
func (DefaultAssetCodec) EncodeERC20AssetData(tokenAddress common.Address) ([]byte, error) {
	return EncodeERC20AssetData(tokenAddress)
}

// EncodeERC721AssetData implements AssetCodec
func (DefaultAssetCodec) EncodeERC721AssetData(tokenAddress common.Address, tokenID *big.Int) ([]byte, error) {
	return EncodeERC721AssetData(tokenAddress, tokenID)
}

// GenerateSalt implements AssetCodec
func (DefaultAssetCodec) GenerateSalt() (*big.Int, error) {
	return GeneratePseudoRandomSalt()
}

// EncodeERC20AssetData encodes a fungible token reference
func EncodeERC20AssetData(tokenAddress common.Address) ([]byte, error) {
	encoded, err := erc20AssetDataArgs.Pack(tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ERC20 asset data: %w", err)
	}
	return append(ERC20ProxyID[:], encoded...), nil
}

// EncodeERC721AssetData encodes a non-fungible token reference
func EncodeERC721AssetData(tokenAddress common.Address, tokenID *big.Int) ([]byte, error) {
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, fmt.Errorf("%w: token id must be a non-negative integer", ErrInvalidAssetData)
	}
	encoded, err := erc721AssetDataArgs.Pack(tokenAddress, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ERC721 asset data: %w", err)
	}
	return append(ERC721ProxyID[:], encoded...), nil
}

// DecodeAssetData decodes asset data produced by either encoder
func DecodeAssetData(data []byte) (*AssetData, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: length %d is shorter than a proxy id", ErrInvalidAssetData, len(data))
	}

	var id [4]byte
	copy(id[:], data[:4])

	switch {
	case bytes.Equal(id[:], ERC20ProxyID[:]):
		values, err := erc20AssetDataArgs.Unpack(data[4:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetData, err)
		}
		return &AssetData{
			ProxyID:      id,
			TokenAddress: values[0].(common.Address),
		}, nil
	case bytes.Equal(id[:], ERC721ProxyID[:]):
		values, err := erc721AssetDataArgs.Unpack(data[4:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetData, err)
		}
		return &AssetData{
			ProxyID:      id,
			TokenAddress: values[0].(common.Address),
			TokenID:      values[1].(*big.Int),
		}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%x", ErrUnknownAssetProxy, id)
	}
}
