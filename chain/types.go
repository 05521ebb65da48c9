package chain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// NullAddress is the burn address. As a taker it means any taker may fill.
var NullAddress = common.Address{}

// Order represents an unsigned 0x v2 order
type Order struct {
	SenderAddress         common.Address
	MakerAddress          common.Address
	TakerAddress          common.Address
	MakerFee              *big.Int
	TakerFee              *big.Int
	MakerAssetAmount      *big.Int
	TakerAssetAmount      *big.Int
	MakerAssetData        []byte
	TakerAssetData        []byte
	Salt                  *big.Int
	ExchangeAddress       common.Address
	FeeRecipientAddress   common.Address
	ExpirationTimeSeconds *big.Int
}

// Artifact describes a compiled contract and where it is deployed
type Artifact struct {
	ContractName string
	ABI          string
	Networks     map[uint64]common.Address
}

// TokenTransferProxy ABI JSON for the authorization getters
const tokenTransferProxyABIJSON = `[
	{
		"constant": true,
		"inputs": [
			{"name": "", "type": "address"}
		],
		"name": "authorized",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "getAuthorizedAddresses",
		"outputs": [{"name": "", "type": "address[]"}],
		"type": "function"
	}
]`

// TokenTransferProxyArtifact is the artifact of the proxy that moves tokens on
// behalf of authorized exchanges.
var TokenTransferProxyArtifact = Artifact{
	ContractName: "TokenTransferProxy",
	ABI:          tokenTransferProxyABIJSON,
	Networks: map[uint64]common.Address{
		1:  common.HexToAddress("0x8da0d80f5007ef1e431dd2127178d224e32c2ef4"),
		50: common.HexToAddress("0x1dc4c1cefef38a777b15aa20260a54e584b16c48"),
	},
}

// GetTokenTransferProxyABI returns the parsed TokenTransferProxy ABI
func GetTokenTransferProxyABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(tokenTransferProxyABIJSON))
	if err != nil {
		panic("failed to parse TokenTransferProxy ABI: " + err.Error())
	}
	return parsed
}
