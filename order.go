package orderfixtures

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/kaifufi/zeroex-order-fixtures-go/chain"
)

// OrderJSON is the wire form of an order, in the field order consumers such
// as signers expect.
type OrderJSON struct {
	SenderAddress         string `json:"senderAddress"`
	MakerAddress          string `json:"makerAddress"`
	TakerAddress          string `json:"takerAddress"`
	MakerFee              string `json:"makerFee"`
	TakerFee              string `json:"takerFee"`
	MakerAssetAmount      string `json:"makerAssetAmount"`
	TakerAssetAmount      string `json:"takerAssetAmount"`
	MakerAssetData        string `json:"makerAssetData"`
	TakerAssetData        string `json:"takerAssetData"`
	Salt                  string `json:"salt"`
	ExchangeAddress       string `json:"exchangeAddress"`
	FeeRecipientAddress   string `json:"feeRecipientAddress"`
	ExpirationTimeSeconds string `json:"expirationTimeSeconds"`
	OrderHash             string `json:"orderHash"`
}

// NewOrderJSON converts an order and attaches its EIP712 hash
func NewOrderJSON(order *chain.Order) OrderJSON {
	return OrderJSON{
		SenderAddress:         order.SenderAddress.Hex(),
		MakerAddress:          order.MakerAddress.Hex(),
		TakerAddress:          order.TakerAddress.Hex(),
		MakerFee:              order.MakerFee.String(),
		TakerFee:              order.TakerFee.String(),
		MakerAssetAmount:      order.MakerAssetAmount.String(),
		TakerAssetAmount:      order.TakerAssetAmount.String(),
		MakerAssetData:        hexutil.Encode(order.MakerAssetData),
		TakerAssetData:        hexutil.Encode(order.TakerAssetData),
		Salt:                  order.Salt.String(),
		ExchangeAddress:       order.ExchangeAddress.Hex(),
		FeeRecipientAddress:   order.FeeRecipientAddress.Hex(),
		ExpirationTimeSeconds: order.ExpirationTimeSeconds.String(),
		OrderHash:             chain.OrderHash(order).Hex(),
	}
}
