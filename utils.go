package orderfixtures

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatUnits renders a base-unit amount as a whole-unit decimal string,
// ie. 500000 with 5 decimals is "5".
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}
