package chain

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// GeneratePseudoRandomSalt returns a uniformly random 256-bit salt
func GeneratePseudoRandomSalt() (*big.Int, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("failed to read random salt: %w", err)
	}
	return new(uint256.Int).SetBytes32(buf[:]).ToBig(), nil
}
