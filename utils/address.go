package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAddress reports whether address is a 0x-prefixed, 40 hex digit EVM address.
// Mixed-case checksums are accepted without being verified.
func IsValidAddress(address string) bool {
	// common.IsHexAddress also accepts a missing or uppercase prefix
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}
