package auth

import (
	"errors"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ErrInvalidAddress is returned for strings that are not 0x-prefixed 20-byte hex.
var ErrInvalidAddress = errors.New("invalid EVM address")

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	return evmAddressPattern.MatchString(address)
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// ParseAddress validates address and returns it in checksum form.
// Mixed-case input is accepted without verifying its checksum.
func ParseAddress(address string) (common.Address, error) {
	if !ValidateEVMAddress(address) {
		return common.Address{}, ErrInvalidAddress
	}
	return common.HexToAddress(address), nil
}
