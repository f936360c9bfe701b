// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"
)

var ErrInvalidAddress = errors.New("invalid caller address")

// addressHexLen is the number of hex characters in an address payload
// (20 bytes, matching the ledger identities the dashboard supplies).
const addressHexLen = 40

// NormalizeAddress validates a caller identity and returns its canonical
// lowercase form. Addresses are "0x" followed by 40 hex characters; any
// checksum casing is flattened so that equality is a plain string compare.
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if len(addr) != 2+addressHexLen {
		return "", ErrInvalidAddress
	}
	if addr[0] != '0' || (addr[1] != 'x' && addr[1] != 'X') {
		return "", ErrInvalidAddress
	}
	lower := strings.ToLower(addr)
	for _, c := range lower[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return "", ErrInvalidAddress
		}
	}
	return lower, nil
}

// SameAddress reports whether two normalized addresses refer to the same
// identity. Comparison is constant-time; the admin address is a credential
// of sorts and should not leak through timing.
func SameAddress(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
