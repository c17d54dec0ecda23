// Package types defines the data structures returned by the Esplora/Electrs
// block explorer REST API. All amounts are expressed in satoshis.
//
// Every type that carries domain invariants beyond its JSON shape implements
// Validator. Validation is run by the client after decoding, so a value that
// reaches the caller is always internally consistent: amounts, counts, sizes
// and heights are non-negative and hashes are well formed.
package types

import (
	"encoding/hex"
	"fmt"
)

// Validator reports whether a decoded value satisfies its domain invariants.
type Validator interface {
	Validate() error
}

// hashHexLen is the length of a hex-encoded txid, block hash or script hash.
const hashHexLen = 64

func validHashHex(s string) bool {
	if len(s) != hashHexLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func checkHash(field, value string) error {
	if !validHashHex(value) {
		return fmt.Errorf("%s %q is not a 64-character hex string", field, value)
	}
	return nil
}

func checkNonNegative(field string, v int64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %d", field, v)
	}
	return nil
}
