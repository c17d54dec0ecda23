package api

import (
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// endpoint builds a request URL from the base URL and path segments. Every
// segment is percent-encoded, so caller-supplied identifiers can never
// smuggle extra path components into the request.
func endpoint(base string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, base)
	for _, segment := range segments {
		parts = append(parts, url.PathEscape(segment))
	}
	return strings.Join(parts, "/")
}

// checkHash validates a txid, block hash or script hash before it is placed
// in a request path. chainhash accepts short strings by zero-padding them,
// so the length is checked explicitly.
func checkHash(param, value string) error {
	if len(value) != chainhash.MaxHashStringSize {
		return &InvalidParameterError{
			Param:  param,
			Value:  value,
			Reason: "not a 64-character hex string",
		}
	}
	if _, err := chainhash.NewHashFromStr(value); err != nil {
		return &InvalidParameterError{
			Param:  param,
			Value:  value,
			Reason: "not a 64-character hex string",
		}
	}
	return nil
}

// checkAddress validates an address against the configured network params.
func checkAddress(value string, params *chaincfg.Params) error {
	if _, err := btcutil.DecodeAddress(value, params); err != nil {
		return &InvalidParameterError{
			Param:  "address",
			Value:  value,
			Reason: err.Error(),
		}
	}
	return nil
}

func checkNonNegative(param string, value int64, formatted string) error {
	if value < 0 {
		return &InvalidParameterError{
			Param:  param,
			Value:  formatted,
			Reason: "must not be negative",
		}
	}
	return nil
}

// checkRawTx validates a hex-encoded transaction before broadcasting.
func checkRawTx(value string) error {
	raw, err := hex.DecodeString(value)
	if err != nil || len(raw) == 0 {
		return &InvalidParameterError{
			Param:  "raw transaction",
			Value:  value,
			Reason: "not a non-empty hex string",
		}
	}
	return nil
}
