package api

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/chinmay1088/esplora/types"
)

// readBody drains the response and maps non-2xx statuses to *APIError. The
// upstream API reports errors as plain text, so the body is kept verbatim.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// decodeJSON parses a success body into v and checks its domain invariants.
// Both parse failures and invariant violations are *DecodeError, distinct
// from the *APIError a failed request produces.
func decodeJSON(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{Err: err}
	}
	if err := validateDecoded(v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func validateDecoded(v any) error {
	switch t := v.(type) {
	case types.Validator:
		return t.Validate()
	case *[]types.Transaction:
		for i := range *t {
			if err := (*t)[i].Validate(); err != nil {
				return err
			}
		}
	case *[]types.Block:
		for i := range *t {
			if err := (*t)[i].Validate(); err != nil {
				return err
			}
		}
	case *[]types.UTXO:
		for i := range *t {
			if err := (*t)[i].Validate(); err != nil {
				return err
			}
		}
	case *[]types.Outspend:
		for i := range *t {
			if err := (*t)[i].Validate(); err != nil {
				return err
			}
		}
	case *[]types.MempoolRecentTx:
		for i := range *t {
			if err := (*t)[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeText returns a trimmed plain-text body.
func decodeText(body []byte) string {
	return strings.TrimSpace(string(body))
}

// decodeHeight parses a plain-text block height.
func decodeHeight(body []byte) (int64, error) {
	height, err := strconv.ParseInt(decodeText(body), 10, 64)
	if err != nil {
		return 0, &DecodeError{Err: fmt.Errorf("parsing height: %w", err)}
	}
	if height < 0 {
		return 0, &DecodeError{Err: fmt.Errorf("height must not be negative, got %d", height)}
	}
	return height, nil
}

// decodeHash parses a plain-text txid or block hash.
func decodeHash(body []byte) (string, error) {
	hash := decodeText(body)
	if len(hash) != 64 {
		return "", &DecodeError{Err: fmt.Errorf("%q is not a 64-character hex string", hash)}
	}
	if _, err := hex.DecodeString(hash); err != nil {
		return "", &DecodeError{Err: fmt.Errorf("%q is not a 64-character hex string", hash)}
	}
	return hash, nil
}
