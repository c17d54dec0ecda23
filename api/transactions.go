package api

import (
	"context"
	"encoding/hex"
	"strconv"

	"github.com/chinmay1088/esplora/types"
)

// GetTx returns information about a transaction.
//
// GET /tx/:txid
func (c *Client) GetTx(ctx context.Context, txid string) (*types.Transaction, error) {
	if err := checkHash("txid", txid); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid))
	if err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := decodeJSON(body, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTxStatus returns the confirmation status of a transaction.
//
// GET /tx/:txid/status
func (c *Client) GetTxStatus(ctx context.Context, txid string) (*types.TxStatus, error) {
	if err := checkHash("txid", txid); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid, "status"))
	if err != nil {
		return nil, err
	}
	var status types.TxStatus
	if err := decodeJSON(body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetTxHex returns the raw transaction as a hex string.
//
// GET /tx/:txid/hex
func (c *Client) GetTxHex(ctx context.Context, txid string) (string, error) {
	if err := checkHash("txid", txid); err != nil {
		return "", err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid, "hex"))
	if err != nil {
		return "", err
	}
	raw := decodeText(body)
	if _, err := hex.DecodeString(raw); err != nil {
		return "", &DecodeError{Err: err}
	}
	return raw, nil
}

// GetTxRaw returns the raw transaction in binary.
//
// GET /tx/:txid/raw
func (c *Client) GetTxRaw(ctx context.Context, txid string) ([]byte, error) {
	if err := checkHash("txid", txid); err != nil {
		return nil, err
	}
	return c.get(ctx, endpoint(c.baseURL, "tx", txid, "raw"))
}

// GetTxMerkleProof returns a merkle inclusion proof for the transaction in
// Electrum's blockchain.transaction.get_merkle format.
//
// GET /tx/:txid/merkle-proof
func (c *Client) GetTxMerkleProof(ctx context.Context, txid string) (*types.MerkleProof, error) {
	if err := checkHash("txid", txid); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid, "merkle-proof"))
	if err != nil {
		return nil, err
	}
	var proof types.MerkleProof
	if err := decodeJSON(body, &proof); err != nil {
		return nil, err
	}
	return &proof, nil
}

// GetTxMerkleblockProof returns a merkle inclusion proof for the transaction
// in bitcoind's merkleblock format, hex encoded.
//
// GET /tx/:txid/merkleblock-proof
func (c *Client) GetTxMerkleblockProof(ctx context.Context, txid string) (string, error) {
	if err := checkHash("txid", txid); err != nil {
		return "", err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid, "merkleblock-proof"))
	if err != nil {
		return "", err
	}
	return decodeText(body), nil
}

// GetTxOutspend returns the spending status of a single transaction output.
//
// GET /tx/:txid/outspend/:vout
func (c *Client) GetTxOutspend(ctx context.Context, txid string, vout uint32) (*types.Outspend, error) {
	if err := checkHash("txid", txid); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid, "outspend", strconv.FormatUint(uint64(vout), 10)))
	if err != nil {
		return nil, err
	}
	var outspend types.Outspend
	if err := decodeJSON(body, &outspend); err != nil {
		return nil, err
	}
	return &outspend, nil
}

// GetTxOutspends returns the spending status of all outputs of a
// transaction.
//
// GET /tx/:txid/outspends
func (c *Client) GetTxOutspends(ctx context.Context, txid string) ([]types.Outspend, error) {
	if err := checkHash("txid", txid); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "tx", txid, "outspends"))
	if err != nil {
		return nil, err
	}
	var outspends []types.Outspend
	if err := decodeJSON(body, &outspends); err != nil {
		return nil, err
	}
	return outspends, nil
}

// BroadcastTx submits a hex-encoded raw transaction to the network and
// returns the txid assigned by the server.
//
// POST /tx
func (c *Client) BroadcastTx(ctx context.Context, txHex string) (string, error) {
	if err := checkRawTx(txHex); err != nil {
		return "", err
	}
	body, err := c.post(ctx, endpoint(c.baseURL, "tx"), txHex)
	if err != nil {
		return "", err
	}
	return decodeHash(body)
}
