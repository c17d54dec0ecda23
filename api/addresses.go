package api

import (
	"context"

	"github.com/chinmay1088/esplora/types"
)

// GetAddress returns information about an address, split into confirmed and
// mempool statistics.
//
// GET /address/:address
func (c *Client) GetAddress(ctx context.Context, address string) (*types.AddressInfo, error) {
	if err := checkAddress(address, c.netParams); err != nil {
		return nil, err
	}
	return c.addressInfo(ctx, endpoint(c.baseURL, "address", address))
}

// GetScriptHash returns information about a script hash (the SHA256 of the
// scriptPubKey, per the Electrum convention).
//
// GET /scripthash/:hash
func (c *Client) GetScriptHash(ctx context.Context, scripthash string) (*types.AddressInfo, error) {
	if err := checkHash("scripthash", scripthash); err != nil {
		return nil, err
	}
	return c.addressInfo(ctx, endpoint(c.baseURL, "scripthash", scripthash))
}

func (c *Client) addressInfo(ctx context.Context, requestURL string) (*types.AddressInfo, error) {
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	var info types.AddressInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAddressTxs returns transaction history for the address, newest first:
// up to 50 mempool transactions plus the first 25 confirmed ones.
//
// GET /address/:address/txs
func (c *Client) GetAddressTxs(ctx context.Context, address string) ([]types.Transaction, error) {
	if err := checkAddress(address, c.netParams); err != nil {
		return nil, err
	}
	return c.txList(ctx, endpoint(c.baseURL, "address", address, "txs"))
}

// GetScriptHashTxs returns transaction history for the script hash, newest
// first.
//
// GET /scripthash/:hash/txs
func (c *Client) GetScriptHashTxs(ctx context.Context, scripthash string) ([]types.Transaction, error) {
	if err := checkHash("scripthash", scripthash); err != nil {
		return nil, err
	}
	return c.txList(ctx, endpoint(c.baseURL, "scripthash", scripthash, "txs"))
}

// GetAddressTxsChain returns confirmed transaction history for the address,
// 25 per page. Pass the last seen txid to fetch the next page, or "" for the
// first page.
//
// GET /address/:address/txs/chain[/:last_seen_txid]
func (c *Client) GetAddressTxsChain(ctx context.Context, address, lastSeenTxid string) ([]types.Transaction, error) {
	if err := checkAddress(address, c.netParams); err != nil {
		return nil, err
	}
	requestURL := endpoint(c.baseURL, "address", address, "txs", "chain")
	if lastSeenTxid != "" {
		if err := checkHash("last seen txid", lastSeenTxid); err != nil {
			return nil, err
		}
		requestURL = endpoint(c.baseURL, "address", address, "txs", "chain", lastSeenTxid)
	}
	return c.txList(ctx, requestURL)
}

// GetScriptHashTxsChain returns confirmed transaction history for the
// script hash, 25 per page.
//
// GET /scripthash/:hash/txs/chain[/:last_seen_txid]
func (c *Client) GetScriptHashTxsChain(ctx context.Context, scripthash, lastSeenTxid string) ([]types.Transaction, error) {
	if err := checkHash("scripthash", scripthash); err != nil {
		return nil, err
	}
	requestURL := endpoint(c.baseURL, "scripthash", scripthash, "txs", "chain")
	if lastSeenTxid != "" {
		if err := checkHash("last seen txid", lastSeenTxid); err != nil {
			return nil, err
		}
		requestURL = endpoint(c.baseURL, "scripthash", scripthash, "txs", "chain", lastSeenTxid)
	}
	return c.txList(ctx, requestURL)
}

// GetAddressTxsMempool returns unconfirmed transaction history for the
// address, up to 50 transactions with no paging.
//
// GET /address/:address/txs/mempool
func (c *Client) GetAddressTxsMempool(ctx context.Context, address string) ([]types.Transaction, error) {
	if err := checkAddress(address, c.netParams); err != nil {
		return nil, err
	}
	return c.txList(ctx, endpoint(c.baseURL, "address", address, "txs", "mempool"))
}

// GetScriptHashTxsMempool returns unconfirmed transaction history for the
// script hash.
//
// GET /scripthash/:hash/txs/mempool
func (c *Client) GetScriptHashTxsMempool(ctx context.Context, scripthash string) ([]types.Transaction, error) {
	if err := checkHash("scripthash", scripthash); err != nil {
		return nil, err
	}
	return c.txList(ctx, endpoint(c.baseURL, "scripthash", scripthash, "txs", "mempool"))
}

func (c *Client) txList(ctx context.Context, requestURL string) ([]types.Transaction, error) {
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	var txs []types.Transaction
	if err := decodeJSON(body, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetAddressUTXOs returns the unspent transaction outputs associated with
// the address.
//
// GET /address/:address/utxo
func (c *Client) GetAddressUTXOs(ctx context.Context, address string) ([]types.UTXO, error) {
	if err := checkAddress(address, c.netParams); err != nil {
		return nil, err
	}
	return c.utxoList(ctx, endpoint(c.baseURL, "address", address, "utxo"))
}

// GetScriptHashUTXOs returns the unspent transaction outputs associated
// with the script hash.
//
// GET /scripthash/:hash/utxo
func (c *Client) GetScriptHashUTXOs(ctx context.Context, scripthash string) ([]types.UTXO, error) {
	if err := checkHash("scripthash", scripthash); err != nil {
		return nil, err
	}
	return c.utxoList(ctx, endpoint(c.baseURL, "scripthash", scripthash, "utxo"))
}

func (c *Client) utxoList(ctx context.Context, requestURL string) ([]types.UTXO, error) {
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	var utxos []types.UTXO
	if err := decodeJSON(body, &utxos); err != nil {
		return nil, err
	}
	return utxos, nil
}

// SearchAddresses returns up to 10 addresses beginning with the given
// prefix. The feature is disabled on some deployments.
//
// GET /address-prefix/:prefix
func (c *Client) SearchAddresses(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, &InvalidParameterError{Param: "address prefix", Value: prefix, Reason: "must not be empty"}
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "address-prefix", prefix))
	if err != nil {
		return nil, err
	}
	var addresses []string
	if err := decodeJSON(body, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}
