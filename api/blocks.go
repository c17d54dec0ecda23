package api

import (
	"context"
	"strconv"

	"github.com/chinmay1088/esplora/types"
)

// GetBlock returns information about the block with the given hash.
//
// GET /block/:hash
func (c *Client) GetBlock(ctx context.Context, hash string) (*types.Block, error) {
	if err := checkHash("block hash", hash); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "block", hash))
	if err != nil {
		return nil, err
	}
	var block types.Block
	if err := decodeJSON(body, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlockStatus returns the confirmation status of a block. InBestChain is
// false for orphaned blocks.
//
// GET /block/:hash/status
func (c *Client) GetBlockStatus(ctx context.Context, hash string) (*types.BlockStatus, error) {
	if err := checkHash("block hash", hash); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "block", hash, "status"))
	if err != nil {
		return nil, err
	}
	var status types.BlockStatus
	if err := decodeJSON(body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetBlockTxs returns up to 25 transactions in the block beginning at
// startIndex. Pass 0 for the first page. The returned transactions carry the
// block's shared confirmation status.
//
// GET /block/:hash/txs[/:start_index]
func (c *Client) GetBlockTxs(ctx context.Context, hash string, startIndex int) ([]types.Transaction, error) {
	if err := checkHash("block hash", hash); err != nil {
		return nil, err
	}
	if err := checkNonNegative("start index", int64(startIndex), strconv.Itoa(startIndex)); err != nil {
		return nil, err
	}
	requestURL := endpoint(c.baseURL, "block", hash, "txs")
	if startIndex != 0 {
		requestURL = endpoint(c.baseURL, "block", hash, "txs", strconv.Itoa(startIndex))
	}
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

// GetBlockTxids returns all txids in the block.
//
// GET /block/:hash/txids
func (c *Client) GetBlockTxids(ctx context.Context, hash string) ([]string, error) {
	if err := checkHash("block hash", hash); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "block", hash, "txids"))
	if err != nil {
		return nil, err
	}
	var txids []string
	if err := decodeJSON(body, &txids); err != nil {
		return nil, err
	}
	return txids, nil
}

// GetBlockTxidAtIndex returns the txid at the given index within the block.
//
// GET /block/:hash/txid/:index
func (c *Client) GetBlockTxidAtIndex(ctx context.Context, hash string, index int) (string, error) {
	if err := checkHash("block hash", hash); err != nil {
		return "", err
	}
	if err := checkNonNegative("txid index", int64(index), strconv.Itoa(index)); err != nil {
		return "", err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "block", hash, "txid", strconv.Itoa(index)))
	if err != nil {
		return "", err
	}
	return decodeHash(body)
}

// GetBlockRaw returns the raw block in binary.
//
// GET /block/:hash/raw
func (c *Client) GetBlockRaw(ctx context.Context, hash string) ([]byte, error) {
	if err := checkHash("block hash", hash); err != nil {
		return nil, err
	}
	return c.get(ctx, endpoint(c.baseURL, "block", hash, "raw"))
}

// GetBlockHashByHeight returns the hash of the block currently at the given
// height.
//
// GET /block-height/:height
func (c *Client) GetBlockHashByHeight(ctx context.Context, height int64) (string, error) {
	if err := checkNonNegative("block height", height, strconv.FormatInt(height, 10)); err != nil {
		return "", err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "block-height", strconv.FormatInt(height, 10)))
	if err != nil {
		return "", err
	}
	return decodeHash(body)
}

// GetBlockByHeight looks up the hash of the block at the given height and
// fetches it.
func (c *Client) GetBlockByHeight(ctx context.Context, height int64) (*types.Block, error) {
	hash, err := c.GetBlockHashByHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	return c.GetBlock(ctx, hash)
}

// GetBlocks returns the 10 newest blocks starting at startHeight.
//
// GET /blocks/:start_height
func (c *Client) GetBlocks(ctx context.Context, startHeight int64) ([]types.Block, error) {
	if err := checkNonNegative("start height", startHeight, strconv.FormatInt(startHeight, 10)); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, endpoint(c.baseURL, "blocks", strconv.FormatInt(startHeight, 10)))
	if err != nil {
		return nil, err
	}
	var blocks []types.Block
	if err := decodeJSON(body, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetRecentBlocks returns the 10 newest blocks starting at the tip.
//
// GET /blocks
func (c *Client) GetRecentBlocks(ctx context.Context) ([]types.Block, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "blocks"))
	if err != nil {
		return nil, err
	}
	var blocks []types.Block
	if err := decodeJSON(body, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetBlocksTipHeight returns the height of the last block.
//
// GET /blocks/tip/height
func (c *Client) GetBlocksTipHeight(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "blocks", "tip", "height"))
	if err != nil {
		return 0, err
	}
	return decodeHeight(body)
}

// GetBlocksTipHash returns the hash of the last block.
//
// GET /blocks/tip/hash
func (c *Client) GetBlocksTipHash(ctx context.Context) (string, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "blocks", "tip", "hash"))
	if err != nil {
		return "", err
	}
	return decodeHash(body)
}
