package api

import (
	"context"

	"github.com/chinmay1088/esplora/types"
)

// GetMempool returns mempool backlog statistics, including the fee-rate
// distribution histogram.
//
// GET /mempool
func (c *Client) GetMempool(ctx context.Context) (*types.MempoolInfo, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "mempool"))
	if err != nil {
		return nil, err
	}
	var info types.MempoolInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetMempoolTxids returns the full list of txids in the mempool. The order
// is arbitrary.
//
// GET /mempool/txids
func (c *Client) GetMempoolTxids(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "mempool", "txids"))
	if err != nil {
		return nil, err
	}
	var txids []string
	if err := decodeJSON(body, &txids); err != nil {
		return nil, err
	}
	return txids, nil
}

// GetMempoolRecent returns the last 10 transactions to enter the mempool.
//
// GET /mempool/recent
func (c *Client) GetMempoolRecent(ctx context.Context) ([]types.MempoolRecentTx, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "mempool", "recent"))
	if err != nil {
		return nil, err
	}
	var txs []types.MempoolRecentTx
	if err := decodeJSON(body, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetFeeEstimates returns estimated fee rates in sat/vB keyed by
// confirmation target. The upstream targets are 1-25, 144, 504 and 1008
// blocks.
//
// GET /fee-estimates
func (c *Client) GetFeeEstimates(ctx context.Context) (types.FeeEstimates, error) {
	body, err := c.get(ctx, endpoint(c.baseURL, "fee-estimates"))
	if err != nil {
		return nil, err
	}
	var estimates types.FeeEstimates
	if err := decodeJSON(body, &estimates); err != nil {
		return nil, err
	}
	return estimates, nil
}
