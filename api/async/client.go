// Package async provides a non-blocking variant of the Esplora client.
// Every method returns immediately with a Future that resolves once the
// request completes. Futures delegate to the blocking client's routing and
// decoding, so for the same server response both variants produce the same
// value.
package async

import (
	"context"

	"github.com/chinmay1088/esplora/api"
	"github.com/chinmay1088/esplora/types"
)

// Future is one pending API call.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until the call completes and returns its result. It can be
// called any number of times; every call returns the same result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel that is closed when the call has completed, for
// use in select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func start[T any](call func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = call()
	}()
	return f
}

// Client is the non-blocking counterpart of api.Client. It holds the same
// immutable configuration and is safe for concurrent use; in-flight calls
// never affect each other.
type Client struct {
	inner *api.Client
}

// New creates a non-blocking client. Construction is identical to api.New,
// including its *api.ConfigError failure mode.
func New(baseURL string, opts ...api.Option) (*Client, error) {
	inner, err := api.New(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{inner: inner}, nil
}

// NewFromClient wraps an already-configured blocking client.
func NewFromClient(inner *api.Client) *Client {
	return &Client{inner: inner}
}

func (c *Client) GetBlock(ctx context.Context, hash string) *Future[*types.Block] {
	return start(func() (*types.Block, error) { return c.inner.GetBlock(ctx, hash) })
}

func (c *Client) GetBlockStatus(ctx context.Context, hash string) *Future[*types.BlockStatus] {
	return start(func() (*types.BlockStatus, error) { return c.inner.GetBlockStatus(ctx, hash) })
}

func (c *Client) GetBlockTxs(ctx context.Context, hash string, startIndex int) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetBlockTxs(ctx, hash, startIndex) })
}

func (c *Client) GetBlockTxids(ctx context.Context, hash string) *Future[[]string] {
	return start(func() ([]string, error) { return c.inner.GetBlockTxids(ctx, hash) })
}

func (c *Client) GetBlockTxidAtIndex(ctx context.Context, hash string, index int) *Future[string] {
	return start(func() (string, error) { return c.inner.GetBlockTxidAtIndex(ctx, hash, index) })
}

func (c *Client) GetBlockRaw(ctx context.Context, hash string) *Future[[]byte] {
	return start(func() ([]byte, error) { return c.inner.GetBlockRaw(ctx, hash) })
}

func (c *Client) GetBlockHashByHeight(ctx context.Context, height int64) *Future[string] {
	return start(func() (string, error) { return c.inner.GetBlockHashByHeight(ctx, height) })
}

func (c *Client) GetBlockByHeight(ctx context.Context, height int64) *Future[*types.Block] {
	return start(func() (*types.Block, error) { return c.inner.GetBlockByHeight(ctx, height) })
}

func (c *Client) GetBlocks(ctx context.Context, startHeight int64) *Future[[]types.Block] {
	return start(func() ([]types.Block, error) { return c.inner.GetBlocks(ctx, startHeight) })
}

func (c *Client) GetRecentBlocks(ctx context.Context) *Future[[]types.Block] {
	return start(func() ([]types.Block, error) { return c.inner.GetRecentBlocks(ctx) })
}

func (c *Client) GetBlocksTipHeight(ctx context.Context) *Future[int64] {
	return start(func() (int64, error) { return c.inner.GetBlocksTipHeight(ctx) })
}

func (c *Client) GetBlocksTipHash(ctx context.Context) *Future[string] {
	return start(func() (string, error) { return c.inner.GetBlocksTipHash(ctx) })
}

func (c *Client) GetTx(ctx context.Context, txid string) *Future[*types.Transaction] {
	return start(func() (*types.Transaction, error) { return c.inner.GetTx(ctx, txid) })
}

func (c *Client) GetTxStatus(ctx context.Context, txid string) *Future[*types.TxStatus] {
	return start(func() (*types.TxStatus, error) { return c.inner.GetTxStatus(ctx, txid) })
}

func (c *Client) GetTxHex(ctx context.Context, txid string) *Future[string] {
	return start(func() (string, error) { return c.inner.GetTxHex(ctx, txid) })
}

func (c *Client) GetTxRaw(ctx context.Context, txid string) *Future[[]byte] {
	return start(func() ([]byte, error) { return c.inner.GetTxRaw(ctx, txid) })
}

func (c *Client) GetTxMerkleProof(ctx context.Context, txid string) *Future[*types.MerkleProof] {
	return start(func() (*types.MerkleProof, error) { return c.inner.GetTxMerkleProof(ctx, txid) })
}

func (c *Client) GetTxMerkleblockProof(ctx context.Context, txid string) *Future[string] {
	return start(func() (string, error) { return c.inner.GetTxMerkleblockProof(ctx, txid) })
}

func (c *Client) GetTxOutspend(ctx context.Context, txid string, vout uint32) *Future[*types.Outspend] {
	return start(func() (*types.Outspend, error) { return c.inner.GetTxOutspend(ctx, txid, vout) })
}

func (c *Client) GetTxOutspends(ctx context.Context, txid string) *Future[[]types.Outspend] {
	return start(func() ([]types.Outspend, error) { return c.inner.GetTxOutspends(ctx, txid) })
}

func (c *Client) BroadcastTx(ctx context.Context, txHex string) *Future[string] {
	return start(func() (string, error) { return c.inner.BroadcastTx(ctx, txHex) })
}

func (c *Client) GetAddress(ctx context.Context, address string) *Future[*types.AddressInfo] {
	return start(func() (*types.AddressInfo, error) { return c.inner.GetAddress(ctx, address) })
}

func (c *Client) GetScriptHash(ctx context.Context, scripthash string) *Future[*types.AddressInfo] {
	return start(func() (*types.AddressInfo, error) { return c.inner.GetScriptHash(ctx, scripthash) })
}

func (c *Client) GetAddressTxs(ctx context.Context, address string) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetAddressTxs(ctx, address) })
}

func (c *Client) GetScriptHashTxs(ctx context.Context, scripthash string) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetScriptHashTxs(ctx, scripthash) })
}

func (c *Client) GetAddressTxsChain(ctx context.Context, address, lastSeenTxid string) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetAddressTxsChain(ctx, address, lastSeenTxid) })
}

func (c *Client) GetScriptHashTxsChain(ctx context.Context, scripthash, lastSeenTxid string) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetScriptHashTxsChain(ctx, scripthash, lastSeenTxid) })
}

func (c *Client) GetAddressTxsMempool(ctx context.Context, address string) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetAddressTxsMempool(ctx, address) })
}

func (c *Client) GetScriptHashTxsMempool(ctx context.Context, scripthash string) *Future[[]types.Transaction] {
	return start(func() ([]types.Transaction, error) { return c.inner.GetScriptHashTxsMempool(ctx, scripthash) })
}

func (c *Client) GetAddressUTXOs(ctx context.Context, address string) *Future[[]types.UTXO] {
	return start(func() ([]types.UTXO, error) { return c.inner.GetAddressUTXOs(ctx, address) })
}

func (c *Client) GetScriptHashUTXOs(ctx context.Context, scripthash string) *Future[[]types.UTXO] {
	return start(func() ([]types.UTXO, error) { return c.inner.GetScriptHashUTXOs(ctx, scripthash) })
}

func (c *Client) SearchAddresses(ctx context.Context, prefix string) *Future[[]string] {
	return start(func() ([]string, error) { return c.inner.SearchAddresses(ctx, prefix) })
}

func (c *Client) GetMempool(ctx context.Context) *Future[*types.MempoolInfo] {
	return start(func() (*types.MempoolInfo, error) { return c.inner.GetMempool(ctx) })
}

func (c *Client) GetMempoolTxids(ctx context.Context) *Future[[]string] {
	return start(func() ([]string, error) { return c.inner.GetMempoolTxids(ctx) })
}

func (c *Client) GetMempoolRecent(ctx context.Context) *Future[[]types.MempoolRecentTx] {
	return start(func() ([]types.MempoolRecentTx, error) { return c.inner.GetMempoolRecent(ctx) })
}

func (c *Client) GetFeeEstimates(ctx context.Context) *Future[types.FeeEstimates] {
	return start(func() (types.FeeEstimates, error) { return c.inner.GetFeeEstimates(ctx) })
}
