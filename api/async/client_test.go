package async

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/esplora/api"
)

const (
	testBlockHash = "000000000000003aaa3b99e31ed1cac4744b423f9e52ada4971461c81d4192f7"
	testTxid      = "c9ee6eff3d73d6cb92382125c3207f6447922b545d4d4e74c47bfeb56fff7d24"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tx/"+testTxid, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"txid": "`+testTxid+`",
			"version": 1,
			"locktime": 0,
			"size": 223,
			"weight": 892,
			"fee": 16792,
			"vin": [],
			"vout": [],
			"status": {
				"confirmed": true,
				"block_height": 1277992,
				"block_hash": "`+testBlockHash+`",
				"block_time": 1520363922
			}
		}`)
	})
	mux.HandleFunc("/blocks/tip/height", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "1277992")
	})
	mux.HandleFunc("/fee-estimates", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"1": 87.882, "6": 68.285}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// Both execution modes share the routing and decoding core, so identical
// responses must decode to identical values.
func TestBlockingAndAsyncDecodeIdentically(t *testing.T) {
	server := testServer(t)
	ctx := context.Background()

	blocking, err := api.New(server.URL)
	require.NoError(t, err)
	nonBlocking, err := New(server.URL)
	require.NoError(t, err)

	blockingTx, err := blocking.GetTx(ctx, testTxid)
	require.NoError(t, err)
	asyncTx, err := nonBlocking.GetTx(ctx, testTxid).Wait()
	require.NoError(t, err)
	assert.Equal(t, blockingTx, asyncTx)

	blockingHeight, err := blocking.GetBlocksTipHeight(ctx)
	require.NoError(t, err)
	asyncHeight, err := nonBlocking.GetBlocksTipHeight(ctx).Wait()
	require.NoError(t, err)
	assert.Equal(t, blockingHeight, asyncHeight)

	blockingFees, err := blocking.GetFeeEstimates(ctx)
	require.NoError(t, err)
	asyncFees, err := nonBlocking.GetFeeEstimates(ctx).Wait()
	require.NoError(t, err)
	assert.Equal(t, blockingFees, asyncFees)
}

func TestFutureWaitIsIdempotent(t *testing.T) {
	server := testServer(t)

	client, err := New(server.URL)
	require.NoError(t, err)

	future := client.GetBlocksTipHeight(context.Background())
	first, err1 := future.Wait()
	second, err2 := future.Wait()

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestFutureDoneSelect(t *testing.T) {
	server := testServer(t)

	client, err := New(server.URL)
	require.NoError(t, err)

	future := client.GetTx(context.Background(), testTxid)
	select {
	case <-future.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("future never completed")
	}

	tx, err := future.Wait()
	require.NoError(t, err)
	assert.Equal(t, testTxid, tx.TxID)
}

func TestAsyncPropagatesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "Transaction not found")
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.GetTx(context.Background(), testTxid).Wait()
	require.Error(t, err)

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Transaction not found", apiErr.Body)

	// Parameter validation errors travel through the future as well.
	_, err = client.GetTx(context.Background(), "nope").Wait()
	var invalid *api.InvalidParameterError
	require.True(t, errors.As(err, &invalid))
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New("")
	var configErr *api.ConfigError
	require.True(t, errors.As(err, &configErr))
}
