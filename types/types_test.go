package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBlockHash  = "000000000000003aaa3b99e31ed1cac4744b423f9e52ada4971461c81d4192f7"
	testMerkleRoot = "aa49977fab1c964208bae9def0a2fdcd13fabaff558a9bcd0ef8e88e7774f50b"
	testTxid       = "c9ee6eff3d73d6cb92382125c3207f6447922b545d4d4e74c47bfeb56fff7d24"
	testPrevHash   = "000000000000002b6f0830e1b92c6e59f18d147c0370a3425c91be21e0b1ff85"
)

func TestBlockDecode(t *testing.T) {
	data := `{
		"id": "` + testBlockHash + `",
		"height": 1277992,
		"version": 536870912,
		"timestamp": 1520363922,
		"bits": 436330132,
		"nonce": 2089167934,
		"difficulty": 12168021.59,
		"merkle_root": "` + testMerkleRoot + `",
		"tx_count": 26,
		"size": 8810,
		"weight": 22776,
		"previousblockhash": "` + testPrevHash + `"
	}`

	var block Block
	require.NoError(t, json.Unmarshal([]byte(data), &block))
	require.NoError(t, block.Validate())

	assert.Equal(t, testBlockHash, block.ID)
	assert.Equal(t, int64(1277992), block.Height)
	assert.Equal(t, int64(26), block.TxCount)
	require.NotNil(t, block.PreviousBlockHash)
	assert.Equal(t, testPrevHash, *block.PreviousBlockHash)
}

func TestBlockValidate(t *testing.T) {
	valid := Block{
		ID:         testBlockHash,
		Height:     100,
		Timestamp:  1520363922,
		MerkleRoot: testMerkleRoot,
		TxCount:    1,
		Size:       285,
		Weight:     1140,
	}

	tests := []struct {
		name   string
		mutate func(*Block)
		errMsg string
	}{
		{"negative height", func(b *Block) { b.Height = -1 }, "height"},
		{"negative tx_count", func(b *Block) { b.TxCount = -5 }, "tx_count"},
		{"negative size", func(b *Block) { b.Size = -1 }, "size"},
		{"bad id", func(b *Block) { b.ID = "xyz" }, "block id"},
		{"bad previous hash", func(b *Block) { bad := "12ab"; b.PreviousBlockHash = &bad }, "previous block hash"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			block := valid
			test.mutate(&block)
			err := block.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errMsg)
		})
	}
	require.NoError(t, valid.Validate())
}

func TestGenesisBlockHasNoPrevious(t *testing.T) {
	data := `{
		"id": "` + testBlockHash + `",
		"height": 0,
		"merkle_root": "` + testMerkleRoot + `",
		"tx_count": 1,
		"size": 285,
		"weight": 1140
	}`

	var block Block
	require.NoError(t, json.Unmarshal([]byte(data), &block))
	require.NoError(t, block.Validate())
	assert.Nil(t, block.PreviousBlockHash)
}

func TestTransactionDecode(t *testing.T) {
	data := `{
		"txid": "` + testTxid + `",
		"version": 1,
		"locktime": 0,
		"size": 223,
		"weight": 892,
		"fee": 16792,
		"vin": [{
			"txid": "` + testPrevHash + `",
			"vout": 1,
			"is_coinbase": false,
			"scriptsig": "47304402",
			"scriptsig_asm": "OP_PUSHBYTES_71",
			"sequence": 4294967295,
			"prevout": {
				"scriptpubkey": "76a91488ac",
				"scriptpubkey_asm": "OP_DUP OP_HASH160",
				"scriptpubkey_type": "p2pkh",
				"scriptpubkey_address": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
				"value": 503280
			}
		}],
		"vout": [{
			"scriptpubkey": "0014751e",
			"scriptpubkey_asm": "OP_0 OP_PUSHBYTES_20",
			"scriptpubkey_type": "v0_p2wpkh",
			"scriptpubkey_address": "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			"value": 486488
		}],
		"status": {
			"confirmed": true,
			"block_height": 1277992,
			"block_hash": "` + testBlockHash + `",
			"block_time": 1520363922
		}
	}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &tx))
	require.NoError(t, tx.Validate())

	assert.Equal(t, testTxid, tx.TxID)
	assert.Equal(t, int64(16792), tx.Fee)
	require.Len(t, tx.Vin, 1)
	require.NotNil(t, tx.Vin[0].Prevout)
	assert.Equal(t, int64(503280), tx.Vin[0].Prevout.Value)
	require.Len(t, tx.Vout, 1)
	require.NotNil(t, tx.Status.BlockHeight)
	assert.Equal(t, int64(1277992), *tx.Status.BlockHeight)
}

func TestTransactionValidate(t *testing.T) {
	tx := Transaction{
		TxID: testTxid,
		Size: 200,
		Vout: []Vout{{ScriptPubKeyType: "p2pkh", Value: 1000}},
	}
	require.NoError(t, tx.Validate())

	tx.Fee = -1
	err := tx.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fee")

	tx.Fee = 0
	tx.Vout[0].Value = -500
	err = tx.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vout 0")
}

func TestUnconfirmedTxStatus(t *testing.T) {
	var status TxStatus
	require.NoError(t, json.Unmarshal([]byte(`{"confirmed": false}`), &status))
	require.NoError(t, status.Validate())
	assert.False(t, status.Confirmed)
	assert.Nil(t, status.BlockHeight)
	assert.Nil(t, status.BlockHash)
	assert.Nil(t, status.BlockTime)
}

func TestAddressInfoBalances(t *testing.T) {
	data := `{
		"address": "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		"chain_stats": {
			"funded_txo_count": 5,
			"funded_txo_sum": 150000,
			"spent_txo_count": 2,
			"spent_txo_sum": 40000,
			"tx_count": 7
		},
		"mempool_stats": {
			"funded_txo_count": 0,
			"funded_txo_sum": 0,
			"spent_txo_count": 1,
			"spent_txo_sum": 10000,
			"tx_count": 1
		}
	}`

	var info AddressInfo
	require.NoError(t, json.Unmarshal([]byte(data), &info))
	require.NoError(t, info.Validate())

	assert.Equal(t, int64(110000), info.ConfirmedBalance())
	assert.Equal(t, int64(-10000), info.MempoolBalance())
}

func TestAddressInfoValidate(t *testing.T) {
	info := AddressInfo{
		ChainStats: AddressStats{FundedTxoSum: 100, SpentTxoSum: 200},
	}
	err := info.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds funded sum")

	info = AddressInfo{ChainStats: AddressStats{TxCount: -1}}
	err = info.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx_count")
}

func TestMempoolInfoDecode(t *testing.T) {
	data := `{
		"count": 8134,
		"vsize": 3444604,
		"total_fee": 29204625,
		"fee_histogram": [[53.01, 102131], [38.56, 110990], [1.1, 775272]]
	}`

	var info MempoolInfo
	require.NoError(t, json.Unmarshal([]byte(data), &info))
	require.NoError(t, info.Validate())

	require.Len(t, info.FeeHistogram, 3)
	assert.Equal(t, 53.01, info.FeeHistogram[0].FeeRate)
	assert.Equal(t, int64(102131), info.FeeHistogram[0].Vsize)
}

func TestFeeHistogramEntryRejectsBadPair(t *testing.T) {
	var entry FeeHistogramEntry
	err := json.Unmarshal([]byte(`[53.01]`), &entry)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`"not a pair"`), &entry)
	require.Error(t, err)
}

func TestFeeEstimatesDecode(t *testing.T) {
	data := `{"1": 87.882, "2": 87.882, "6": 68.285, "144": 1.027}`

	var estimates FeeEstimates
	require.NoError(t, json.Unmarshal([]byte(data), &estimates))
	require.NoError(t, estimates.Validate())

	assert.Equal(t, []int{1, 2, 6, 144}, estimates.Targets())
	assert.True(t, estimates[6].Equal(decimal.NewFromFloat(68.285)))
}

func TestFeeEstimatesValidate(t *testing.T) {
	estimates := FeeEstimates{0: decimal.NewFromInt(1)}
	err := estimates.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirmation target")

	estimates = FeeEstimates{1: decimal.NewFromInt(-2)}
	err = estimates.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")

	var bad FeeEstimates
	require.Error(t, json.Unmarshal([]byte(`{"abc": 1.0}`), &bad))
}
