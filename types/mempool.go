package types

import (
	"encoding/json"
	"fmt"
)

// MempoolInfo is the response of GET /mempool.
type MempoolInfo struct {
	Count        int64               `json:"count"`
	Vsize        int64               `json:"vsize"`
	TotalFee     int64               `json:"total_fee"`
	FeeHistogram []FeeHistogramEntry `json:"fee_histogram"`
}

func (m *MempoolInfo) Validate() error {
	for _, field := range []struct {
		name  string
		value int64
	}{
		{"count", m.Count},
		{"vsize", m.Vsize},
		{"total_fee", m.TotalFee},
	} {
		if err := checkNonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	for i, entry := range m.FeeHistogram {
		if entry.FeeRate < 0 {
			return fmt.Errorf("fee_histogram entry %d: negative fee rate %v", i, entry.FeeRate)
		}
		if entry.Vsize < 0 {
			return fmt.Errorf("fee_histogram entry %d: negative vsize %d", i, entry.Vsize)
		}
	}
	return nil
}

// FeeHistogramEntry is one bucket of the mempool fee-rate distribution. The
// wire encoding is a [feerate, vsize] pair, matching the Electrum RPC
// mempool.get_fee_histogram format.
type FeeHistogramEntry struct {
	FeeRate float64
	Vsize   int64
}

func (e *FeeHistogramEntry) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("fee histogram entry has %d elements, want 2", len(pair))
	}
	e.FeeRate = pair[0]
	e.Vsize = int64(pair[1])
	return nil
}

func (e FeeHistogramEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{e.FeeRate, float64(e.Vsize)})
}

// MempoolRecentTx is one entry of GET /mempool/recent, a simplified overview
// of a transaction that recently entered the mempool.
type MempoolRecentTx struct {
	TxID  string `json:"txid"`
	Fee   int64  `json:"fee"`
	Vsize int64  `json:"vsize"`
	Value int64  `json:"value"`
}

func (t *MempoolRecentTx) Validate() error {
	if err := checkHash("txid", t.TxID); err != nil {
		return err
	}
	for _, field := range []struct {
		name  string
		value int64
	}{
		{"fee", t.Fee},
		{"vsize", t.Vsize},
		{"value", t.Value},
	} {
		if err := checkNonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}
