package types

import "fmt"

// AddressInfo is the response of GET /address/:address and
// GET /scripthash/:hash. Exactly one of Address and ScriptHash is set,
// depending on which endpoint produced it.
type AddressInfo struct {
	Address      *string      `json:"address"`
	ScriptHash   *string      `json:"scripthash"`
	ChainStats   AddressStats `json:"chain_stats"`
	MempoolStats AddressStats `json:"mempool_stats"`
}

// ConfirmedBalance is the confirmed balance in satoshis.
func (a *AddressInfo) ConfirmedBalance() int64 {
	return a.ChainStats.FundedTxoSum - a.ChainStats.SpentTxoSum
}

// MempoolBalance is the net unconfirmed balance change in satoshis. It can
// be negative when unconfirmed transactions spend confirmed outputs.
func (a *AddressInfo) MempoolBalance() int64 {
	return a.MempoolStats.FundedTxoSum - a.MempoolStats.SpentTxoSum
}

func (a *AddressInfo) Validate() error {
	if a.ScriptHash != nil {
		if err := checkHash("scripthash", *a.ScriptHash); err != nil {
			return err
		}
	}
	if err := a.ChainStats.Validate(); err != nil {
		return fmt.Errorf("chain_stats: %w", err)
	}
	if err := a.MempoolStats.Validate(); err != nil {
		return fmt.Errorf("mempool_stats: %w", err)
	}
	if a.ConfirmedBalance() < 0 {
		return fmt.Errorf("confirmed spent sum %d exceeds funded sum %d",
			a.ChainStats.SpentTxoSum, a.ChainStats.FundedTxoSum)
	}
	return nil
}

// AddressStats summarizes either the confirmed chain history or the mempool
// history of an address or script hash.
type AddressStats struct {
	FundedTxoCount int64 `json:"funded_txo_count"`
	FundedTxoSum   int64 `json:"funded_txo_sum"`
	SpentTxoCount  int64 `json:"spent_txo_count"`
	SpentTxoSum    int64 `json:"spent_txo_sum"`
	TxCount        int64 `json:"tx_count"`
}

func (s *AddressStats) Validate() error {
	for _, field := range []struct {
		name  string
		value int64
	}{
		{"funded_txo_count", s.FundedTxoCount},
		{"funded_txo_sum", s.FundedTxoSum},
		{"spent_txo_count", s.SpentTxoCount},
		{"spent_txo_sum", s.SpentTxoSum},
		{"tx_count", s.TxCount},
	} {
		if err := checkNonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}
