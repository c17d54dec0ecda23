package types

import "fmt"

// Transaction is the response of GET /tx/:txid. Transactions returned from
// block listings share the block's confirmation status.
type Transaction struct {
	TxID     string   `json:"txid"`
	Version  int64    `json:"version"`
	Locktime int64    `json:"locktime"`
	Size     int64    `json:"size"`
	Weight   int64    `json:"weight"`
	Fee      int64    `json:"fee"`
	Vin      []Vin    `json:"vin"`
	Vout     []Vout   `json:"vout"`
	Status   TxStatus `json:"status"`
}

func (t *Transaction) Validate() error {
	if err := checkHash("txid", t.TxID); err != nil {
		return err
	}
	for _, field := range []struct {
		name  string
		value int64
	}{
		{"size", t.Size},
		{"weight", t.Weight},
		{"fee", t.Fee},
	} {
		if err := checkNonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	for i := range t.Vin {
		if err := t.Vin[i].Validate(); err != nil {
			return fmt.Errorf("vin %d: %w", i, err)
		}
	}
	for i := range t.Vout {
		if err := t.Vout[i].Validate(); err != nil {
			return fmt.Errorf("vout %d: %w", i, err)
		}
	}
	return t.Status.Validate()
}

// Vin is a transaction input. Prevout is nil for coinbase inputs.
type Vin struct {
	TxID         string   `json:"txid"`
	Vout         uint32   `json:"vout"`
	IsCoinbase   bool     `json:"is_coinbase"`
	ScriptSig    string   `json:"scriptsig"`
	ScriptSigAsm string   `json:"scriptsig_asm"`
	Sequence     int64    `json:"sequence"`
	Witness      []string `json:"witness"`
	Prevout      *Vout    `json:"prevout"`
}

func (v *Vin) Validate() error {
	if err := checkHash("txid", v.TxID); err != nil {
		return err
	}
	if v.Prevout != nil {
		return v.Prevout.Validate()
	}
	return nil
}

// Vout is a transaction output. ScriptPubKeyAddress is nil for outputs whose
// script does not encode a standard address.
type Vout struct {
	ScriptPubKey        string  `json:"scriptpubkey"`
	ScriptPubKeyAsm     string  `json:"scriptpubkey_asm"`
	ScriptPubKeyType    string  `json:"scriptpubkey_type"`
	ScriptPubKeyAddress *string `json:"scriptpubkey_address"`
	Value               int64   `json:"value"`
}

func (v *Vout) Validate() error {
	return checkNonNegative("value", v.Value)
}

// TxStatus is the confirmation status of a transaction, returned by
// GET /tx/:txid/status and embedded in Transaction. The block fields are nil
// while the transaction is unconfirmed.
type TxStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *int64  `json:"block_height"`
	BlockHash   *string `json:"block_hash"`
	BlockTime   *int64  `json:"block_time"`
}

func (s *TxStatus) Validate() error {
	if s.BlockHeight != nil {
		if err := checkNonNegative("block_height", *s.BlockHeight); err != nil {
			return err
		}
	}
	if s.BlockHash != nil {
		if err := checkHash("block_hash", *s.BlockHash); err != nil {
			return err
		}
	}
	if s.BlockTime != nil {
		if err := checkNonNegative("block_time", *s.BlockTime); err != nil {
			return err
		}
	}
	return nil
}

// UTXO is one entry of GET /address/:address/utxo.
type UTXO struct {
	TxID   string   `json:"txid"`
	Vout   uint32   `json:"vout"`
	Status TxStatus `json:"status"`
	Value  int64    `json:"value"`
}

func (u *UTXO) Validate() error {
	if err := checkHash("txid", u.TxID); err != nil {
		return err
	}
	if err := checkNonNegative("value", u.Value); err != nil {
		return err
	}
	return u.Status.Validate()
}

// MerkleProof is the response of GET /tx/:txid/merkle-proof, in Electrum's
// blockchain.transaction.get_merkle format.
type MerkleProof struct {
	BlockHeight int64    `json:"block_height"`
	Merkle      []string `json:"merkle"`
	Pos         int64    `json:"pos"`
}

func (m *MerkleProof) Validate() error {
	if err := checkNonNegative("block_height", m.BlockHeight); err != nil {
		return err
	}
	if err := checkNonNegative("pos", m.Pos); err != nil {
		return err
	}
	for _, h := range m.Merkle {
		if err := checkHash("merkle node", h); err != nil {
			return err
		}
	}
	return nil
}

// Outspend is the spending status of a transaction output. TxID, Vin and
// Status are nil while the output is unspent.
type Outspend struct {
	Spent  bool      `json:"spent"`
	TxID   *string   `json:"txid"`
	Vin    *uint32   `json:"vin"`
	Status *TxStatus `json:"status"`
}

func (o *Outspend) Validate() error {
	if o.TxID != nil {
		if err := checkHash("spending txid", *o.TxID); err != nil {
			return err
		}
	}
	if o.Status != nil {
		return o.Status.Validate()
	}
	return nil
}
