package types

// Block is the response of GET /block/:hash.
type Block struct {
	ID         string  `json:"id"`
	Height     int64   `json:"height"`
	Version    int64   `json:"version"`
	Timestamp  int64   `json:"timestamp"`
	Bits       int64   `json:"bits"`
	Nonce      int64   `json:"nonce"`
	Difficulty float64 `json:"difficulty"`
	MerkleRoot string  `json:"merkle_root"`
	TxCount    int64   `json:"tx_count"`
	Size       int64   `json:"size"`
	Weight     int64   `json:"weight"`
	// PreviousBlockHash is nil for the genesis block.
	PreviousBlockHash *string `json:"previousblockhash"`
}

func (b *Block) Validate() error {
	if err := checkHash("block id", b.ID); err != nil {
		return err
	}
	if err := checkHash("merkle root", b.MerkleRoot); err != nil {
		return err
	}
	if b.PreviousBlockHash != nil {
		if err := checkHash("previous block hash", *b.PreviousBlockHash); err != nil {
			return err
		}
	}
	for _, field := range []struct {
		name  string
		value int64
	}{
		{"height", b.Height},
		{"timestamp", b.Timestamp},
		{"tx_count", b.TxCount},
		{"size", b.Size},
		{"weight", b.Weight},
	} {
		if err := checkNonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}

// BlockStatus is the response of GET /block/:hash/status.
type BlockStatus struct {
	InBestChain bool `json:"in_best_chain"`
	// NextBest is nil for the tip and for orphaned blocks.
	NextBest *string `json:"next_best"`
	Height   int64   `json:"height"`
}

func (s *BlockStatus) Validate() error {
	if s.NextBest != nil {
		if err := checkHash("next best hash", *s.NextBest); err != nil {
			return err
		}
	}
	return checkNonNegative("height", s.Height)
}
