package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/esplora/types"
)

var blockHeightFlag int64

var blockCmd = &cobra.Command{
	Use:   "block [hash]",
	Short: "Show block details",
	Long: `Show details for a block, looked up by hash or by height.

Examples:
  esplora block 000000000000003aaa3b99e31ed1cac4744b423f9e52ada4971461c81d4192f7
  esplora block --height 424242`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBlock,
}

func init() {
	blockCmd.Flags().Int64Var(&blockHeightFlag, "height", -1, "look the block up by height instead of hash")
	rootCmd.AddCommand(blockCmd)
}

func runBlock(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var block *types.Block
	switch {
	case len(args) == 1 && blockHeightFlag >= 0:
		return fmt.Errorf("pass either a block hash or --height, not both")
	case len(args) == 1:
		block, err = client.GetBlock(cmd.Context(), args[0])
	case blockHeightFlag >= 0:
		block, err = client.GetBlockByHeight(cmd.Context(), blockHeightFlag)
	default:
		return fmt.Errorf("a block hash or --height is required")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Block %s\n", color.CyanString(block.ID))
	fmt.Printf("  Height:      %d\n", block.Height)
	fmt.Printf("  Time:        %s\n", time.Unix(block.Timestamp, 0).UTC().Format(time.RFC3339))
	fmt.Printf("  Txs:         %d\n", block.TxCount)
	fmt.Printf("  Size:        %d bytes\n", block.Size)
	fmt.Printf("  Weight:      %d WU\n", block.Weight)
	fmt.Printf("  Merkle root: %s\n", block.MerkleRoot)
	if block.PreviousBlockHash != nil {
		fmt.Printf("  Previous:    %s\n", *block.PreviousBlockHash)
	}
	return nil
}
