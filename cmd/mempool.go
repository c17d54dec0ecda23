package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mempoolRecentFlag bool

var mempoolCmd = &cobra.Command{
	Use:   "mempool",
	Short: "Show mempool statistics",
	Long: `Show mempool backlog statistics, or the transactions that most
recently entered the mempool.

Examples:
  esplora mempool
  esplora mempool --recent`,
	Args: cobra.NoArgs,
	RunE: runMempool,
}

func init() {
	mempoolCmd.Flags().BoolVar(&mempoolRecentFlag, "recent", false, "show the last transactions to enter the mempool")
	rootCmd.AddCommand(mempoolCmd)
}

func runMempool(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if mempoolRecentFlag {
		recent, err := client.GetMempoolRecent(cmd.Context())
		if err != nil {
			return err
		}
		for _, tx := range recent {
			fmt.Printf("  %s  %d sat fee, %d vB\n", tx.TxID, tx.Fee, tx.Vsize)
		}
		return nil
	}

	info, err := client.GetMempool(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println("Mempool")
	fmt.Printf("  Transactions: %d\n", info.Count)
	fmt.Printf("  Total vsize:  %d vB\n", info.Vsize)
	fmt.Printf("  Total fees:   %d sat\n", info.TotalFee)
	if len(info.FeeHistogram) > 0 {
		fmt.Println("  Fee histogram (sat/vB: vsize):")
		for _, entry := range info.FeeHistogram {
			fmt.Printf("    %8.2f: %d\n", entry.FeeRate, entry.Vsize)
		}
	}
	return nil
}
