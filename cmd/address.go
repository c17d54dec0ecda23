package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addressUtxoFlag bool
	addressTxsFlag  bool
)

var addressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "Show address balance and history",
	Long: `Show the confirmed and mempool statistics for an address, its
unspent outputs, or its transaction history.

Examples:
  esplora address bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq
  esplora address bc1q... --utxo
  esplora address bc1q... --txs`,
	Args: cobra.ExactArgs(1),
	RunE: runAddress,
}

func init() {
	addressCmd.Flags().BoolVar(&addressUtxoFlag, "utxo", false, "list unspent outputs")
	addressCmd.Flags().BoolVar(&addressTxsFlag, "txs", false, "list recent transactions")
	rootCmd.AddCommand(addressCmd)
}

func runAddress(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	address := args[0]

	if addressUtxoFlag {
		utxos, err := client.GetAddressUTXOs(cmd.Context(), address)
		if err != nil {
			return err
		}
		fmt.Printf("%d unspent outputs\n", len(utxos))
		for _, utxo := range utxos {
			state := color.YellowString("mempool")
			if utxo.Status.Confirmed {
				state = color.GreenString("confirmed")
			}
			fmt.Printf("  %s:%d  %d sat (%s)\n", utxo.TxID, utxo.Vout, utxo.Value, state)
		}
		return nil
	}

	if addressTxsFlag {
		txs, err := client.GetAddressTxs(cmd.Context(), address)
		if err != nil {
			return err
		}
		fmt.Printf("%d transactions (newest first)\n", len(txs))
		for _, tx := range txs {
			state := color.YellowString("mempool")
			if tx.Status.Confirmed {
				state = color.GreenString("confirmed")
			}
			fmt.Printf("  %s  fee %d sat (%s)\n", tx.TxID, tx.Fee, state)
		}
		return nil
	}

	info, err := client.GetAddress(cmd.Context(), address)
	if err != nil {
		return err
	}
	fmt.Printf("Address %s\n", color.CyanString(address))
	fmt.Printf("  Confirmed balance: %d sat\n", info.ConfirmedBalance())
	fmt.Printf("  Mempool delta:     %d sat\n", info.MempoolBalance())
	fmt.Printf("  Confirmed txs:     %d\n", info.ChainStats.TxCount)
	fmt.Printf("  Mempool txs:       %d\n", info.MempoolStats.TxCount)
	return nil
}
