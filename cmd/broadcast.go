package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast <raw-tx-hex>",
	Short: "Broadcast a raw transaction",
	Long: `Broadcast a hex-encoded raw transaction to the network and print
the txid assigned by the server.

Example:
  esplora broadcast 01000000000101...`,
	Args: cobra.ExactArgs(1),
	RunE: runBroadcast,
}

func init() {
	rootCmd.AddCommand(broadcastCmd)
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	txid, err := client.BroadcastTx(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("✅ Broadcast accepted: %s\n", color.GreenString(txid))
	return nil
}
