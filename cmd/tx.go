package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var txStatusFlag bool

var txCmd = &cobra.Command{
	Use:   "tx <txid>",
	Short: "Show transaction details",
	Long: `Show details for a transaction by txid.

Examples:
  esplora tx c9ee6eff3d73d6cb92382125c3207f6447922b545d4d4e74c47bfeb56fff7d24
  esplora tx c9ee6eff3d73d6cb... --status`,
	Args: cobra.ExactArgs(1),
	RunE: runTx,
}

func init() {
	txCmd.Flags().BoolVar(&txStatusFlag, "status", false, "show only the confirmation status")
	rootCmd.AddCommand(txCmd)
}

func runTx(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if txStatusFlag {
		status, err := client.GetTxStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !status.Confirmed {
			fmt.Printf("Status: %s\n", color.YellowString("unconfirmed"))
			return nil
		}
		fmt.Printf("Status: %s\n", color.GreenString("confirmed"))
		if status.BlockHeight != nil {
			fmt.Printf("  Block height: %d\n", *status.BlockHeight)
		}
		if status.BlockHash != nil {
			fmt.Printf("  Block hash:   %s\n", *status.BlockHash)
		}
		return nil
	}

	tx, err := client.GetTx(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Transaction %s\n", color.CyanString(tx.TxID))
	fmt.Printf("  Version:  %d\n", tx.Version)
	fmt.Printf("  Locktime: %d\n", tx.Locktime)
	fmt.Printf("  Size:     %d bytes\n", tx.Size)
	fmt.Printf("  Fee:      %d sat\n", tx.Fee)
	fmt.Printf("  Inputs:   %d\n", len(tx.Vin))
	fmt.Printf("  Outputs:  %d\n", len(tx.Vout))
	for i, out := range tx.Vout {
		addr := "(no address)"
		if out.ScriptPubKeyAddress != nil {
			addr = *out.ScriptPubKeyAddress
		}
		fmt.Printf("    #%d: %d sat -> %s\n", i, out.Value, addr)
	}
	if tx.Status.Confirmed {
		fmt.Printf("  Status:   %s\n", color.GreenString("confirmed"))
	} else {
		fmt.Printf("  Status:   %s\n", color.YellowString("unconfirmed"))
	}
	return nil
}
