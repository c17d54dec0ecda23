package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Show fee estimates",
	Long: `Show the estimated fee rate (sat/vB) for each confirmation target.

Example:
  esplora fees`,
	Args: cobra.NoArgs,
	RunE: runFees,
}

func init() {
	rootCmd.AddCommand(feesCmd)
}

func runFees(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	estimates, err := client.GetFeeEstimates(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("Fee estimates (confirmation target: sat/vB)")
	for _, target := range estimates.Targets() {
		fmt.Printf("  %4d blocks: %s\n", target, estimates[target].StringFixed(3))
	}
	return nil
}
