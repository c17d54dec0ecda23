package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Show the current chain tip",
	Args:  cobra.NoArgs,
	RunE:  runTip,
}

func init() {
	rootCmd.AddCommand(tipCmd)
}

func runTip(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	height, err := client.GetBlocksTipHeight(cmd.Context())
	if err != nil {
		return err
	}
	hash, err := client.GetBlocksTipHash(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Height: %s\n", color.GreenString("%d", height))
	fmt.Printf("Hash:   %s\n", hash)
	return nil
}
