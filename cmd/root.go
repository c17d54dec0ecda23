package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chinmay1088/esplora/api"
)

var (
	version = "1.0.0"

	endpointFlag string
	testnetFlag  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "esplora",
	Version: version,
	Short:   "Query a Blockstream Esplora block explorer",
	Long: `Esplora is a command-line client for the Blockstream Esplora/Electrs
block explorer REST API. It can look up blocks, transactions, addresses,
mempool statistics and fee estimates on any Esplora deployment.

Examples:
  esplora tip                          # Current chain tip
  esplora block 00000000000000...      # Block details by hash
  esplora block --height 424242        # Block details by height
  esplora tx c9ee6eff3d73d6cb...       # Transaction details
  esplora address bc1q...              # Address balance and stats
  esplora address bc1q... --utxo       # Unspent outputs
  esplora mempool --recent             # Recent mempool entries
  esplora fees                         # Fee estimates per target
  esplora broadcast 0100000001...      # Broadcast a raw transaction
  esplora --testnet tip                # Use the Blockstream testnet API
  esplora --endpoint http://host/api tip`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "",
		"Esplora API base URL (default: the public Blockstream endpoint)")
	rootCmd.PersistentFlags().BoolVar(&testnetFlag, "testnet", false,
		"use the Blockstream testnet endpoint")
}

// newClient builds a client from the persistent flags.
func newClient() (*api.Client, error) {
	base := endpointFlag
	if base == "" {
		if testnetFlag {
			base = api.TestnetEndpoint
		} else {
			base = api.MainnetEndpoint
		}
	}
	return api.New(base)
}
