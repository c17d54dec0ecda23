package api

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// public Blockstream Esplora endpoints
const (
	MainnetEndpoint = "https://blockstream.info/api"
	TestnetEndpoint = "https://blockstream.info/testnet/api"
)
