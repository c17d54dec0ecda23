package api

// Esplora API Client-
//
// Files:
//   config.go       - Endpoint and network constants
//   errors.go       - Error types (ConfigError, InvalidParameterError, APIError, DecodeError)
//   routes.go       - Request URL construction and parameter validation
//   decode.go       - Response body decoding and schema validation
//   client.go       - Core client functionality (client struct, New, options, helpers)
//   blocks.go       - Block endpoints (block, status, txs, tip, heights)
//   transactions.go - Transaction endpoints (tx, status, proofs, outspends, broadcast)
//   addresses.go    - Address and scripthash endpoints (info, history, utxos)
//   mempool.go      - Mempool and fee estimate endpoints
//
// Usage:
//   client, err := api.New(api.MainnetEndpoint)       // from client.go
//   block, err := client.GetBlock(ctx, hash)          // from blocks.go
//   tx, err := client.GetTx(ctx, txid)                // from transactions.go
//   utxos, err := client.GetAddressUTXOs(ctx, addr)   // from addresses.go
//   fees, err := client.GetFeeEstimates(ctx)          // from mempool.go
//
// For a non-blocking variant with the same methods, see the api/async
// package.
