package api

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointJoinsSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"single", []string{"mempool"}, "https://example.com/api/mempool"},
		{"nested", []string{"blocks", "tip", "height"}, "https://example.com/api/blocks/tip/height"},
		{"with id", []string{"tx", testTxid}, "https://example.com/api/tx/" + testTxid},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, endpoint("https://example.com/api", test.segments...))
		})
	}
}

func TestEndpointEscapesUntrustedSegments(t *testing.T) {
	built := endpoint("https://example.com/api", "address", "../../../admin")

	parsed, err := url.Parse(built)
	require.NoError(t, err)
	// The hostile segment must stay a single path element.
	segments := strings.Split(strings.TrimPrefix(parsed.EscapedPath(), "/"), "/")
	require.Len(t, segments, 3)
	assert.Equal(t, "api", segments[0])
	assert.Equal(t, "address", segments[1])

	unescaped, err := url.PathUnescape(segments[2])
	require.NoError(t, err)
	assert.Equal(t, "../../../admin", unescaped)
}

func TestEndpointRoundTrip(t *testing.T) {
	segments := []string{"block", testBlockHash, "txs", "25"}
	built := endpoint("https://example.com/api", segments...)

	parsed, err := url.Parse(built)
	require.NoError(t, err)
	got := strings.Split(strings.TrimPrefix(parsed.Path, "/"), "/")
	assert.Equal(t, append([]string{"api"}, segments...), got)
}

func TestCheckHash(t *testing.T) {
	require.NoError(t, checkHash("txid", testTxid))

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"too short", "c9ee6eff"},
		{"too long", testTxid + "00"},
		{"non-hex", strings.Repeat("z", 64)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := checkHash("txid", test.value)
			require.Error(t, err)

			var invalid *InvalidParameterError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "txid", invalid.Param)
			assert.Equal(t, test.value, invalid.Value)
		})
	}
}

func TestCheckAddress(t *testing.T) {
	require.NoError(t, checkAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.MainNetParams))
	require.NoError(t, checkAddress("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", &chaincfg.MainNetParams))
	require.NoError(t, checkAddress("2MvJVm11phGoxEekPB8Hw2Tksb57eVRGHC5", &chaincfg.TestNet3Params))

	var invalid *InvalidParameterError
	err := checkAddress("not-an-address", &chaincfg.MainNetParams)
	require.Error(t, err)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "address", invalid.Param)

	// A testnet address is rejected on mainnet.
	err = checkAddress("2MvJVm11phGoxEekPB8Hw2Tksb57eVRGHC5", &chaincfg.MainNetParams)
	require.Error(t, err)
}

func TestCheckRawTx(t *testing.T) {
	require.NoError(t, checkRawTx("0100000001ab"))

	for _, value := range []string{"", "xyz", "0100f"} {
		err := checkRawTx(value)
		require.Error(t, err, "value %q", value)

		var invalid *InvalidParameterError
		require.True(t, errors.As(err, &invalid))
	}
}
