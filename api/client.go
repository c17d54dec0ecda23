package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Client is a blocking client for the Esplora/Electrs REST API. Its
// configuration is fixed at construction and it is safe for concurrent use;
// every call is an independent request/response exchange.
//
// The client adds no retry, backoff or timeout policy of its own. Use the
// context passed to each method, or a custom *http.Client, to bound calls.
type Client struct {
	baseURL    string
	netParams  *chaincfg.Params
	httpClient *http.Client
	authHeader string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport, e.g. to route requests
// through a proxy or to set a timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAuthorization sets an Authorization header on every request, for
// endpoints behind an authenticating proxy.
func WithAuthorization(value string) Option {
	return func(c *Client) {
		c.authHeader = value
	}
}

// WithNetwork sets the chain params used to validate addresses. Without it
// the network is inferred from the base URL: testnet when the path contains
// a /testnet/ segment, mainnet otherwise.
func WithNetwork(params *chaincfg.Params) Option {
	return func(c *Client) {
		c.netParams = params
	}
}

// New creates a client for the API rooted at baseURL, e.g.
// "https://blockstream.info/api". An invalid base URL is reported here as a
// *ConfigError, not on the first call.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, &ConfigError{Reason: "base URL is empty"}
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("base URL %q: %v", baseURL, err)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &ConfigError{Reason: fmt.Sprintf("base URL %q: scheme must be http or https", baseURL)}
	}
	if parsed.Host == "" {
		return nil, &ConfigError{Reason: fmt.Sprintf("base URL %q: missing host", baseURL)}
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	if strings.Contains(parsed.Path+"/", "/"+NetworkTestnet+"/") {
		c.netParams = &chaincfg.TestNet3Params
	} else {
		c.netParams = &chaincfg.MainNetParams
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		return nil, &ConfigError{Reason: "http client must not be nil"}
	}
	return c, nil
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsTestnet returns true if the client validates addresses against a test
// network.
func (c *Client) IsTestnet() bool {
	return c.netParams.Name != chaincfg.MainNetParams.Name
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, requestURL, payload string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return readBody(resp)
}
