package api

import "fmt"

// ConfigError reports an invalid client configuration. It is only returned
// from New, never from a request method.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "esplora: invalid configuration: " + e.Reason
}

// InvalidParameterError reports a caller-supplied parameter that failed
// validation. No network request is performed when it is returned.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("esplora: invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// APIError is a non-2xx response from the server. Body holds the raw
// response body, which the upstream API sends as plain text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("esplora: server returned %d: %s", e.StatusCode, e.Body)
}

// DecodeError is a 2xx response whose body could not be parsed into the
// expected shape, or parsed into a value that violates a domain invariant.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "esplora: decoding response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
