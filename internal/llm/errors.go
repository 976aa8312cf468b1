package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies provider failures
type ErrorKind string

const (
	KindNotConfigured ErrorKind = "not_configured"
	KindTransport     ErrorKind = "transport"
	KindTimeout       ErrorKind = "timeout"
	KindAuth          ErrorKind = "auth"
	KindRateLimit     ErrorKind = "rate_limit"
	KindUpstream      ErrorKind = "upstream"
	KindMalformed     ErrorKind = "malformed"
)

// ProviderError is returned by every Provider when a completion call fails
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NotConfiguredError reports a provider without credentials
func NotConfiguredError(provider string) error {
	return &ProviderError{
		Provider: provider,
		Kind:     KindNotConfigured,
		Err:      errors.New("missing API credential"),
	}
}

// TransportError wraps a failed round trip, telling deadlines apart from other network errors
func TransportError(provider string, err error) error {
	kind := KindTransport
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// StatusError maps a non-2xx HTTP status to an error kind
func StatusError(provider string, status int) error {
	kind := KindUpstream
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusTooManyRequests:
		kind = KindRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		kind = KindTimeout
	}
	return &ProviderError{
		Provider:   provider,
		Kind:       kind,
		StatusCode: status,
		Err:        fmt.Errorf("%s returned status %d", provider, status),
	}
}

// MalformedError reports a response that could not be decoded or held no content
func MalformedError(provider string, err error) error {
	return &ProviderError{Provider: provider, Kind: KindMalformed, Err: err}
}

// KindOf returns the kind of a ProviderError anywhere in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
