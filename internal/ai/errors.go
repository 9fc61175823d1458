package ai

import (
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Failure classes for the outbound completion call. The pipeline maps each of
// these to a human-readable failure envelope; none of them leaks transport
// internals to the caller.
var (
	// ErrAuth means the service rejected the configured credential.
	ErrAuth = errors.New("completion service rejected the credential")
	// ErrRateLimit means the service throttled the request.
	ErrRateLimit = errors.New("completion service throttled the request")
	// ErrTransport covers network failures, timeouts and server-side errors.
	ErrTransport = errors.New("completion service unreachable")
	// ErrMalformedResponse means the transport succeeded but the response
	// envelope had no usable completion.
	ErrMalformedResponse = errors.New("completion service returned an unusable response")
)

// classifyError folds go-openai's error types into the sentinel taxonomy
// above so callers can branch with errors.Is.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", sentinelForStatus(apiErr.HTTPStatusCode), err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: %v", sentinelForStatus(reqErr.HTTPStatusCode), err)
	}

	// Anything else is a transport-level failure (DNS, connection reset,
	// context deadline exceeded, ...).
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusTooManyRequests:
		return ErrRateLimit
	default:
		return ErrTransport
	}
}
