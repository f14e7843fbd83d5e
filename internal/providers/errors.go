package providers

import (
	"encoding/json"
	"fmt"
)

// UpstreamError is a non-2xx response from a provider.
type UpstreamError struct {
	Domain     string
	StatusCode int
	Message    string
	Details    json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Domain, e.StatusCode, e.Message)
}

// GatewayError means no response was received from a provider.
type GatewayError struct {
	Domain string
	Err    error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("no response received from %s API: %v", e.Domain, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// SetupError means the outbound request could not be built.
type SetupError struct {
	Domain string
	Err    error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("failed to set up request to %s API: %v", e.Domain, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
