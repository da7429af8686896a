package llm

import (
	"context"
	"errors"
)

// ErrGateway is the single error category for a failed generation call. The
// underlying cause is logged by the provider, not surfaced to callers.
var ErrGateway = errors.New("ai request failed")

// NoResponseFallback is returned when the endpoint answers successfully but
// the response carries no usable content. It is never an error.
const NoResponseFallback = "No response generated."

// Gateway wraps a generative-language endpoint. Implementations issue one
// synchronous request per call, with no retries and no caching.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelID identifies the provider and model serving the request, e.g.
	// "gemini/gemini-1.5-flash". Recorded on each persisted interaction.
	ModelID() string
}
