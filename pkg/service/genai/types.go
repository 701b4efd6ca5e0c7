package genai

import "context"

// Service is the generation oracle boundary: text prompt in, text out.
// The production implementation is backed by an LLM provider; tests use
// deterministic stubs so pipeline logic runs without network calls.
// No retry is performed here; each call site defines its own
// fallback-on-failure policy.
type Service interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
