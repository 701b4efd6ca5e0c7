package genai

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// client implements Service over a gollem LLM client
type client struct {
	llmClient gollem.LLMClient
}

// New creates a generation service with the provided LLM client
func New(llmClient gollem.LLMClient) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	return &client{llmClient: llmClient}, nil
}

// Generate issues a single generation call. Each call uses a fresh
// session; the pipeline carries its own context in the prompt.
func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	session, err := c.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content from LLM")
	}

	if len(resp.Texts) == 0 {
		return "", goerr.New("LLM returned no text")
	}

	return strings.Join(resp.Texts, "\n"), nil
}
