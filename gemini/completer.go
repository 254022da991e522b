package gemini

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
	"google.golang.org/genai"
)

// Ensure Completer implements siteindex.Completer at compile time.
var _ siteindex.Completer = (*Completer)(nil)

// Completer generates text using the Gemini API.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a Completer. An empty model selects
// DefaultCompletionModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultCompletionModel
	}
	return &Completer{client: client, model: model}
}

// Complete generates a response to the user prompt under the given
// system instruction.
func (c *Completer) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int32) (string, error) {
	if userPrompt == "" {
		return "", siteindex.Errorf(siteindex.EINVALID, "user prompt required")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), config)
	if err != nil {
		return "", siteindex.Errorf(siteindex.EUNAVAILABLE, "complete: %v", err)
	}
	if result == nil {
		return "", siteindex.Errorf(siteindex.EINTERNAL, "complete: nil result")
	}

	return result.Text(), nil
}
