// Package gemini implements the external language-model capabilities
// (embedding, completion, short-list ranking, and grounded question
// answering) using the Google Gemini API.
package gemini

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
	"google.golang.org/genai"
)

// Model names for the two capabilities.
const (
	DefaultEmbeddingModel  = "gemini-embedding-001"
	DefaultCompletionModel = "gemini-2.5-flash"
)

// Ensure Embedder implements siteindex.Embedder at compile time.
var _ siteindex.Embedder = (*Embedder)(nil)

// Embedder produces embedding vectors using the Gemini embedding API.
// All vectors in a corpus must come from the same model: mixing models
// invalidates the cache and requires a full recompute.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates an Embedder. An empty model selects
// DefaultEmbeddingModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, siteindex.Errorf(siteindex.EINVALID, "embedding text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EUNAVAILABLE, "embed: %v", err)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, siteindex.Errorf(siteindex.EINTERNAL, "embed: empty embedding returned")
	}

	values := result.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}
