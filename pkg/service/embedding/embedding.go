package embedding

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// DefaultDimension is the embedding vector dimension.
// Gemini text-embedding-004 uses 768 dimensions.
const DefaultDimension = 768

// Service generates embedding vectors through a gollem LLM client. One
// instance is shared process-wide so stored and query vectors always come
// from the same model.
type Service struct {
	llmClient gollem.LLMClient
	dimension int
}

// Option is a functional option for Service configuration
type Option func(*Service)

// WithDimension overrides the embedding vector dimension.
func WithDimension(dim int) Option {
	return func(s *Service) {
		s.dimension = dim
	}
}

// New creates an embedding service with the provided LLM client.
func New(llmClient gollem.LLMClient, opts ...Option) (*Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	s := &Service{
		llmClient: llmClient,
		dimension: DefaultDimension,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Dimension returns the embedding vector dimension.
func (s *Service) Dimension() int {
	return s.dimension
}

// Embed generates an embedding vector for the given text.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := s.llmClient.GenerateEmbedding(ctx, s.dimension, []string{text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate embedding")
	}

	if len(embeddings) == 0 {
		return nil, goerr.New("no embedding returned")
	}

	result := make([]float32, len(embeddings[0]))
	for i, v := range embeddings[0] {
		result[i] = float32(v)
	}

	return result, nil
}
