package interfaces

import "context"

// Embedder turns text into a fixed-length numeric vector. One instance is
// shared by all collections so that stored vectors and query vectors live
// in the same space.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}
