package interfaces

import (
	"context"

	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// DocumentLoader converts a single source file into a normalized sequence
// of documents carrying provenance metadata. A failing source yields no
// documents at all; partial results are never returned.
type DocumentLoader interface {
	Load(ctx context.Context, path string) ([]model.Document, error)
}
