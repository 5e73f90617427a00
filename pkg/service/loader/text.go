package loader

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// loadText yields exactly one document holding the whole file.
func (l *Loader) loadText(_ context.Context, path string) ([]model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "failed to read text file", goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	return []model.Document{{
		ID:       model.NewDocumentID(model.SourceTypeText, path, 0),
		Content:  string(raw),
		Metadata: metadata(model.SourceTypeText, path),
	}}, nil
}
