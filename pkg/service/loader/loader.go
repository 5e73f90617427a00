package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
)

// Sentinel errors for document loading. Load failures are per-source and
// recoverable: a rebuild skips the failing source and continues.
var (
	ErrFileNotFound      = goerr.New("file not found")
	ErrUnsupportedFormat = goerr.New("unsupported file type")
	ErrLoadFailure       = goerr.New("failed to load document")
)

// Loader converts a single source file into normalized documents,
// dispatched by file extension.
type Loader struct{}

// New creates a document loader.
func New() *Loader {
	return &Loader{}
}

// Load reads one source file and returns its documents. The returned
// documents all carry the source path and extraction type in metadata.
// A failing source returns no documents at all.
func (l *Loader) Load(ctx context.Context, path string) ([]model.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "failed to resolve path", goerr.V("path", path))
	}

	if _, err := os.Stat(abs); err != nil {
		return nil, goerr.Wrap(ErrFileNotFound, "source does not exist", goerr.V("path", abs))
	}

	var docs []model.Document
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".pdf":
		docs, err = l.loadPDF(ctx, abs)
	case ".json":
		docs, err = l.loadJSON(ctx, abs)
	case ".txt":
		docs, err = l.loadText(ctx, abs)
	case ".csv":
		docs, err = l.loadCSV(ctx, abs)
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "no loader for extension", goerr.V("path", abs))
	}
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("loaded documents", "source", abs, "count", len(docs))
	return docs, nil
}

func metadata(typ model.SourceType, source string) map[string]string {
	return map[string]string{
		model.MetaSource: source,
		model.MetaType:   string(typ),
	}
}
