package loader

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// loadJSON maps a JSON file onto documents depending on its root shape:
// an array yields one document per element, an object yields a single
// pretty-printed document, and any other root yields no documents.
func (l *Loader) loadJSON(_ context.Context, path string) ([]model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "failed to read JSON", goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "invalid JSON", goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	switch v := root.(type) {
	case []any:
		docs := make([]model.Document, 0, len(v))
		for i, item := range v {
			content, err := itemText(item)
			if err != nil {
				return nil, goerr.Wrap(ErrLoadFailure, "failed to serialize JSON element", goerr.V("path", path), goerr.V("index", i))
			}
			docs = append(docs, model.Document{
				ID:       model.NewDocumentID(model.SourceTypeJSONListItem, path, i),
				Content:  content,
				Metadata: metadata(model.SourceTypeJSONListItem, path),
			})
		}
		return docs, nil

	case map[string]any:
		pretty, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, goerr.Wrap(ErrLoadFailure, "failed to serialize JSON document", goerr.V("path", path))
		}
		return []model.Document{{
			ID:       model.NewDocumentID(model.SourceTypeJSONDocument, path, 0),
			Content:  string(pretty),
			Metadata: metadata(model.SourceTypeJSONDocument, path),
		}}, nil

	default:
		// Scalar or null root: nothing to extract, not an error.
		return nil, nil
	}
}

// itemText renders a list element as text. Bare strings are used as-is;
// everything else is serialized as compact JSON.
func itemText(item any) (string, error) {
	if s, ok := item.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
