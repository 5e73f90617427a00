package loader

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/utils/safe"
)

// loadCSV yields one document per data row. The first record is treated as
// the header and each row is rendered as "header: value" lines so column
// meaning survives embedding.
func (l *Loader) loadCSV(ctx context.Context, path string) ([]model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "failed to open CSV", goerr.V("path", path), goerr.V("cause", err.Error()))
	}
	defer safe.Close(ctx, f)

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "invalid CSV", goerr.V("path", path), goerr.V("cause", err.Error()))
	}
	if len(records) < 2 {
		// Header only, or empty file: nothing to extract.
		return nil, nil
	}

	header := records[0]
	docs := make([]model.Document, 0, len(records)-1)
	for i, row := range records[1:] {
		var sb strings.Builder
		for col, value := range row {
			if col > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(header[col])
			sb.WriteString(": ")
			sb.WriteString(value)
		}

		meta := metadata(model.SourceTypeCSVRow, path)
		meta[model.MetaRow] = strconv.Itoa(i + 1)
		docs = append(docs, model.Document{
			ID:       model.NewDocumentID(model.SourceTypeCSVRow, path, i),
			Content:  sb.String(),
			Metadata: meta,
		})
	}

	return docs, nil
}
