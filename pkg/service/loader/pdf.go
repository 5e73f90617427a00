package loader

import (
	"context"
	"strconv"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/utils/safe"
)

// loadPDF extracts one document per page. A page with no extractable text
// yields a document with empty content rather than being skipped, so page
// numbering stays aligned with the file.
func (l *Loader) loadPDF(ctx context.Context, path string) ([]model.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, goerr.Wrap(ErrLoadFailure, "failed to open PDF", goerr.V("path", path), goerr.V("cause", err.Error()))
	}
	defer safe.Close(ctx, f)

	total := reader.NumPage()
	docs := make([]model.Document, 0, total)
	for i := 1; i <= total; i++ {
		var content string
		page := reader.Page(i)
		if !page.V.IsNull() {
			if text, err := page.GetPlainText(nil); err == nil {
				content = text
			}
		}

		meta := metadata(model.SourceTypePDF, path)
		meta[model.MetaPage] = strconv.Itoa(i)
		docs = append(docs, model.Document{
			ID:       model.NewDocumentID(model.SourceTypePDF, path, i-1),
			Content:  content,
			Metadata: meta,
		})
	}

	return docs, nil
}
