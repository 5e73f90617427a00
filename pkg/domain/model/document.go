package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Metadata keys attached to every Document.
const (
	MetaSource = "source"
	MetaType   = "type"
	MetaPage   = "page"
	MetaRow    = "row"
	MetaBatch  = "ingest_batch"
)

// SourceType identifies how a Document was extracted from its source file.
type SourceType string

const (
	SourceTypePDF          SourceType = "pdf"
	SourceTypeJSONListItem SourceType = "json_list_item"
	SourceTypeJSONDocument SourceType = "json_document"
	SourceTypeText         SourceType = "text"
	SourceTypeCSVRow       SourceType = "csv_row"
)

// Document is the unit of retrieval: one extracted text payload with its
// provenance metadata. Content may be empty when the source page yielded no
// extractable text.
type Document struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// Source returns the origin path recorded in the document metadata.
func (d Document) Source() string {
	return d.Metadata[MetaSource]
}

// Type returns the source type recorded in the document metadata.
func (d Document) Type() SourceType {
	return SourceType(d.Metadata[MetaType])
}

// NewDocumentID derives a document ID that is unique across sources within
// a single ingestion batch. The source path is hashed so that two files
// producing the same local numbering never collide.
func NewDocumentID(typ SourceType, source string, index int) string {
	sum := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%s_%s_%d", typ, hex.EncodeToString(sum[:])[:8], index)
}
