package interfaces

import (
	"context"

	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// CollectionStore persists topic-scoped vector collections. Directory
// existence under the store root, not content freshness, is authoritative
// for whether a collection has been built.
type CollectionStore interface {
	// Exists reports whether the topic's storage location is present.
	Exists(topic model.Topic) bool

	// CreateAndIngest opens or creates the persisted collection for the
	// topic, embeds and inserts all given documents, and returns a bound
	// retrieval handle. Either all documents are visible afterwards or the
	// collection stays absent.
	CreateAndIngest(ctx context.Context, topic model.Topic, docs []model.Document) (Retriever, error)

	// OpenExisting opens a previously built collection without ingesting.
	OpenExisting(ctx context.Context, topic model.Topic) (Retriever, error)

	// Remove deletes the topic's stored collection if present.
	Remove(topic model.Topic) error

	// List returns the topics currently present under the store root.
	List() ([]model.Topic, error)
}

// Retriever is a query handle bound to one topic's collection.
type Retriever interface {
	// Query embeds the question and returns the most similar documents,
	// most relevant first, capped at the configured top-K.
	Query(ctx context.Context, question string) ([]model.RetrievedDocument, error)

	// Topic reports the collection the handle is bound to.
	Topic() model.Topic
}
