package vectordb

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/philippgille/chromem-go"
	"github.com/umami-lab/tavolo/pkg/domain/interfaces"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
)

// DefaultRoot is the default directory holding one persisted collection
// per topic.
const DefaultRoot = "./vector_dbs"

// DefaultTopK is the default number of documents returned per query.
const DefaultTopK = 5

// ErrCollectionNotFound is returned when opening a topic that was never
// built. Presence of the topic's storage directory is authoritative.
var ErrCollectionNotFound = goerr.New("collection does not exist")

// Store persists topic-scoped vector collections, one chromem persistent
// database per topic under the root directory. All collections share a
// single embedder so stored and query vectors are comparable.
type Store struct {
	root     string
	embedder interfaces.Embedder
	topK     int
}

// Option is a functional option for Store configuration
type Option func(*Store)

// WithTopK sets the number of documents retrieval handles return per query.
func WithTopK(k int) Option {
	return func(s *Store) {
		s.topK = k
	}
}

// New creates a collection store rooted at root, creating the root
// directory if needed.
func New(root string, embedder interfaces.Embedder, opts ...Option) (*Store, error) {
	if embedder == nil {
		return nil, goerr.New("embedder is required")
	}
	if root == "" {
		root = DefaultRoot
	}

	s := &Store{
		root:     root,
		embedder: embedder,
		topK:     DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.topK <= 0 {
		return nil, goerr.New("top-k must be positive", goerr.V("top_k", s.topK))
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create vector store root", goerr.V("root", root))
	}

	return s, nil
}

// Path returns the storage location for the topic.
func (s *Store) Path(topic model.Topic) string {
	return filepath.Join(s.root, topic.String())
}

// Exists reports whether the topic's collection has been built. The check
// is the directory's presence at call time, not a content hash.
func (s *Store) Exists(topic model.Topic) bool {
	info, err := os.Stat(s.Path(topic))
	return err == nil && info.IsDir()
}

// CreateAndIngest opens or creates the persisted collection for the topic
// and embeds and inserts all given documents. If the insert fails, a newly
// created collection is removed again so the topic stays absent. Documents
// with empty content are not inserted: they carry no signal and the vector
// engine rejects contentless entries.
func (s *Store) CreateAndIngest(ctx context.Context, topic model.Topic, docs []model.Document) (interfaces.Retriever, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	wasAbsent := !s.Exists(topic)

	collection, err := s.openCollection(topic)
	if err != nil {
		if wasAbsent {
			_ = os.RemoveAll(s.Path(topic))
		}
		return nil, err
	}

	batch := uuid.New().String()
	entries := make([]chromem.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Content == "" {
			logging.From(ctx).Debug("skipping empty document", "id", doc.ID, "source", doc.Source())
			continue
		}

		meta := make(map[string]string, len(doc.Metadata)+1)
		for k, v := range doc.Metadata {
			meta[k] = v
		}
		meta[model.MetaBatch] = batch

		entries = append(entries, chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: meta,
		})
	}

	if len(entries) > 0 {
		if err := collection.AddDocuments(ctx, entries, 1); err != nil {
			if wasAbsent {
				_ = os.RemoveAll(s.Path(topic))
			}
			return nil, goerr.Wrap(err, "failed to ingest documents",
				goerr.V("topic", topic.String()),
				goerr.V("count", len(entries)))
		}
	}

	logging.From(ctx).Info("collection ready",
		"topic", topic.String(),
		"ingested", len(entries),
		"batch", batch,
		"created", wasAbsent,
	)

	return &retriever{topic: topic, collection: collection, topK: s.topK}, nil
}

// OpenExisting opens a previously built collection without ingesting.
func (s *Store) OpenExisting(ctx context.Context, topic model.Topic) (interfaces.Retriever, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}
	if !s.Exists(topic) {
		return nil, goerr.Wrap(ErrCollectionNotFound, "topic was never built", goerr.V("topic", topic.String()))
	}

	collection, err := s.openCollection(topic)
	if err != nil {
		return nil, err
	}

	return &retriever{topic: topic, collection: collection, topK: s.topK}, nil
}

// Remove deletes the topic's stored collection. Removing an absent topic
// is a no-op.
func (s *Store) Remove(topic model.Topic) error {
	if err := topic.Validate(); err != nil {
		return err
	}
	if err := os.RemoveAll(s.Path(topic)); err != nil {
		return goerr.Wrap(err, "failed to remove collection", goerr.V("topic", topic.String()))
	}
	return nil
}

// List returns the topics currently present under the store root.
func (s *Store) List() ([]model.Topic, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read vector store root", goerr.V("root", s.root))
	}

	var topics []model.Topic
	for _, entry := range entries {
		if entry.IsDir() {
			topics = append(topics, model.Topic(entry.Name()))
		}
	}
	return topics, nil
}

func (s *Store) openCollection(topic model.Topic) (*chromem.Collection, error) {
	db, err := chromem.NewPersistentDB(s.Path(topic), false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open vector database", goerr.V("topic", topic.String()))
	}

	collection, err := db.GetOrCreateCollection(topic.String(), nil, s.embeddingFunc())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open collection", goerr.V("topic", topic.String()))
	}

	return collection, nil
}

func (s *Store) embeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return s.embedder.Embed(ctx, text)
	}
}
