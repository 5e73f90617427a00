package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/interfaces"
	"github.com/umami-lab/tavolo/pkg/repository/vectordb"
	"github.com/umami-lab/tavolo/pkg/service/embedding"
	"github.com/urfave/cli/v3"
)

// VectorDB holds CLI flags for the vector collection store.
type VectorDB struct {
	root      string
	topK      int
	dimension int
}

// Flags returns CLI flags for vector store configuration
func (v *VectorDB) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vector-db-root",
			Usage:       "Root directory holding one collection per topic",
			Value:       vectordb.DefaultRoot,
			Sources:     cli.EnvVars("TAVOLO_VECTOR_DB_ROOT"),
			Destination: &v.root,
		},
		&cli.IntFlag{
			Name:        "top-k",
			Usage:       "Number of documents returned per query",
			Value:       vectordb.DefaultTopK,
			Sources:     cli.EnvVars("TAVOLO_TOP_K"),
			Destination: &v.topK,
		},
		&cli.IntFlag{
			Name:        "embedding-dimension",
			Usage:       "Embedding vector dimension",
			Value:       embedding.DefaultDimension,
			Sources:     cli.EnvVars("TAVOLO_EMBEDDING_DIMENSION"),
			Destination: &v.dimension,
		},
	}
}

// Configure builds the collection store on top of the shared embedder.
func (v *VectorDB) Configure(embedder interfaces.Embedder) (*vectordb.Store, error) {
	store, err := vectordb.New(v.root, embedder, vectordb.WithTopK(v.topK))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize vector store")
	}
	return store, nil
}

// Dimension returns the configured embedding dimension.
func (v *VectorDB) Dimension() int {
	return v.dimension
}

// LogValue implements slog.LogValuer
func (v VectorDB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("root", v.root),
		slog.Int("top_k", v.topK),
		slog.Int("dimension", v.dimension),
	)
}
