package vectordb

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/philippgille/chromem-go"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// retriever is a query handle bound to one topic's collection.
type retriever struct {
	topic      model.Topic
	collection *chromem.Collection
	topK       int
}

func (r *retriever) Topic() model.Topic {
	return r.topic
}

// Query embeds the question with the collection's embedder and returns the
// most similar documents, most relevant first. The result length is capped
// at the configured top-K and at the collection size; an empty collection
// yields an empty result, not an error.
func (r *retriever) Query(ctx context.Context, question string) ([]model.RetrievedDocument, error) {
	k := r.topK
	if count := r.collection.Count(); count < k {
		k = count
	}
	if k == 0 {
		return nil, nil
	}

	results, err := r.collection.Query(ctx, question, k, nil, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "similarity search failed",
			goerr.V("topic", r.topic.String()),
			goerr.V("top_k", k))
	}

	docs := make([]model.RetrievedDocument, 0, len(results))
	for _, res := range results {
		meta := make(map[string]string, len(res.Metadata))
		for key, value := range res.Metadata {
			meta[key] = value
		}
		docs = append(docs, model.RetrievedDocument{
			Document: model.Document{
				ID:       res.ID,
				Content:  res.Content,
				Metadata: meta,
			},
			Similarity: res.Similarity,
		})
	}

	return docs, nil
}
