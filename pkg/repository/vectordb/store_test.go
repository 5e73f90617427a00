package vectordb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umami-lab/tavolo/pkg/domain/mock"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/repository/vectordb"
)

func textDoc(source string, index int, content string) model.Document {
	return model.Document{
		ID:      model.NewDocumentID(model.SourceTypeText, source, index),
		Content: content,
		Metadata: map[string]string{
			model.MetaSource: source,
			model.MetaType:   string(model.SourceTypeText),
		},
	}
}

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	topic := model.Topic("t1")
	gt.Bool(t, store.Exists(topic)).False()

	docs := []model.Document{
		textDoc("/data/a.txt", 0, "Great pizza, slow service."),
		textDoc("/data/b.txt", 0, "The sushi was fresh and delicious."),
	}

	retriever, err := store.CreateAndIngest(ctx, topic, docs)
	gt.NoError(t, err).Required()
	gt.Value(t, retriever.Topic()).Equal(topic)
	gt.Bool(t, store.Exists(topic)).True()

	results, err := retriever.Query(ctx, "Is the pizza good?")
	gt.NoError(t, err).Required()
	gt.Number(t, len(results)).GreaterOrEqual(1)
	gt.String(t, results[0].Content).Contains("Great pizza")
}

func TestStoreOpenExisting(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	store, err := vectordb.New(root, mock.Embedder{})
	gt.NoError(t, err).Required()

	topic := model.Topic("reviews")
	_, err = store.CreateAndIngest(ctx, topic, []model.Document{
		textDoc("/data/a.txt", 0, "Wonderful pasta and friendly staff."),
	})
	gt.NoError(t, err).Required()

	// A fresh store over the same root must see the persisted collection.
	reopened, err := vectordb.New(root, mock.Embedder{})
	gt.NoError(t, err).Required()

	retriever, err := reopened.OpenExisting(ctx, topic)
	gt.NoError(t, err).Required()

	results, err := retriever.Query(ctx, "How is the pasta?")
	gt.NoError(t, err).Required()
	gt.Number(t, len(results)).GreaterOrEqual(1)
	gt.String(t, results[0].Content).Contains("pasta")
}

func TestStoreOpenMissing(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	_, err = store.OpenExisting(ctx, model.Topic("never_built"))
	gt.Bool(t, errors.Is(err, vectordb.ErrCollectionNotFound)).True()
}

func TestStoreTopKClamp(t *testing.T) {
	ctx := context.Background()

	t.Run("results never exceed configured top-k", func(t *testing.T) {
		store, err := vectordb.New(t.TempDir(), mock.Embedder{}, vectordb.WithTopK(2))
		gt.NoError(t, err).Required()

		var docs []model.Document
		for i := 0; i < 7; i++ {
			docs = append(docs, textDoc("/data/many.txt", i, fmt.Sprintf("review number %d about pizza", i)))
		}

		retriever, err := store.CreateAndIngest(ctx, model.Topic("many"), docs)
		gt.NoError(t, err).Required()

		results, err := retriever.Query(ctx, "pizza")
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(2)
	})

	t.Run("top-k is clamped to collection size", func(t *testing.T) {
		store, err := vectordb.New(t.TempDir(), mock.Embedder{})
		gt.NoError(t, err).Required()

		retriever, err := store.CreateAndIngest(ctx, model.Topic("tiny"), []model.Document{
			textDoc("/data/one.txt", 0, "only one review"),
		})
		gt.NoError(t, err).Required()

		results, err := retriever.Query(ctx, "review")
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(1)
	})
}

func TestStoreEmptyCollection(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	topic := model.Topic("empty")
	retriever, err := store.CreateAndIngest(ctx, topic, nil)
	gt.NoError(t, err).Required()
	gt.Bool(t, store.Exists(topic)).True()

	results, err := retriever.Query(ctx, "anything")
	gt.NoError(t, err)
	gt.Array(t, results).Length(0)
}

func TestStoreTopicIsolation(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	_, err = store.CreateAndIngest(ctx, model.Topic("t1"), []model.Document{
		textDoc("/data/t1.txt", 0, "Great pizza, slow service."),
	})
	gt.NoError(t, err).Required()

	_, err = store.CreateAndIngest(ctx, model.Topic("t2"), []model.Document{
		textDoc("/data/t2.txt", 0, "Great pizza with amazing toppings."),
	})
	gt.NoError(t, err).Required()

	retriever, err := store.OpenExisting(ctx, model.Topic("t1"))
	gt.NoError(t, err).Required()

	results, err := retriever.Query(ctx, "great pizza")
	gt.NoError(t, err).Required()
	for _, res := range results {
		gt.Value(t, res.Source()).Equal("/data/t1.txt")
	}
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	topic := model.Topic("gone")
	_, err = store.CreateAndIngest(ctx, topic, []model.Document{
		textDoc("/data/x.txt", 0, "something"),
	})
	gt.NoError(t, err).Required()

	gt.NoError(t, store.Remove(topic))
	gt.Bool(t, store.Exists(topic)).False()

	// Removing an absent topic is a no-op
	gt.NoError(t, store.Remove(topic))
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	topics, err := store.List()
	gt.NoError(t, err)
	gt.Array(t, topics).Length(0)

	for _, name := range []string{"t1", "t2"} {
		_, err := store.CreateAndIngest(ctx, model.Topic(name), []model.Document{
			textDoc("/data/"+name+".txt", 0, "content for "+name),
		})
		gt.NoError(t, err).Required()
	}

	topics, err = store.List()
	gt.NoError(t, err)
	gt.Array(t, topics).Length(2)
}

func TestStoreRejectsInvalidTopic(t *testing.T) {
	ctx := context.Background()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()

	_, err = store.CreateAndIngest(ctx, model.Topic("../evil"), nil)
	gt.Bool(t, errors.Is(err, model.ErrInvalidTopic)).True()

	_, err = store.OpenExisting(ctx, model.Topic("../evil"))
	gt.Bool(t, errors.Is(err, model.ErrInvalidTopic)).True()
}
