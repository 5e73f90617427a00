package mock_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umami-lab/tavolo/pkg/domain/mock"
)

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func TestEmbedderDistinctTokens(t *testing.T) {
	ctx := context.Background()
	e := mock.Embedder{}

	// Single-token texts must embed into disjoint buckets, whatever the
	// tokens are. A shared bucket would distort every ranking assertion
	// built on this embedder.
	pizza, err := e.Embed(ctx, "pizza")
	gt.NoError(t, err).Required()
	sushi, err := e.Embed(ctx, "sushi")
	gt.NoError(t, err).Required()

	gt.Value(t, dot(pizza, sushi)).Equal(float32(0))
}

func TestEmbedderStableAcrossInstances(t *testing.T) {
	ctx := context.Background()

	a, err := mock.Embedder{}.Embed(ctx, "wonderful pasta")
	gt.NoError(t, err).Required()
	b, err := mock.Embedder{}.Embed(ctx, "wonderful pasta")
	gt.NoError(t, err).Required()

	gt.Value(t, a).Equal(b)
}

func TestEmbedderRanking(t *testing.T) {
	ctx := context.Background()
	e := mock.Embedder{}

	question, err := e.Embed(ctx, "Is the pizza good?")
	gt.NoError(t, err).Required()
	pizzaDoc, err := e.Embed(ctx, "Great pizza, slow service.")
	gt.NoError(t, err).Required()
	sushiDoc, err := e.Embed(ctx, "The sushi was fresh but overpriced.")
	gt.NoError(t, err).Required()

	gt.Bool(t, dot(question, pizzaDoc) > dot(question, sushiDoc)).True()
}
