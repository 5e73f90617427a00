package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

func TestNewDocumentID(t *testing.T) {
	t.Run("unique across sources with same local index", func(t *testing.T) {
		a := model.NewDocumentID(model.SourceTypePDF, "/data/menu.pdf", 0)
		b := model.NewDocumentID(model.SourceTypePDF, "/data/reviews.pdf", 0)
		gt.Value(t, a == b).Equal(false)
	})

	t.Run("stable for the same input", func(t *testing.T) {
		a := model.NewDocumentID(model.SourceTypeText, "/data/notes.txt", 3)
		b := model.NewDocumentID(model.SourceTypeText, "/data/notes.txt", 3)
		gt.Value(t, a).Equal(b)
	})

	t.Run("distinct per index", func(t *testing.T) {
		a := model.NewDocumentID(model.SourceTypeJSONListItem, "/data/reviews.json", 0)
		b := model.NewDocumentID(model.SourceTypeJSONListItem, "/data/reviews.json", 1)
		gt.Value(t, a == b).Equal(false)
	})
}

func TestTopicValidate(t *testing.T) {
	valid := []string{"restaurant_reviews", "t1", "Topic-2", "a"}
	for _, name := range valid {
		gt.NoError(t, model.Topic(name).Validate())
	}

	invalid := []string{"", "../evil", "a/b", ".hidden", "-dash", "white space"}
	for _, name := range invalid {
		gt.Value(t, model.Topic(name).Validate()).NotNil()
	}
}

func TestDocumentAccessors(t *testing.T) {
	doc := model.Document{
		ID:      "text_deadbeef_0",
		Content: "Great pizza, slow service.",
		Metadata: map[string]string{
			model.MetaSource: "/data/review.txt",
			model.MetaType:   string(model.SourceTypeText),
		},
	}

	gt.Value(t, doc.Source()).Equal("/data/review.txt")
	gt.Value(t, doc.Type()).Equal(model.SourceTypeText)
}
