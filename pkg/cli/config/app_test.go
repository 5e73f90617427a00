package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tavolo.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()
	return path
}

func TestAppConfigLoad(t *testing.T) {
	t.Run("no path configured yields no manifest", func(t *testing.T) {
		var cfg AppConfig
		manifest, err := cfg.Load()
		gt.NoError(t, err)
		gt.Value(t, manifest).Nil()
	})

	t.Run("valid manifest", func(t *testing.T) {
		cfg := AppConfig{path: writeManifest(t, `
[[topics]]
name = "restaurant_reviews"
sources = ["data/reviews.pdf", "data/ratings.csv"]
prompt = "You are an expert in answering questions about a pizza restaurant."

[[topics]]
name = "wine_list"
sources = ["data/wines.json"]
`)}

		manifest, err := cfg.Load()
		gt.NoError(t, err).Required()
		gt.Array(t, manifest.Topics).Length(2)

		gt.Value(t, manifest.Topics[0].Topic()).Equal(model.Topic("restaurant_reviews"))
		gt.Array(t, manifest.Topics[0].Sources).Length(2)
		gt.String(t, manifest.Topics[0].Prompt).Contains("pizza restaurant")

		gt.Value(t, manifest.Topics[1].Topic()).Equal(model.Topic("wine_list"))
		gt.Value(t, manifest.Topics[1].Prompt).Equal("")
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := AppConfig{path: filepath.Join(t.TempDir(), "nope.toml")}
		_, err := cfg.Load()
		gt.Bool(t, errors.Is(err, ErrConfigNotFound)).True()
	})

	t.Run("malformed TOML", func(t *testing.T) {
		cfg := AppConfig{path: writeManifest(t, `[[topics]`)}
		_, err := cfg.Load()
		gt.Bool(t, errors.Is(err, ErrInvalidConfig)).True()
	})

	t.Run("entry without a name", func(t *testing.T) {
		cfg := AppConfig{path: writeManifest(t, `
[[topics]]
sources = ["data/reviews.pdf"]
`)}
		_, err := cfg.Load()
		gt.Bool(t, errors.Is(err, ErrMissingTopicName)).True()
	})

	t.Run("invalid topic name", func(t *testing.T) {
		cfg := AppConfig{path: writeManifest(t, `
[[topics]]
name = "../evil"
`)}
		_, err := cfg.Load()
		gt.Bool(t, errors.Is(err, model.ErrInvalidTopic)).True()
	})

	t.Run("duplicate topic name", func(t *testing.T) {
		cfg := AppConfig{path: writeManifest(t, `
[[topics]]
name = "reviews"

[[topics]]
name = "reviews"
`)}
		_, err := cfg.Load()
		gt.Bool(t, errors.Is(err, ErrDuplicateTopic)).True()
	})
}
