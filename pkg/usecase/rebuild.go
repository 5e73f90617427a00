package usecase

import (
	"context"
	"fmt"

	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/utils/errutil"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
)

// RebuildOption adjusts a single rebuild call.
type RebuildOption func(*rebuildConfig)

type rebuildConfig struct {
	replace bool
}

// WithReplace drops an existing collection before ingesting. Without it a
// rebuild on an already-built topic keeps the stored content and ignores
// the new sources, matching the existence-gated behavior callers rely on.
func WithReplace() RebuildOption {
	return func(c *rebuildConfig) {
		c.replace = true
	}
}

const rebuildSuccessMessage = "Vector database rebuilt successfully!"

// Rebuild loads every source, aggregates the documents and builds the
// topic's collection if it is absent. A source that fails to load is
// skipped with a warning; the remembered source list is replaced with the
// requested list regardless of per-source outcomes. Rebuild never returns
// an error: all failures are converted into the result status.
func (uc *UseCases) Rebuild(ctx context.Context, topic model.Topic, sources []string, opts ...RebuildOption) *model.RebuildResult {
	var cfg rebuildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	result := &model.RebuildResult{Topic: topic}
	result.Sources = append(result.Sources, sources...)

	unlock := uc.lockTopic(topic)
	defer unlock()

	uc.setSources(topic, sources)

	if err := topic.Validate(); err != nil {
		return rebuildFailed(ctx, result, err)
	}

	if cfg.replace {
		if err := uc.store.Remove(topic); err != nil {
			return rebuildFailed(ctx, result, err)
		}
	}

	if uc.store.Exists(topic) {
		logging.From(ctx).Info("collection already exists, skipping ingestion",
			"topic", topic.String(),
			"sources", len(sources),
		)
		result.Success = true
		result.Reused = true
		result.Message = rebuildSuccessMessage
		return result
	}

	var docs []model.Document
	for _, source := range sources {
		loaded, err := uc.loader.Load(ctx, source)
		if err != nil {
			logging.From(ctx).Warn("skipping source", "source", source, "error", err)
			result.SkippedSources = append(result.SkippedSources, source)
			continue
		}
		docs = append(docs, loaded...)
	}

	if _, err := uc.store.CreateAndIngest(ctx, topic, docs); err != nil {
		return rebuildFailed(ctx, result, err)
	}
	result.DocumentCount = len(docs)

	if len(sources) > 0 && len(docs) == 0 {
		result.Success = false
		result.Message = fmt.Sprintf("Error rebuilding vector database: no documents loaded from %d source(s)", len(sources))
		return result
	}

	result.Success = true
	result.Message = rebuildSuccessMessage
	return result
}

func rebuildFailed(ctx context.Context, result *model.RebuildResult, err error) *model.RebuildResult {
	_ = errutil.Handle(ctx, err, "rebuild failed")
	result.Success = false
	result.Message = fmt.Sprintf("Error rebuilding vector database: %s", err)
	return result
}
