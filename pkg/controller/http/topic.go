package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/repository/vectordb"
	"github.com/umami-lab/tavolo/pkg/usecase"
	"github.com/umami-lab/tavolo/pkg/utils/async"
	"github.com/umami-lab/tavolo/pkg/utils/errutil"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
)

type rebuildRequest struct {
	Sources []string `json:"sources"`
	Replace bool     `json:"replace"`
	Async   bool     `json:"async"`
}

type queryRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

type queryResponse struct {
	Topic     model.Topic               `json:"topic"`
	Documents []model.RetrievedDocument `json:"documents"`
}

func topicParam(r *http.Request) model.Topic {
	return model.Topic(chi.URLParam(r, "topic"))
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topics, err := s.uc.Topics()
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	if topics == nil {
		topics = []model.Topic{}
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"topics": topics})
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	topic := topicParam(r)

	var req rebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	var opts []usecase.RebuildOption
	if req.Replace {
		opts = append(opts, usecase.WithReplace())
	}

	if req.Async {
		async.Dispatch(ctx, func(ctx context.Context) error {
			result := s.uc.Rebuild(ctx, topic, req.Sources, opts...)
			logging.From(ctx).Info("background rebuild finished",
				"topic", topic.String(),
				"success", result.Success,
				"message", result.Message,
			)
			return nil
		})
		respondJSON(ctx, w, http.StatusAccepted, map[string]any{
			"topic":  topic,
			"status": "accepted",
		})
		return
	}

	result := s.uc.Rebuild(ctx, topic, req.Sources, opts...)
	respondJSON(ctx, w, http.StatusOK, result)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	topic := topicParam(r)

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	docs, err := s.uc.Query(ctx, topic, req.Question)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, queryErrorStatus(err))
		return
	}

	if req.TopK > 0 && req.TopK < len(docs) {
		docs = docs[:req.TopK]
	}
	if docs == nil {
		docs = []model.RetrievedDocument{}
	}

	respondJSON(ctx, w, http.StatusOK, queryResponse{Topic: topic, Documents: docs})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	topic := topicParam(r)

	if !s.askEnabled {
		errutil.HandleHTTP(ctx, w, usecase.ErrAnswerUnavailable, http.StatusServiceUnavailable)
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	answer, err := s.uc.Ask(ctx, topic, req.Question)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, askErrorStatus(err))
		return
	}

	respondJSON(ctx, w, http.StatusOK, answer)
}

func queryErrorStatus(err error) int {
	switch {
	case errors.Is(err, vectordb.ErrCollectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrEmptyQuestion), errors.Is(err, model.ErrInvalidTopic):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func askErrorStatus(err error) int {
	if errors.Is(err, usecase.ErrAnswerUnavailable) {
		return http.StatusServiceUnavailable
	}
	return queryErrorStatus(err)
}
