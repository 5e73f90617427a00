package usecase

import (
	"sync"

	"github.com/umami-lab/tavolo/pkg/domain/interfaces"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// UseCases is the manager facade orchestrating the document loader and the
// collection store per topic. It is the single entry point for the rest of
// the application.
type UseCases struct {
	store   interfaces.CollectionStore
	loader  interfaces.DocumentLoader
	answer  interfaces.AnswerService
	prompts map[model.Topic]string

	// mu guards topicMu and sources. topicMu serializes rebuilds of the
	// same topic so two callers cannot both observe "absent" and create.
	mu      sync.Mutex
	topicMu map[model.Topic]*sync.Mutex
	sources map[model.Topic][]string
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithAnswerService enables grounded answer generation for Ask.
func WithAnswerService(svc interfaces.AnswerService) Option {
	return func(uc *UseCases) {
		uc.answer = svc
	}
}

// WithPrompt sets a custom answer prompt for a topic.
func WithPrompt(topic model.Topic, prompt string) Option {
	return func(uc *UseCases) {
		uc.prompts[topic] = prompt
	}
}

// New creates the manager facade.
func New(store interfaces.CollectionStore, loader interfaces.DocumentLoader, opts ...Option) *UseCases {
	uc := &UseCases{
		store:   store,
		loader:  loader,
		prompts: make(map[model.Topic]string),
		topicMu: make(map[model.Topic]*sync.Mutex),
		sources: make(map[model.Topic][]string),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Sources returns the most recent source list supplied for the topic. It
// is provenance for display only and does not affect retrieval.
func (uc *UseCases) Sources(topic model.Topic) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	src := uc.sources[topic]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Topics returns the topics with a built collection.
func (uc *UseCases) Topics() ([]model.Topic, error) {
	return uc.store.List()
}

func (uc *UseCases) setSources(topic model.Topic, sources []string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	copied := make([]string, len(sources))
	copy(copied, sources)
	uc.sources[topic] = copied
}

// lockTopic acquires the per-topic rebuild lock and returns its release
// function.
func (uc *UseCases) lockTopic(topic model.Topic) func() {
	uc.mu.Lock()
	m, ok := uc.topicMu[topic]
	if !ok {
		m = &sync.Mutex{}
		uc.topicMu[topic] = m
	}
	uc.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (uc *UseCases) promptFor(topic model.Topic) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.prompts[topic]
}
