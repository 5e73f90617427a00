package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// Service generates grounded answers from retrieved review documents.
type Service struct {
	llmClient gollem.LLMClient
}

// New creates an answer service with the provided LLM client.
func New(llmClient gollem.LLMClient) (*Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	return &Service{llmClient: llmClient}, nil
}

// defaultAnswerPrompt is used when the topic has no custom prompt configured.
const defaultAnswerPrompt = "You are an expert in answering questions about a pizza restaurant."

// Answer produces an answer to the question grounded in the given
// documents. prompt optionally overrides the default persona instruction.
func (s *Service) Answer(ctx context.Context, question string, docs []model.RetrievedDocument, prompt string) (string, error) {
	session, err := s.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(buildSystemPrompt(prompt)),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(question, docs)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content from LLM")
	}

	if len(resp.Texts) == 0 {
		return "", goerr.New("empty LLM response")
	}

	return resp.Texts[0], nil
}

// buildSystemPrompt creates the system prompt for answer generation
func buildSystemPrompt(prompt string) string {
	if prompt == "" {
		prompt = defaultAnswerPrompt
	}

	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n\n")
	sb.WriteString("## Instructions:\n\n")
	sb.WriteString("1. Answer the question using only the provided reviews.\n")
	sb.WriteString("2. If the reviews do not contain enough information, say so instead of guessing.\n")
	sb.WriteString("3. Answer in the same language as the question.\n")

	return sb.String()
}

// buildUserPrompt creates the user prompt with the retrieved reviews and
// the question to answer
func buildUserPrompt(question string, docs []model.RetrievedDocument) string {
	var sb strings.Builder

	sb.WriteString("Here are some relevant reviews:\n\n")
	for i, doc := range docs {
		fmt.Fprintf(&sb, "### Review %d (source: %s)\n", i+1, doc.Source())
		sb.WriteString(doc.Content)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Here is the question to answer: ")
	sb.WriteString(question)
	sb.WriteString("\n")

	return sb.String()
}
