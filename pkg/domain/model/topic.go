package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// Topic is the logical namespace partitioning the document corpus. Each
// topic maps 1:1 to a storage directory under the vector store root.
type Topic string

// DefaultTopic matches the original deployment's single-topic setup.
const DefaultTopic Topic = "restaurant_reviews"

var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ErrInvalidTopic is returned for topic names that are not safe to use as
// a storage directory name.
var ErrInvalidTopic = goerr.New("invalid topic name")

// Validate checks that the topic name is usable as a directory name and
// cannot escape the vector store root.
func (t Topic) Validate() error {
	if !topicPattern.MatchString(string(t)) {
		return goerr.Wrap(ErrInvalidTopic, "topic must match [a-zA-Z0-9][a-zA-Z0-9_-]*", goerr.V("topic", string(t)))
	}
	return nil
}

func (t Topic) String() string {
	return string(t)
}
