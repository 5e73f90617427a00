package model

// RetrievedDocument is a Document returned from a similarity search,
// annotated with its similarity to the query (higher is more relevant).
type RetrievedDocument struct {
	Document
	Similarity float32 `json:"similarity"`
}

// RebuildResult reports the outcome of a topic rebuild. Rebuild never
// propagates errors past the manager boundary; failures are reported here.
type RebuildResult struct {
	Topic          Topic    `json:"topic"`
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	DocumentCount  int      `json:"document_count"`
	Sources        []string `json:"sources"`
	SkippedSources []string `json:"skipped_sources,omitempty"`
	Reused         bool     `json:"reused"`
}

// Answer is a grounded answer to a question, with the documents it was
// grounded on and the provenance source list of the topic.
type Answer struct {
	Topic     Topic               `json:"topic"`
	Question  string              `json:"question"`
	Text      string              `json:"answer"`
	Documents []RetrievedDocument `json:"documents"`
	Sources   []string            `json:"sources"`
}
