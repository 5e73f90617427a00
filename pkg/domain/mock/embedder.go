package mock

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
)

const embedderDimension = 256

var (
	vocabMu sync.Mutex
	vocab   = map[string]int{}
)

// Embedder is a deterministic bag-of-words embedding for tests. Each token
// owns one vector bucket, assigned from a process-wide vocabulary in
// first-seen order, so distinct tokens never share a bucket and texts
// sharing tokens get a higher cosine similarity. The assignment is stable
// across Embedder instances within one test binary.
type Embedder struct{}

func (Embedder) Dimension() int { return embedderDimension }

func (Embedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, embedderDimension)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,!?\"'")
		if token == "" {
			continue
		}
		idx, err := tokenIndex(token)
		if err != nil {
			return nil, err
		}
		vec[idx]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec, nil
	}
	n := float32(math.Sqrt(norm))
	for i := range vec {
		vec[i] /= n
	}
	return vec, nil
}

func tokenIndex(token string) (int, error) {
	vocabMu.Lock()
	defer vocabMu.Unlock()

	idx, ok := vocab[token]
	if !ok {
		if len(vocab) >= embedderDimension {
			return 0, goerr.New("test vocabulary exceeds embedding dimension", goerr.V("token", token))
		}
		idx = len(vocab)
		vocab[token] = idx
	}
	return idx, nil
}
