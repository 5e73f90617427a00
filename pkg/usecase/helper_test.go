package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umami-lab/tavolo/pkg/domain/mock"
	"github.com/umami-lab/tavolo/pkg/repository/vectordb"
	"github.com/umami-lab/tavolo/pkg/service/loader"
	"github.com/umami-lab/tavolo/pkg/usecase"
)

func newUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()
	store, err := vectordb.New(t.TempDir(), mock.Embedder{})
	gt.NoError(t, err).Required()
	return usecase.New(store, loader.New(), opts...)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()
	return path
}
