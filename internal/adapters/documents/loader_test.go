package documents_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/internal/adapters/documents"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeDocument(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestHasher_Hash(t *testing.T) {
	h := documents.NewHasher()

	a := h.Hash("query A { a }")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Hash("query A { a }"))
	assert.NotEqual(t, a, h.Hash("query B { b }"))
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "queries/product.graphql", "query Product { product { id } }")

	loader := documents.NewLoader(documents.NewHasher(), documents.NewWalker())

	doc, err := loader.Load(dir, "queries/product")
	require.NoError(t, err)
	assert.Equal(t, "queries/product.graphql", doc.Name)
	assert.Equal(t, "query Product { product { id } }", doc.Text)
	assert.Equal(t, documents.NewHasher().Hash(doc.Text), doc.ID)

	same, err := loader.Load(dir, "queries/product.graphql")
	require.NoError(t, err)
	assert.Same(t, doc, same)
}

func TestLoader_Load_HashesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHasher := mocks.NewMockDocumentHasher(ctrl)
	mockHasher.EXPECT().Hash("{ a }").Return("h1").Times(1)

	dir := t.TempDir()
	path := writeDocument(t, dir, "a.graphql", "{ a }")

	loader := documents.NewLoader(mockHasher, documents.NewWalker())
	for range 3 {
		doc, err := loader.Load("", path)
		require.NoError(t, err)
		assert.Equal(t, "h1", doc.ID)
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader := documents.NewLoader(documents.NewHasher(), documents.NewWalker())

	_, err := loader.Load(t.TempDir(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestLoader_List(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "b.graphql", "{ b }")
	writeDocument(t, dir, "nested/a.graphql", "{ a }")
	writeDocument(t, dir, "README.md", "# docs")
	writeDocument(t, dir, "node_modules/dep/c.graphql", "{ c }")

	loader := documents.NewLoader(documents.NewHasher(), documents.NewWalker())

	names, err := loader.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.graphql", "nested/a.graphql"}, names)

	_, err = loader.List(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())
}
