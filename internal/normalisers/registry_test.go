package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
)

type stubNormaliser struct {
	name     string
	types    []string
	priority int
}

func (s *stubNormaliser) SupportedMIMETypes() []string { return s.types }
func (s *stubNormaliser) Priority() int                { return s.priority }
func (s *stubNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	return &driven.NormaliseResult{Document: domain.Document{URI: raw.URI, Title: s.name}}, nil
}

func TestRegistry_PicksHighestPriority(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{name: "low", types: []string{"text/html"}, priority: 5})
	r.Register(&stubNormaliser{name: "high", types: []string{"text/html"}, priority: 50})
	r.Register(&stubNormaliser{name: "second", types: []string{"text/html"}, priority: 50})

	result, err := r.Normalise(context.Background(), &domain.RawDocument{URI: "/a", MIMEType: "text/html"})
	require.NoError(t, err)
	assert.Equal(t, "high", result.Document.Title)
}

func TestRegistry_IgnoresMIMEParameters(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{name: "html", types: []string{"text/html"}, priority: 50})

	result, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "text/HTML; charset=utf-8"})
	require.NoError(t, err)
	assert.Equal(t, "html", result.Document.Title)
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry()

	_, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "image/png"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry(nil)
	assert.Equal(t, []string{"application/xhtml+xml", "text/html", "text/markdown", "text/plain"}, r.SupportedMIMETypes())

	result, err := r.Normalise(context.Background(), &domain.RawDocument{
		URI:      "/index.html",
		MIMEType: "text/html",
		Content:  []byte("<title>Home</title><p>Hello</p>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Home", result.Document.Title)
	assert.Equal(t, "Hello", result.Document.Content)
}
