package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid document URI",
			uri:      "hyperless://documents/doc-456",
			expected: "doc-456",
		},
		{
			name:     "invalid prefix",
			uri:      "file://documents/doc-456",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "hyperless://documents/doc-456/chunks",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractDocumentID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns empty list", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{})

		req := makeReadResourceRequest("hyperless://documents")
		result, err := server.handleDocumentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns documents successfully", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{docs: []domain.Document{
			{ID: "doc-1", Title: "Home", URI: "/site/index.html", Excerpt: "Welcome."},
		}})

		req := makeReadResourceRequest("hyperless://documents")
		result, err := server.handleDocumentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t, `[{"id":"doc-1","title":"Home","uri":"/site/index.html","excerpt":"Welcome."}]`,
			result.Contents[0].Text)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{err: errors.New("store closed")})

		_, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("hyperless://documents"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns content", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{content: "Hello world"})

		req := makeReadResourceRequest("hyperless://documents/doc-1")
		result, err := server.handleDocumentContentResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "Hello world", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("invalid URI is not found", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{})

		_, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest("hyperless://documents/"))

		assert.Error(t, err)
	})

	t.Run("unknown document is not found", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{err: domain.ErrNotFound})

		_, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest("hyperless://documents/nope"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		server := newTestServer(t, &mockDocumentService{err: errors.New("disk")})

		_, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest("hyperless://documents/doc-1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting document content")
	})
}
