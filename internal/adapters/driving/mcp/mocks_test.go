package mcp

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/core/services"
)

func newMarkupService() driving.MarkupService {
	return services.NewMarkupService(services.NewSettingsService(memory.NewConfigStore()))
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	docs    []domain.Document
	content string
	results []driving.IndexResult
	err     error
}

func (m *mockDocumentService) Index(_ context.Context, _ string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) IndexContent(_ context.Context, _, _ string, _ []byte) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) IndexAll(_ context.Context, _ string, report func(driving.IndexResult)) error {
	if m.err != nil {
		return m.err
	}
	for _, r := range m.results {
		report(r)
	}
	return nil
}

func (m *mockDocumentService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) GetContent(_ context.Context, _ string) (string, error) {
	return m.content, m.err
}

func (m *mockDocumentService) GetDetails(_ context.Context, _ string) (*driving.DocumentDetails, error) {
	return nil, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}
