package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService indexes files and manages stored documents.
type DocumentService struct {
	docStore    driven.DocumentStore
	loader      driven.DocumentLoader
	normalisers driven.NormaliserRegistry
	pipeline    driven.PostProcessorPipeline
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	docStore driven.DocumentStore,
	loader driven.DocumentLoader,
	normalisers driven.NormaliserRegistry,
	pipeline driven.PostProcessorPipeline,
) *DocumentService {
	return &DocumentService{
		docStore:    docStore,
		loader:      loader,
		normalisers: normalisers,
		pipeline:    pipeline,
	}
}

// Index reads, normalises and stores one file.
func (s *DocumentService) Index(ctx context.Context, path string) (*domain.Document, error) {
	raw, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.index(ctx, raw)
}

// IndexContent indexes content under uri.
func (s *DocumentService) IndexContent(
	ctx context.Context,
	uri, mimeType string,
	content []byte,
) (*domain.Document, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: uri is required", domain.ErrInvalidInput)
	}
	return s.index(ctx, &domain.RawDocument{URI: uri, MIMEType: mimeType, Content: content})
}

// IndexAll indexes every file under path.
func (s *DocumentService) IndexAll(ctx context.Context, path string, report func(driving.IndexResult)) error {
	files, err := s.loader.Files(ctx, path)
	if err != nil {
		return err
	}
	logger.Info("Indexing %d files from %s", len(files), path)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := s.Index(ctx, file)
		if err != nil {
			logger.Debug("Failed to index %s: %v", file, err)
		}
		if report != nil {
			report(driving.IndexResult{Path: file, Document: doc, Err: err})
		}
	}
	return nil
}

// index runs the processing steps for one raw document.
func (s *DocumentService) index(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	logger.Debug("Processing: %s", raw.URI)

	// 1. NORMALISE (produces Document with Content)
	result, err := s.normalisers.Normalise(ctx, raw)
	if errors.Is(err, domain.ErrUnsupportedType) {
		supported := strings.Join(s.normalisers.SupportedMIMETypes(), ", ")
		return nil, fmt.Errorf("normalise %s: %w (supported: %s)", raw.URI, err, supported)
	}
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	}
	doc := &result.Document

	// 2. KEEP THE CREATION TIME OF ANY PREVIOUS VERSION
	existing, err := s.docStore.GetDocument(ctx, doc.ID)
	switch {
	case err == nil:
		doc.CreatedAt = existing.CreatedAt
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get document: %w", err)
	}

	// 3. RUN POST-PROCESSOR PIPELINE (sets Excerpt, produces Chunks)
	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("post-process: %w", err)
	}

	// 4. REPLACE THE STORED VERSION
	if err := s.docStore.ReplaceDocument(ctx, doc, chunks); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	logger.Debug("Indexed %s: %d chunks", raw.URI, len(chunks))
	return doc, nil
}

// Remove deletes the document indexed from path.
func (s *DocumentService) Remove(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	return s.docStore.DeleteDocument(ctx, domain.DocumentID(abs))
}

// List returns all documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// GetContent returns the stored text of a document.
func (s *DocumentService) GetContent(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// GetDetails returns document metadata for display.
func (s *DocumentService) GetDetails(ctx context.Context, documentID string) (*driving.DocumentDetails, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// Get chunk count
	chunks, err := s.docStore.GetChunks(ctx, documentID)
	chunkCount := 0
	if err == nil {
		chunkCount = len(chunks)
	}

	// Flatten metadata to string map
	metadata := make(map[string]string)
	for key, value := range doc.Metadata {
		metadata[key] = fmt.Sprintf("%v", value)
	}

	return &driving.DocumentDetails{
		ID:         doc.ID,
		Title:      doc.Title,
		URI:        doc.URI,
		Excerpt:    doc.Excerpt,
		ChunkCount: chunkCount,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
		Metadata:   metadata,
	}, nil
}

// Delete removes a document and its chunks.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	return s.docStore.DeleteDocument(ctx, documentID)
}
