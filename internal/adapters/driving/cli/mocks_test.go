package cli

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driving"
)

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(_ context.Context, _ domain.AnswerRequest) (*domain.Answer, error) {
	return m.answer, m.err
}

func (m *mockAnswerService) Retrieve(_ context.Context, _ string, _ int) ([]domain.Chunk, error) {
	return nil, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	err       error
}

func (m *mockDocumentService) Ingest(_ context.Context, in driving.IngestInput) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Document{ID: "doc-1", Filename: in.Filename, ChunkCount: 2}, nil
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	saved    *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, m.err
	}
	return m.settings, m.err
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.saved = settings
	return m.err
}

// setupTestServices injects mock services and returns a cleanup function.
func setupTestServices() func() {
	SetServices(Services{
		Answer: &mockAnswerService{answer: &domain.Answer{Text: "test answer"}},
		Document: &mockDocumentService{
			documents: []domain.Document{
				{ID: "doc-1", Filename: "handbook.md", Title: "Handbook", MIMEType: "text/markdown", ChunkCount: 3},
			},
		},
		Settings: &mockSettingsService{},
	})
	return func() {
		SetServices(Services{})
	}
}
