package httpapi

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driving"
)

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer  *domain.Answer
	chunks  []domain.Chunk
	lastReq domain.AnswerRequest
	err     error
}

func (m *mockAnswerService) Answer(_ context.Context, req domain.AnswerRequest) (*domain.Answer, error) {
	m.lastReq = req
	return m.answer, m.err
}

func (m *mockAnswerService) Retrieve(_ context.Context, _ string, _ int) ([]domain.Chunk, error) {
	return m.chunks, m.err
}

// mockConversationService is a mock implementation of driving.ConversationService.
type mockConversationService struct {
	turns   []domain.Turn
	cleared []string
	err     error
}

func (m *mockConversationService) History(_ context.Context, _ string) ([]domain.Turn, error) {
	return m.turns, m.err
}

func (m *mockConversationService) Clear(_ context.Context, id string) error {
	m.cleared = append(m.cleared, id)
	return m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	lastIn    driving.IngestInput
	deleted   []string
	err       error
}

func (m *mockDocumentService) Ingest(_ context.Context, in driving.IngestInput) (*domain.Document, error) {
	m.lastIn = in
	return m.document, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}
