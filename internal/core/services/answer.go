package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
	"github.com/parley-labs/parley/internal/core/ports/driving"
	"github.com/parley-labs/parley/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// DefaultTopK is the number of chunks retrieved per question when not
// configured otherwise.
const DefaultTopK = 3

// AnswerService runs the question-answering pipeline: retrieve relevant
// chunks, assemble the prompt, call the completion service once and record
// the exchange in the conversation window.
type AnswerService struct {
	chunkStore driven.ChunkStore
	convStore  driven.ConversationStore
	completion driven.CompletionService
	retriever  *Retriever
	assembler  *PromptAssembler
	topK       int
	chatOpts   driven.ChatOptions
}

// AnswerOption configures the answer service.
type AnswerOption func(*AnswerService)

// WithTopK sets how many chunks are retrieved per question.
func WithTopK(k int) AnswerOption {
	return func(s *AnswerService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithChatOptions sets the sampling parameters for completion calls.
func WithChatOptions(opts driven.ChatOptions) AnswerOption {
	return func(s *AnswerService) {
		s.chatOpts = opts
	}
}

// NewAnswerService creates the answer pipeline.
// The completion service may be nil; Answer then fails with
// domain.ErrCompletionUnavailable while Retrieve keeps working.
func NewAnswerService(
	chunkStore driven.ChunkStore,
	convStore driven.ConversationStore,
	completion driven.CompletionService,
	opts ...AnswerOption,
) *AnswerService {
	s := &AnswerService{
		chunkStore: chunkStore,
		convStore:  convStore,
		completion: completion,
		retriever:  NewRetriever(),
		assembler:  NewPromptAssembler(),
		topK:       DefaultTopK,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Answer handles one inbound question.
func (s *AnswerService) Answer(ctx context.Context, req domain.AnswerRequest) (*domain.Answer, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	logger.Section("Answer Pipeline")
	logger.Debug("Question: %q, conversation: %q, explicit history: %t",
		question, req.ConversationID, req.History != nil)

	retrieved := s.safeRetrieve(ctx, question)

	// Explicit history overrides the stored window and is assumed to
	// already contain the question as its final user turn.
	explicitHistory := req.History != nil

	var history []domain.Turn
	if explicitHistory {
		history = req.History
	} else if req.ConversationID != "" {
		stored, err := s.convStore.Get(ctx, req.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("read conversation window: %w", err)
		}
		history = stored
	}

	turns := s.assembler.Assemble(history, retrieved, question, !explicitHistory)
	logger.Debug("Assembled prompt: %d turns, %d excerpts", len(turns), len(retrieved))

	if s.completion == nil {
		return nil, domain.ErrCompletionUnavailable
	}

	text, err := s.completion.Chat(ctx, turns, s.chatOpts)
	if err != nil {
		logger.Warn("Completion call failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	if req.ConversationID != "" {
		s.record(ctx, req.ConversationID, question, text)
	}

	logger.Info("Answered with %d excerpts", len(retrieved))
	return &domain.Answer{
		Text:              text,
		UsedKnowledgeBase: len(retrieved) > 0,
		RelevantDocsFound: len(retrieved),
	}, nil
}

// Retrieve returns the top-k chunks for a query without a completion call.
func (s *AnswerService) Retrieve(ctx context.Context, query string, k int) ([]domain.Chunk, error) {
	if k <= 0 {
		k = s.topK
	}

	chunks, err := s.chunkStore.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}

	return s.retriever.Search(chunks, query, k), nil
}

// safeRetrieve runs retrieval and absorbs every failure, including panics
// during scoring. A question must still be answerable when retrieval
// breaks; it just proceeds without document context.
func (s *AnswerService) safeRetrieve(ctx context.Context, question string) (retrieved []domain.Chunk) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Retrieval panicked: %v, continuing without context", r)
			retrieved = nil
		}
	}()

	retrieved, err := s.Retrieve(ctx, question, s.topK)
	if err != nil {
		logger.Warn("Retrieval failed: %v, continuing without context", err)
		return nil
	}
	return retrieved
}

// record appends the question and answer to the conversation window.
// Append errors are logged, not surfaced: the answer already exists and
// the caller should receive it.
func (s *AnswerService) record(ctx context.Context, id, question, answer string) {
	if err := s.convStore.Append(ctx, id, domain.UserTurn(question)); err != nil {
		logger.Warn("Recording question failed: %v", err)
		return
	}
	if err := s.convStore.Append(ctx, id, domain.AssistantTurn(answer)); err != nil {
		logger.Warn("Recording answer failed: %v", err)
	}
}
