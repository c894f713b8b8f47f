package services

import (
	"fmt"
	"strings"

	"github.com/parley-labs/parley/internal/core/domain"
)

// contextInstruction precedes the retrieved excerpts in the system turn.
const contextInstruction = "You are a helpful assistant answering questions about the user's documents. " +
	"Use the excerpts below when they are relevant to the question. " +
	"If they do not contain the answer, fall back to your general knowledge and say so."

// genericInstruction is the system turn when no excerpts were retrieved.
const genericInstruction = "You are a helpful assistant. " +
	"Answer the user's questions and maintain the context of the conversation."

// chunkSeparator sits between excerpts in the system turn.
const chunkSeparator = "\n\n---\n\n"

// PromptAssembler builds the ordered turn list for a completion call.
type PromptAssembler struct{}

// NewPromptAssembler creates a prompt assembler.
func NewPromptAssembler() *PromptAssembler {
	return &PromptAssembler{}
}

// Assemble combines system instructions, retrieved context and history
// into one turn sequence.
//
// The result carries exactly one system turn, always first and always the
// assembler's own; system turns in history are dropped. The question is
// appended as the final user turn only when appendQuestion is set;
// callers supplying explicit history already include it there.
func (a *PromptAssembler) Assemble(
	history []domain.Turn, retrieved []domain.Chunk, question string, appendQuestion bool,
) []domain.Turn {
	turns := make([]domain.Turn, 0, len(history)+2)
	turns = append(turns, domain.SystemTurn(a.systemPrompt(retrieved)))

	for _, turn := range history {
		if turn.Role == domain.RoleSystem {
			continue
		}
		turns = append(turns, turn)
	}

	if appendQuestion {
		turns = append(turns, domain.UserTurn(question))
	}

	return turns
}

// systemPrompt renders the leading system turn.
func (a *PromptAssembler) systemPrompt(retrieved []domain.Chunk) string {
	if len(retrieved) == 0 {
		return genericInstruction
	}

	excerpts := make([]string, len(retrieved))
	for i, chunk := range retrieved {
		excerpts[i] = fmt.Sprintf("From %q:\n%s", chunk.Filename, chunk.Text)
	}

	return contextInstruction + "\n\nDocument excerpts:\n\n" + strings.Join(excerpts, chunkSeparator)
}
