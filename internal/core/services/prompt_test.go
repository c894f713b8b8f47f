package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley/internal/core/domain"
)

func countSystemTurns(turns []domain.Turn) int {
	n := 0
	for _, turn := range turns {
		if turn.Role == domain.RoleSystem {
			n++
		}
	}
	return n
}

func TestAssemble_NoContext(t *testing.T) {
	a := NewPromptAssembler()

	turns := a.Assemble(nil, nil, "What is the policy?", true)

	require.Len(t, turns, 2)
	assert.Equal(t, domain.RoleSystem, turns[0].Role)
	assert.Equal(t, genericInstruction, turns[0].Content)
	assert.Equal(t, domain.RoleUser, turns[1].Role)
	assert.Equal(t, "What is the policy?", turns[1].Content)
}

func TestAssemble_WithRetrievedContext(t *testing.T) {
	a := NewPromptAssembler()
	retrieved := []domain.Chunk{
		{Filename: "handbook.md", Text: "Holiday: 25 days."},
		{Filename: "faq.txt", Text: "Remote work allowed."},
	}

	turns := a.Assemble(nil, retrieved, "How many holiday days?", true)

	require.Len(t, turns, 2)
	system := turns[0].Content
	assert.Contains(t, system, `From "handbook.md":`)
	assert.Contains(t, system, "Holiday: 25 days.")
	assert.Contains(t, system, `From "faq.txt":`)
	assert.Contains(t, system, chunkSeparator)
	assert.True(t, strings.HasPrefix(system, contextInstruction))
}

func TestAssemble_ExactlyOneSystemTurn(t *testing.T) {
	a := NewPromptAssembler()
	history := []domain.Turn{
		domain.SystemTurn("stale system prompt"),
		domain.UserTurn("earlier question"),
		domain.AssistantTurn("earlier answer"),
		domain.SystemTurn("another stale system prompt"),
	}

	turns := a.Assemble(history, nil, "next question", true)

	assert.Equal(t, 1, countSystemTurns(turns))
	assert.Equal(t, domain.RoleSystem, turns[0].Role)
	assert.NotContains(t, turns[0].Content, "stale")

	// History order preserved minus the system turns
	require.Len(t, turns, 4)
	assert.Equal(t, "earlier question", turns[1].Content)
	assert.Equal(t, "earlier answer", turns[2].Content)
	assert.Equal(t, "next question", turns[3].Content)
}

func TestAssemble_ExplicitHistorySkipsQuestion(t *testing.T) {
	a := NewPromptAssembler()
	history := []domain.Turn{
		domain.UserTurn("the question is already here"),
	}

	turns := a.Assemble(history, nil, "the question is already here", false)

	require.Len(t, turns, 2)
	assert.Equal(t, domain.RoleUser, turns[1].Role)
	assert.Equal(t, "the question is already here", turns[1].Content)
}
