package domain

// AnswerRequest is an inbound question.
//
// Two input modes exist and the caller must pick exactly one:
//   - conversation mode: ConversationID set, History nil. The server reads
//     the stored window and appends Question as the final user turn.
//   - explicit-history mode: History non-nil and already containing the
//     question as its last user turn; Question is not re-appended.
type AnswerRequest struct {
	// Question is the user's question. Must be non-empty.
	Question string `json:"question"`

	// ConversationID selects a server-side conversation window.
	// Optional; a window is created on first use.
	ConversationID string `json:"conversationId,omitempty"`

	// History is a caller-supplied turn sequence, overriding the stored
	// window. When set it is assumed to already include the question.
	History []Turn `json:"history,omitempty"`
}

// Answer is the result of one answer pipeline run.
type Answer struct {
	// Text is the generated answer.
	Text string `json:"answer"`

	// UsedKnowledgeBase reports whether retrieved document context was
	// injected into the prompt.
	UsedKnowledgeBase bool `json:"usedKnowledgeBase"`

	// RelevantDocsFound is the number of chunks handed to the assembler.
	RelevantDocsFound int `json:"relevantDocsFound"`
}
