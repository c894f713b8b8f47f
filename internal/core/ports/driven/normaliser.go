package driven

import (
	"context"

	"github.com/parley-labs/parley/internal/core/domain"
)

// Normaliser extracts plain text from raw uploads.
// Each normaliser handles specific MIME types.
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	Priority() int

	// Normalise extracts the text content from a raw document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (string, error)
}
