package normalisers

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
	"github.com/parley-labs/parley/internal/logger"
	"github.com/parley-labs/parley/internal/normalisers/markdown"
	"github.com/parley-labs/parley/internal/normalisers/plaintext"
)

// Registry selects a normaliser by MIME type and priority.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry creates a registry with all built-in normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(markdown.New())
	r.Register(plaintext.New())
	return r
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, n)
}

// ForMIMEType returns the highest-priority normaliser for a MIME type,
// or domain.ErrUnsupportedType when none matches.
func (r *Registry) ForMIMEType(mimeType string) (driven.Normaliser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best driven.Normaliser
	for _, n := range r.normalisers {
		for _, supported := range n.SupportedMIMETypes() {
			if supported != mimeType {
				continue
			}
			if best == nil || n.Priority() > best.Priority() {
				best = n
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
	}
	return best, nil
}

// Extract normalises a raw upload to plain text.
//
// Failures are absorbed: an unknown MIME type or a normaliser error
// degrades to a placeholder naming the file, its type and size, so a
// document always produces at least one chunk.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawDocument) string {
	if raw.MIMEType == "" {
		raw.MIMEType = DetectMIMEType(raw.Filename)
	}

	n, err := r.ForMIMEType(raw.MIMEType)
	if err != nil {
		logger.Warn("No normaliser for %s (%s), using placeholder", raw.Filename, raw.MIMEType)
		return Placeholder(raw)
	}

	content, err := n.Normalise(ctx, raw)
	if err != nil {
		logger.Warn("Normalising %s failed: %v, using placeholder", raw.Filename, err)
		return Placeholder(raw)
	}

	return content
}

// Placeholder is the degraded chunk content for unparseable uploads.
func Placeholder(raw *domain.RawDocument) string {
	return fmt.Sprintf("Document %q (%s, %d bytes) was uploaded but its text could not be extracted.",
		raw.Filename, raw.MIMEType, len(raw.Content))
}

// DetectMIMEType resolves a MIME type from the file extension,
// defaulting to text/plain.
func DetectMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return "text/markdown"
	case "":
		return "text/plain"
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "text/plain"
	}

	// Strip parameters like "; charset=utf-8"
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}
