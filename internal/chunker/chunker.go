// Package chunker splits document text into bounded, overlapping chunks.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/parley-labs/parley/internal/core/domain"
)

// paragraphSplit matches one or more blank lines, including lines holding
// only spaces or tabs.
var paragraphSplit = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+`)

// DefaultTargetSize is the default soft chunk size in characters.
const DefaultTargetSize = 1000

// DefaultOverlap is the default number of overlapping characters carried
// between consecutive chunks.
const DefaultOverlap = 200

// Chunker splits text on paragraph boundaries into chunks of roughly
// targetSize characters. Consecutive paragraph-level chunks share the
// trailing overlap characters of their predecessor.
type Chunker struct {
	targetSize int
	overlap    int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithTargetSize sets the soft chunk size in characters.
func WithTargetSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.targetSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		targetSize: DefaultTargetSize,
		overlap:    DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave room for new content in each chunk
	if c.overlap >= c.targetSize {
		c.overlap = c.targetSize / 4
	}

	return c
}

// Split chunks text into document-ordered segments.
//
// Empty or whitespace-only input yields the single sentinel chunk
// domain.EmptyDocumentMarker: callers always receive at least one chunk
// per processed document. Text that already fits within the target size is
// returned verbatim as a single chunk.
func (c *Chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{domain.EmptyDocumentMarker}
	}

	if len(text) <= c.targetSize {
		return []string{text}
	}

	var chunks []string
	var buf string

	for _, para := range splitParagraphs(text) {
		if len(para) > c.targetSize {
			// Oversized paragraph: fall back to word-boundary splitting.
			// No overlap is carried between word-level sub-chunks beyond
			// what is already in the buffer.
			for _, word := range strings.Fields(para) {
				if buf != "" && len(buf)+1+len(word) > c.targetSize {
					chunks = append(chunks, buf)
					buf = ""
				}
				buf = join(buf, " ", word)
			}
			continue
		}

		if buf != "" && len(buf)+2+len(para) > c.targetSize {
			chunks = append(chunks, buf)
			buf = tail(buf, c.overlap)
		}
		buf = join(buf, "\n\n", para)
	}

	if strings.TrimSpace(buf) != "" {
		chunks = append(chunks, buf)
	}

	return chunks
}

// splitParagraphs splits text on blank-line boundaries, dropping empty
// paragraphs.
func splitParagraphs(text string) []string {
	var paras []string
	for _, block := range paragraphSplit.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1) {
		block = strings.TrimSpace(block)
		if block != "" {
			paras = append(paras, block)
		}
	}
	return paras
}

// join concatenates buf and next with sep, omitting sep when buf is empty.
func join(buf, sep, next string) string {
	if buf == "" {
		return next
	}
	return buf + sep + next
}

// tail returns the last n bytes of s, aligned to a rune boundary so the
// overlap never starts inside a multi-byte character.
func tail(s string, n int) string {
	if n <= 0 || len(s) <= n {
		if n <= 0 {
			return ""
		}
		return s
	}
	start := len(s) - n
	for start < len(s) && !utf8.RuneStart(s[start]) {
		start++
	}
	return s[start:]
}
