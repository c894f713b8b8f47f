package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/logger"
)

// Scoring weights. Whole-word hits dominate, substring hits are a weak
// signal, and a query term in the filename is worth more than any single
// body match. An exact match contributes to both the word and substring
// tallies; that double count biases ranking toward exact matches without
// excluding them from the substring pass.
const (
	wholeWordPoints = 10
	substringPoints = 2
	filenamePoints  = 50
)

// fallbackLimit is how many chunks the retriever hands back when nothing
// scores above zero. The prompt always gets some context to work with, at
// the cost of occasionally irrelevant excerpts.
const fallbackLimit = 3

var nonWordChars = regexp.MustCompile(`\W+`)

// Retriever scores chunks against a query with literal keyword matching.
// No stemming, no stop-word list, no vector similarity: the prompt
// assembler depends on this retrieval's tolerance for approximate hits.
type Retriever struct{}

// NewRetriever creates a keyword retriever.
func NewRetriever() *Retriever {
	return &Retriever{}
}

// Search returns up to k chunks ordered by descending relevance.
//
// A query with no usable tokens returns the first k chunks in store order.
// A query where no chunk scores above zero returns the first few chunks
// regardless of score, provided the store is non-empty.
func (r *Retriever) Search(chunks []domain.Chunk, query string, k int) []domain.Chunk {
	if k <= 0 || len(chunks) == 0 {
		return nil
	}

	tokens := tokenize(query)
	logger.Debug("Query tokens: %v", tokens)
	if len(tokens) == 0 {
		logger.Debug("No usable tokens, returning first %d chunks unscored", k)
		return firstN(chunks, k)
	}

	patterns := make([]*regexp.Regexp, len(tokens))
	for i, tok := range tokens {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(tok) + `\b`)
	}

	type scoredChunk struct {
		chunk domain.Chunk
		score int
	}

	var hits []scoredChunk
	for _, chunk := range chunks {
		s := scoreChunk(chunk, tokens, patterns)
		if s > 0 {
			hits = append(hits, scoredChunk{chunk: chunk, score: s})
		}
	}

	if len(hits) == 0 {
		logger.Debug("No chunk scored above zero, falling back to first %d", fallbackLimit)
		return firstN(chunks, fallbackLimit)
	}

	// Stable: equal scores keep their store order
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > k {
		hits = hits[:k]
	}

	results := make([]domain.Chunk, len(hits))
	for i := range hits {
		results[i] = hits[i].chunk
	}

	logger.Debug("Retrieved %d chunks (top score %d)", len(results), hits[0].score)
	return results
}

// tokenize lower-cases the query, splits on whitespace, discards tokens of
// length <= 2 and strips non-word characters from the survivors.
func tokenize(query string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(query)) {
		if len(field) <= 2 {
			continue
		}
		tok := nonWordChars.ReplaceAllString(field, "")
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// scoreChunk computes the keyword score of one chunk.
func scoreChunk(chunk domain.Chunk, tokens []string, patterns []*regexp.Regexp) int {
	text := strings.ToLower(chunk.Text)
	filename := strings.ToLower(chunk.Filename)

	score := 0
	for i, tok := range tokens {
		score += len(patterns[i].FindAllStringIndex(text, -1)) * wholeWordPoints
		score += strings.Count(text, tok) * substringPoints
		if strings.Contains(filename, tok) {
			score += filenamePoints
		}
	}
	return score
}

func firstN(chunks []domain.Chunk, n int) []domain.Chunk {
	if n > len(chunks) {
		n = len(chunks)
	}
	out := make([]domain.Chunk, n)
	copy(out, chunks[:n])
	return out
}
