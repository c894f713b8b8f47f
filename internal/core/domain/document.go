package domain

import "time"

// EmptyDocumentMarker is the sentinel chunk content for documents whose
// text is empty or whitespace-only. Every processed document yields at
// least one chunk, so downstream consumers never see a chunkless document.
const EmptyDocumentMarker = "[empty document]"

// Document holds the metadata of an uploaded document.
// The text itself lives in the chunk store; Document is what survives in
// the metadata store and what listings are built from.
type Document struct {
	// ID identifies the upload and doubles as the SourceID of its chunks.
	ID string

	// Filename is the original file's display name.
	Filename string

	// Title is the human-readable title supplied at upload time.
	Title string

	// Description is an optional free-form description.
	Description string

	// UserID identifies the uploader (opaque, caller-supplied).
	UserID string

	// MIMEType is the detected content type.
	MIMEType string

	// SizeBytes is the raw upload size.
	SizeBytes int64

	// ChunkCount is the number of chunks produced at ingestion.
	ChunkCount int

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk is the unit of retrieval: a bounded contiguous slice of one
// document's text. Chunks are immutable once created and are removed only
// in bulk, by SourceID.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// SourceID links back to the Document that produced this chunk.
	SourceID string

	// Ordinal is the 1-based position of this chunk within its document.
	Ordinal int

	// Filename is the originating file's display name.
	// Retrieval awards a title boost for query terms that appear here.
	Filename string

	// Text is the chunk content.
	Text string
}

// RawDocument is an uploaded file before normalisation.
type RawDocument struct {
	// Filename is the original file name, used for MIME detection.
	Filename string

	// MIMEType is the content type, detected from the filename when empty.
	MIMEType string

	// Content is the raw file bytes.
	Content []byte
}
