// Package normalisers provides implementations of the Normaliser interface
// for the document formats Parley accepts. Each normaliser knows how to
// extract text content from a specific MIME type.
//
// Normalisers are registered with the Registry at startup. Extraction
// failures degrade to a placeholder describing the file instead of
// aborting ingestion.
package normalisers
