// Package services contains the application's core use cases: the answer
// pipeline, keyword retrieval, prompt assembly, document ingestion and
// settings management. Services depend only on domain types and ports.
package services
