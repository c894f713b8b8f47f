// Package memory provides in-memory implementations of the driven storage
// ports. The chunk store and conversation store are process-lifetime by
// design; the metadata store doubles as the availability fallback when the
// SQLite store cannot be opened.
package memory
