// Package sqlite provides the persistent document metadata store.
//
// Only metadata lives here; chunk text stays in the in-memory chunk store
// and is rebuilt on ingestion. When this store cannot be opened at startup
// the application falls back to the in-memory metadata store, trading
// durability for availability.
package sqlite
