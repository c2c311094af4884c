// Package api provides the HTTP client for the remote book collection.
//
// # Overview
//
// The package defines the wire representation of a book record and a thin
// client issuing one request per REST verb against a single collection
// endpoint:
//
//   - GET    /books      → List
//   - POST   /books      → Create
//   - PUT    /books/{id} → Replace
//   - DELETE /books/{id} → Remove
//
// # Error Handling
//
// The client owns HTTP-level error classification only. Any non-2xx status,
// network failure, or malformed response is reported as a *TransportError;
// callers can recover it with errors.As but are expected to treat all
// transport failures uniformly. The client never retries — a single failed
// call is reported upward immediately, and retry policy (if any) belongs to
// the caller.
//
// # Replace Semantics
//
// Replace performs a full-record overwrite, not a partial patch. Callers must
// supply the complete desired record including fields they left untouched;
// the server echoes back the stored record, which is the authoritative copy.
//
// # Thread Safety
//
// The Client is safe for concurrent use; the underlying http.Client handles
// connection pooling internally.
package api
