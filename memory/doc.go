// Package memory holds the in-session conversation buffer.
//
// The buffer is append-only and owned by the conversation loop for the
// lifetime of one interactive session. Insertion order is the only order and
// the full buffer is replayed verbatim on every model call. It is never
// written to disk; process exit clears it.
package memory
