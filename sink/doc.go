// Package sink provides Sink implementations: a growable in-memory
// Buffer (pooled via GetBuffer/PutBuffer) and a mutex-guarded Writer
// that makes a shared io.Writer safe against interleaved output from
// concurrent render calls.
package sink
