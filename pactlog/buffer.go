package pactlog

import (
	"bytes"
	"sync"
)

// Buffer is a concurrency-safe io.Writer sink intended for the FFI
// wrapper to drain accumulated log output across the cgo boundary;
// the core never reads it back itself.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns a snapshot of everything written so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Drain returns the accumulated output and resets the buffer to empty,
// the shape an FFI "take the log and clear it" call needs.
func (b *Buffer) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.String()
	b.buf.Reset()
	return s
}
