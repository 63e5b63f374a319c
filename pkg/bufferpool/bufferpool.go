// Package bufferpool recycles scratch byte buffers.
package bufferpool

import (
	"bytes"
	"sync"
)

const (
	defaultSize = 1024
	// buffers grown beyond maxRetainedSize are dropped instead of pooled
	maxRetainedSize = 64 * 1024
)

var pool = &sync.Pool{
	New: func() interface{} {
		return &Buffer{Buffer: bytes.NewBuffer(make([]byte, 0, defaultSize))}
	},
}

type Buffer struct {
	*bytes.Buffer
}

// Get returns an empty buffer from the pool.
func Get() *Buffer {
	buf := pool.Get().(*Buffer)
	buf.Reset()
	return buf
}

// Release returns b to the pool. b and any slice obtained from b.Bytes() must not be used afterwards.
func (b *Buffer) Release() {
	if b.Cap() > maxRetainedSize {
		return
	}
	pool.Put(b)
}
