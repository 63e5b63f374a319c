package parquetutils

import (
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/xitongsys/parquet-go/source"
)

var (
	_ source.ParquetFile = (*Buffer)(nil)
	_ io.WriterAt        = (*Buffer)(nil)
)

// Buffer is an in-memory parquet file.
type Buffer struct {
	mu  sync.Mutex
	buf []byte
	loc int
}

func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 4096)}
}

// NewBufferFrom wraps b without copying.
func NewBufferFrom(b []byte) *Buffer {
	return &Buffer{buf: b}
}

func (b *Buffer) Create(string) (source.ParquetFile, error) {
	return NewBuffer(), nil
}

func (b *Buffer) Open(string) (source.ParquetFile, error) {
	return NewBufferFrom(b.Bytes()), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	loc := b.loc
	switch whence {
	case io.SeekStart:
		loc = int(offset)
	case io.SeekCurrent:
		loc += int(offset)
	case io.SeekEnd:
		loc = len(b.buf) + int(offset)
	default:
		return int64(b.loc), errors.Wrapf(errs.InvalidArgument, "invalid whence %d", whence)
	}
	if loc < 0 {
		return int64(b.loc), errors.Wrapf(errs.InvalidArgument, "negative offset %d", loc)
	}
	b.loc = min(loc, len(b.buf))
	return int64(b.loc), nil
}

func (b *Buffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := copy(p, b.buf[b.loc:])
	b.loc += n
	if b.loc == len(b.buf) {
		return n, io.EOF
	}
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	n, err := b.WriteAt(p, int64(b.loc))
	if err != nil {
		return 0, err
	}
	b.mu.Lock()
	b.loc += n
	b.mu.Unlock()
	return n, nil
}

// WriteAt writes p at pos, growing the buffer as needed. Overlapping writes overwrite.
func (b *Buffer) WriteAt(p []byte, pos int64) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := int(pos) + len(p)
	if len(b.buf) < end {
		if cap(b.buf) < end {
			grown := make([]byte, end, end*2)
			copy(grown, b.buf)
			b.buf = grown
		}
		b.buf = b.buf[:end]
	}
	copy(b.buf[pos:], p)
	return len(p), nil
}

func (*Buffer) Close() error {
	return nil
}

func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf)
}
