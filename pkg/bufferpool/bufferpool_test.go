package bufferpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsEmptyBuffer(t *testing.T) {
	buf := Get()
	buf.WriteString("hello")
	assert.Equal(t, "hello", buf.String())
	buf.Release()

	next := Get()
	defer next.Release()
	assert.Zero(t, next.Len())
}

func TestReleaseLargeBuffer(t *testing.T) {
	buf := Get()
	buf.Write(make([]byte, maxRetainedSize+1))
	assert.NotPanics(t, buf.Release)
}
