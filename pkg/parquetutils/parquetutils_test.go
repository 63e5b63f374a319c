package parquetutils

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID     string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Amount int64  `parquet:"name=amount, type=INT64"`
}

func TestWriteReadAll(t *testing.T) {
	buf := NewBuffer()
	w, err := NewWriter[testRecord](buf)
	require.NoError(t, err)

	records := []testRecord{{"a", 1}, {"b", 2}, {"c", 3}}
	require.NoError(t, w.Write(records...))
	require.NoError(t, w.Close())
	assert.EqualValues(t, 3, w.Rows())

	actual, err := ReadAll[testRecord](NewBufferFrom(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, records, actual)
}

func TestBuffer(t *testing.T) {
	buf := NewBuffer()
	_, err := buf.Write([]byte("hello world"))
	require.NoError(t, err)

	_, err = buf.WriteAt([]byte("W"), 6)
	require.NoError(t, err)
	assert.Equal(t, "hello World", string(buf.Bytes()))

	pos, err := buf.Seek(-5, io.SeekEnd)
	require.NoError(t, err)
	assert.EqualValues(t, 6, pos)

	out := make([]byte, 5)
	n, err := buf.Read(out)
	assert.Equal(t, 5, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "World", string(out))

	_, err = buf.Seek(-1, io.SeekStart)
	assert.Error(t, err)
}
