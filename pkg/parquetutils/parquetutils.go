package parquetutils

import (
	"github.com/cockroachdb/errors"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// Concurrency is the number of parallel parquet readers/writers.
var Concurrency int64 = 4

// ReadAll reads all records from the parquet file.
func ReadAll[T any](file source.ParquetFile) ([]T, error) {
	r, err := reader.NewParquetReader(file, new(T), Concurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet reader")
	}
	defer r.ReadStop()

	data := make([]T, r.GetNumRows())
	if len(data) == 0 {
		return data, nil
	}
	if err := r.Read(&data); err != nil {
		return nil, errors.Wrap(err, "failed to read parquet data")
	}
	return data, nil
}

// Writer appends records of type T to a snappy-compressed parquet file.
type Writer[T any] struct {
	pw   *writer.ParquetWriter
	rows int64
}

func NewWriter[T any](file source.ParquetFile) (*Writer[T], error) {
	pw, err := writer.NewParquetWriter(file, new(T), Concurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet writer")
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	return &Writer[T]{pw: pw}, nil
}

func (w *Writer[T]) Write(records ...T) error {
	for i := range records {
		if err := w.pw.Write(records[i]); err != nil {
			return errors.Wrapf(err, "failed to write parquet record %d", w.rows)
		}
		w.rows++
	}
	return nil
}

// Rows returns the number of records written so far.
func (w *Writer[T]) Rows() int64 {
	return w.rows
}

// Close flushes the footer. The underlying file is not closed.
func (w *Writer[T]) Close() error {
	if err := w.pw.WriteStop(); err != nil {
		return errors.Wrap(err, "failed to finalize parquet file")
	}
	return nil
}
