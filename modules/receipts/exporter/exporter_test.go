package exporter

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/repository/memory"
	"github.com/gaze-network/realpay-receipts/pkg/parquetutils"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	name string
	body []byte
}

func (f *fakeUploader) Upload(_ context.Context, name string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.name, f.body = name, data
	return "snapshots/" + name, nil
}

func seed(t *testing.T, n int) (*memory.Repository, []entity.Receipt) {
	t.Helper()
	repo := memory.NewRepository()
	receipts := make([]entity.Receipt, 0, n)
	for i := 0; i < n; i++ {
		r := entity.Receipt{
			ReceiptID: fmt.Sprintf("r%02d", i),
			TxHash:    fmt.Sprintf("0x%02x", i),
			AmountPLT: uint128.From64(uint64(i)).Mul64(math.MaxUint64),
			TsUnix:    math.MaxUint64 - uint64(i),
		}
		require.NoError(t, repo.UpsertReceipt(context.Background(), r))
		receipts = append(receipts, r)
	}
	return repo, receipts
}

func TestExport(t *testing.T) {
	repo, expected := seed(t, 7)

	// page size smaller than the data set to cross page boundaries
	buf := parquetutils.NewBuffer()
	rows, err := New(repo, 3).Export(context.Background(), buf)
	require.NoError(t, err)
	assert.EqualValues(t, 7, rows)

	actual, err := ReadSnapshot(parquetutils.NewBufferFrom(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestExportEmpty(t *testing.T) {
	buf := parquetutils.NewBuffer()
	rows, err := New(memory.NewRepository(), 0).Export(context.Background(), buf)
	require.NoError(t, err)
	assert.Zero(t, rows)

	actual, err := ReadSnapshot(parquetutils.NewBufferFrom(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestExportFileAndUpload(t *testing.T) {
	ctx := context.Background()
	repo, expected := seed(t, 3)
	path := filepath.Join(t.TempDir(), "receipts.parquet")

	rows, err := New(repo, 0).ExportFile(ctx, path)
	require.NoError(t, err)
	assert.EqualValues(t, 3, rows)

	uploader := &fakeUploader{}
	key, err := UploadFile(ctx, uploader, path)
	require.NoError(t, err)
	assert.Equal(t, "snapshots/receipts.parquet", key)
	assert.Equal(t, "receipts.parquet", uploader.name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, uploader.body)

	actual, err := ReadSnapshot(parquetutils.NewBufferFrom(uploader.body))
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
