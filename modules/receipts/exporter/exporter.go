// Package exporter writes receipt snapshots as parquet files.
package exporter

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/parquetutils"
	"github.com/gaze-network/uint128"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
)

const DefaultPageSize = 1000

// Record is the parquet row of one receipt.
type Record struct {
	ReceiptID string `parquet:"name=receipt_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	TxHash    string `parquet:"name=tx_hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	AmountPlt string `parquet:"name=amount_plt, type=BYTE_ARRAY, convertedtype=UTF8"` // decimal string, u128 doesn't fit INT64
	TsUnix    int64  `parquet:"name=ts_unix, type=INT64, convertedtype=UINT_64"`
}

func mapReceiptToRecord(r *entity.Receipt) Record {
	return Record{
		ReceiptID: r.ReceiptID,
		TxHash:    r.TxHash,
		AmountPlt: r.AmountPLT.String(),
		TsUnix:    int64(r.TsUnix),
	}
}

func mapRecordToReceipt(r Record) (entity.Receipt, error) {
	amount, err := uint128.FromString(r.AmountPlt)
	if err != nil {
		return entity.Receipt{}, errors.Wrapf(errs.Malformed, "amount_plt %q of receipt %q", r.AmountPlt, r.ReceiptID)
	}
	return entity.Receipt{
		ReceiptID: r.ReceiptID,
		TxHash:    r.TxHash,
		AmountPLT: amount,
		TsUnix:    uint64(r.TsUnix),
	}, nil
}

// Uploader stores a finished snapshot, e.g. [s3archive.Archive].
type Uploader interface {
	Upload(ctx context.Context, name string, body io.Reader) (string, error)
}

type Exporter struct {
	receiptsDg datagateway.ReceiptsReaderDataGateway
	pageSize   int32
}

func New(receiptsDg datagateway.ReceiptsReaderDataGateway, pageSize int32) *Exporter {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Exporter{
		receiptsDg: receiptsDg,
		pageSize:   pageSize,
	}
}

// Export writes every stored receipt, in id order, to file and returns the number of rows.
// file is not closed.
func (e *Exporter) Export(ctx context.Context, file source.ParquetFile) (int64, error) {
	w, err := parquetutils.NewWriter[Record](file)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var afterID string
	for {
		if err := ctx.Err(); err != nil {
			return 0, errors.WithStack(err)
		}
		page, err := e.receiptsDg.ListReceipts(ctx, afterID, e.pageSize)
		if err != nil {
			return 0, errors.Wrap(err, "failed to list receipts")
		}
		for _, r := range page {
			if err := w.Write(mapReceiptToRecord(r)); err != nil {
				return 0, errors.WithStack(err)
			}
		}
		logger.DebugContext(ctx, "Exported receipts page", slogx.Int("size", len(page)), slogx.Int64("rows", w.Rows()))
		if len(page) < int(e.pageSize) {
			break
		}
		afterID = page[len(page)-1].ReceiptID
	}

	if err := w.Close(); err != nil {
		return 0, errors.WithStack(err)
	}
	return w.Rows(), nil
}

// ExportFile writes the snapshot to a local parquet file at path.
func (e *Exporter) ExportFile(ctx context.Context, path string) (int64, error) {
	file, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, errors.Wrapf(err, "can't create %q", path)
	}
	rows, err := e.Export(ctx, file)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = errors.Wrapf(closeErr, "failed to close %q", path)
	}
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return rows, nil
}

// UploadFile stores the file at path under its base name and returns the resulting key.
func UploadFile(ctx context.Context, uploader Uploader, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "can't open %q", path)
	}
	defer file.Close()

	key, err := uploader.Upload(ctx, filepath.Base(path), file)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload snapshot")
	}
	logger.InfoContext(ctx, "Uploaded receipts snapshot", slogx.String("key", key))
	return key, nil
}

// ReadSnapshot decodes the receipts of a snapshot produced by Export.
func ReadSnapshot(file source.ParquetFile) ([]entity.Receipt, error) {
	records, err := parquetutils.ReadAll[Record](file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	receipts := make([]entity.Receipt, 0, len(records))
	for _, rec := range records {
		r, err := mapRecordToReceipt(rec)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		receipts = append(receipts, r)
	}
	return receipts, nil
}
