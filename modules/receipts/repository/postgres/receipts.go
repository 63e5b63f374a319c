package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

func (r *Repository) GetReceipt(ctx context.Context, id string) (*entity.Receipt, error) {
	row, err := r.queries.GetReceipt(ctx, bytesFromString(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "receipt %q", id)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	receipt, err := mapReceiptModelToType(row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse receipt model")
	}
	return &receipt, nil
}

func (r *Repository) GetReceiptsByIDs(ctx context.Context, ids []string) (map[string]*entity.Receipt, error) {
	rows, err := r.queries.GetReceiptsByIDs(ctx, lo.Map(ids, func(id string, _ int) []byte { return bytesFromString(id) }))
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	result := make(map[string]*entity.Receipt, len(rows))
	for _, row := range rows {
		receipt, err := mapReceiptModelToType(row)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse receipt model %q", row.ReceiptID)
		}
		result[receipt.ReceiptID] = &receipt
	}
	return result, nil
}

func (r *Repository) ListReceipts(ctx context.Context, afterID string, limit int32) ([]*entity.Receipt, error) {
	if limit <= 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "limit must be positive")
	}
	rows, err := r.queries.ListReceipts(ctx, gen.ListReceiptsParams{
		AfterID:  bytesFromString(afterID),
		RowLimit: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	result := make([]*entity.Receipt, 0, len(rows))
	for _, row := range rows {
		receipt, err := mapReceiptModelToType(row)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse receipt model %q", row.ReceiptID)
		}
		result = append(result, lo.ToPtr(receipt))
	}
	return result, nil
}

func (r *Repository) CountReceipts(ctx context.Context) (int64, error) {
	count, err := r.queries.CountReceipts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) UpsertReceipt(ctx context.Context, receipt entity.Receipt) error {
	params, err := mapReceiptTypeToParams(receipt)
	if err != nil {
		return errors.Wrap(err, "failed to map receipt to params")
	}
	if err := r.queries.UpsertReceipt(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetContractInstance(ctx context.Context) (*entity.ContractInstance, error) {
	row, err := r.queries.GetContractInstance(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrap(errs.NotFound, "contract instance")
		}
		return nil, errors.Wrap(err, "error during query")
	}
	instance := mapContractInstanceModelToType(row)
	return &instance, nil
}

func (r *Repository) CreateContractInstance(ctx context.Context, instance entity.ContractInstance) error {
	if err := r.queries.CreateContractInstance(ctx, mapContractInstanceTypeToParams(instance)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
