package postgres

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/repository/postgres/gen"
	"github.com/gaze-network/uint128"
	"github.com/jackc/pgx/v5/pgtype"
)

func uint128FromNumeric(src pgtype.Numeric) (*uint128.Uint128, error) {
	if !src.Valid {
		return nil, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	result, err := uint128.FromString(string(bytes))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &result, nil
}

func numericFromUint128(src *uint128.Uint128) (pgtype.Numeric, error) {
	if src == nil {
		return pgtype.Numeric{}, nil
	}
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(src.String())); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func uint64FromNumeric(src pgtype.Numeric) (uint64, error) {
	u128, err := uint128FromNumeric(src)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if u128 == nil {
		return 0, nil
	}
	if u128.Hi != 0 {
		return 0, errors.Wrapf(errs.OverflowUint64, "value %s", u128)
	}
	return u128.Lo, nil
}

// bytesFromString never returns nil, pgx encodes a nil slice as NULL.
func bytesFromString(s string) []byte {
	b := make([]byte, len(s))
	copy(b, s)
	return b
}

func mapReceiptModelToType(src gen.Receipt) (entity.Receipt, error) {
	amount, err := uint128FromNumeric(src.AmountPlt)
	if err != nil {
		return entity.Receipt{}, errors.Wrap(err, "failed to parse amount_plt")
	}
	if amount == nil {
		return entity.Receipt{}, errors.Wrap(errs.SomethingWentWrong, "amount_plt is null")
	}
	ts, err := uint64FromNumeric(src.TsUnix)
	if err != nil {
		return entity.Receipt{}, errors.Wrap(err, "failed to parse ts_unix")
	}
	return entity.Receipt{
		ReceiptID: string(src.ReceiptID),
		TxHash:    string(src.TxHash),
		AmountPLT: *amount,
		TsUnix:    ts,
	}, nil
}

func mapReceiptTypeToParams(src entity.Receipt) (gen.UpsertReceiptParams, error) {
	amount, err := numericFromUint128(&src.AmountPLT)
	if err != nil {
		return gen.UpsertReceiptParams{}, errors.Wrap(err, "failed to convert amount_plt")
	}
	tsUnix := uint128.From64(src.TsUnix)
	ts, err := numericFromUint128(&tsUnix)
	if err != nil {
		return gen.UpsertReceiptParams{}, errors.Wrap(err, "failed to convert ts_unix")
	}
	return gen.UpsertReceiptParams{
		ReceiptID: bytesFromString(src.ReceiptID),
		TxHash:    bytesFromString(src.TxHash),
		AmountPlt: amount,
		TsUnix:    ts,
	}, nil
}

func mapContractInstanceModelToType(src gen.ContractInstance) entity.ContractInstance {
	var createdAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time.UTC()
	}
	return entity.ContractInstance{
		Contract:  src.Contract,
		Version:   src.Version,
		DBVersion: src.DbVersion,
		CreatedAt: createdAt,
	}
}

func mapContractInstanceTypeToParams(src entity.ContractInstance) gen.CreateContractInstanceParams {
	return gen.CreateContractInstanceParams{
		Contract:  src.Contract,
		Version:   src.Version,
		DbVersion: src.DBVersion,
		CreatedAt: pgtype.Timestamptz{Time: src.CreatedAt, Valid: !src.CreatedAt.IsZero()},
	}
}
