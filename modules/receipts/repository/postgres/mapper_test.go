package postgres

import (
	"math"
	"testing"
	"time"

	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/repository/postgres/gen"
	"github.com/gaze-network/uint128"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericUint128RoundTrip(t *testing.T) {
	for _, v := range []uint128.Uint128{uint128.Zero, uint128.From64(1), uint128.From64(math.MaxUint64), uint128.Max} {
		t.Run(v.String(), func(t *testing.T) {
			n, err := numericFromUint128(&v)
			require.NoError(t, err)
			assert.True(t, n.Valid)

			got, err := uint128FromNumeric(n)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, v, *got)
		})
	}
}

func TestUint128FromNumericNull(t *testing.T) {
	got, err := uint128FromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUint64FromNumericOverflow(t *testing.T) {
	big := uint128.From64(math.MaxUint64).Add64(1)
	n, err := numericFromUint128(&big)
	require.NoError(t, err)

	_, err = uint64FromNumeric(n)
	assert.ErrorIs(t, err, errs.OverflowUint64)
}

func TestMapReceipt(t *testing.T) {
	receipt := entity.Receipt{
		ReceiptID: "r-1",
		TxHash:    "0xabc",
		AmountPLT: uint128.New(5, 1),
		TsUnix:    math.MaxUint64,
	}
	params, err := mapReceiptTypeToParams(receipt)
	require.NoError(t, err)
	assert.Equal(t, []byte("r-1"), params.ReceiptID)
	assert.Equal(t, []byte("0xabc"), params.TxHash)

	got, err := mapReceiptModelToType(gen.Receipt{
		ReceiptID: params.ReceiptID,
		TxHash:    params.TxHash,
		AmountPlt: params.AmountPlt,
		TsUnix:    params.TsUnix,
	})
	require.NoError(t, err)
	assert.Equal(t, receipt, got)
}

func TestMapReceiptIdentifiers(t *testing.T) {
	testCases := []struct {
		name   string
		id     string
		txHash string
	}{
		{name: "nul", id: "r\x001", txHash: "\x00"},
		{name: "empty", id: "", txHash: ""},
		{name: "multibyte", id: "räksmörgås", txHash: "0x😀"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			receipt := entity.Receipt{ReceiptID: tc.id, TxHash: tc.txHash, AmountPLT: uint128.From64(7), TsUnix: 1}
			params, err := mapReceiptTypeToParams(receipt)
			require.NoError(t, err)
			require.NotNil(t, params.ReceiptID, "nil would be sent as NULL")
			require.NotNil(t, params.TxHash, "nil would be sent as NULL")
			assert.Equal(t, []byte(tc.id), params.ReceiptID)

			got, err := mapReceiptModelToType(gen.Receipt{
				ReceiptID: params.ReceiptID,
				TxHash:    params.TxHash,
				AmountPlt: params.AmountPlt,
				TsUnix:    params.TsUnix,
			})
			require.NoError(t, err)
			assert.Equal(t, receipt, got)
		})
	}
}

func TestBytesFromString(t *testing.T) {
	assert.NotNil(t, bytesFromString(""))
	assert.Empty(t, bytesFromString(""))
	assert.Equal(t, []byte{'a', 0, 'b'}, bytesFromString("a\x00b"))
}

func TestMapReceiptNullAmount(t *testing.T) {
	_, err := mapReceiptModelToType(gen.Receipt{ReceiptID: []byte("r-1")})
	assert.ErrorIs(t, err, errs.SomethingWentWrong)
}

func TestMapContractInstance(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	instance := entity.ContractInstance{
		Contract:  "realpay",
		Version:   "v0.1.0",
		DBVersion: 1,
		CreatedAt: createdAt,
	}
	params := mapContractInstanceTypeToParams(instance)
	assert.True(t, params.CreatedAt.Valid)

	got := mapContractInstanceModelToType(gen.ContractInstance{
		ID:        1,
		Contract:  params.Contract,
		Version:   params.Version,
		DbVersion: params.DbVersion,
		CreatedAt: params.CreatedAt,
	})
	assert.Equal(t, instance, got)
}
