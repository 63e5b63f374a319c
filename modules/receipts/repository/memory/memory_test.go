package memory

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receipt(id string, amount uint64) entity.Receipt {
	return entity.Receipt{ReceiptID: id, TxHash: "tx_" + id, AmountPLT: uint128.From64(amount), TsUnix: 1}
}

func TestRepositoryTx(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	tx, err := repo.BeginReceiptsTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpsertReceipt(ctx, receipt("a", 1)))

	t.Run("uncommitted writes are isolated", func(t *testing.T) {
		_, err := repo.GetReceipt(ctx, "a")
		assert.True(t, errors.Is(err, errs.NotFound))

		got, err := tx.GetReceipt(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, receipt("a", 1), *got)

		count, err := tx.CountReceipts(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
	t.Run("nested tx", func(t *testing.T) {
		_, err := tx.BeginReceiptsTx(ctx)
		assert.ErrorIs(t, err, ErrTxAlreadyExists)
	})
	t.Run("commit", func(t *testing.T) {
		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, tx.Rollback(ctx), "rollback after commit is a no-op")

		got, err := repo.GetReceipt(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, receipt("a", 1), *got)
	})
	t.Run("rollback", func(t *testing.T) {
		tx, err := repo.BeginReceiptsTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.UpsertReceipt(ctx, receipt("a", 2)))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetReceipt(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, receipt("a", 1), *got)
	})
}

func TestRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	for _, id := range []string{"c", "a", "b", "d"} {
		require.NoError(t, repo.UpsertReceipt(ctx, receipt(id, 1)))
	}
	require.NoError(t, repo.UpsertReceipt(ctx, receipt("b", 2)))

	page, err := repo.ListReceipts(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a", page[0].ReceiptID)
	assert.Equal(t, "b", page[1].ReceiptID)
	assert.Equal(t, uint128.From64(2), page[1].AmountPLT)

	page, err = repo.ListReceipts(ctx, "b", 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].ReceiptID)
	assert.Equal(t, "d", page[1].ReceiptID)

	count, err := repo.CountReceipts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)

	batch, err := repo.GetReceiptsByIDs(ctx, []string{"a", "zz"})
	require.NoError(t, err)
	assert.Len(t, batch, 1)
	assert.Contains(t, batch, "a")

	_, err = repo.ListReceipts(ctx, "", 0)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestRepositoryInstance(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetContractInstance(ctx)
	assert.True(t, errors.Is(err, errs.NotFound))

	require.NoError(t, repo.CreateContractInstance(ctx, entity.ContractInstance{Contract: "realpay", DBVersion: 1}))
	instance, err := repo.GetContractInstance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "realpay", instance.Contract)

	err = repo.CreateContractInstance(ctx, entity.ContractInstance{Contract: "realpay"})
	assert.True(t, errors.Is(err, errs.ConflictSetting))
}
