package contract

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway/mocks"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/repository/memory"
	"github.com/gaze-network/realpay-receipts/pkg/serial"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDBVersion = 1

type testRegistry struct {
	host *host.Host[datagateway.ReceiptsDataGateway]
	repo *memory.Repository
	sink *eventlog.MemorySink
}

func newTestRegistry(t *testing.T) *testRegistry {
	t.Helper()
	repo := memory.NewRepository()
	sink := eventlog.NewMemorySink(16)
	h := host.New[datagateway.ReceiptsDataGateway](New(), NewStateStore(repo, testDBVersion), sink, host.WithVersion("test"))
	require.NoError(t, h.Init(context.Background()))
	return &testRegistry{host: h, repo: repo, sink: sink}
}

func (r *testRegistry) mint(t *testing.T, receipt entity.Receipt) *host.Invocation {
	t.Helper()
	inv, err := r.host.Invoke(context.Background(), host.Call{
		EntryPoint: EntryPointMintReceipt,
		Parameter:  serial.Encode(receipt),
	})
	require.NoError(t, err)
	return inv
}

func (r *testRegistry) get(t *testing.T, id string) *entity.Receipt {
	t.Helper()
	inv, err := r.host.Invoke(context.Background(), host.Call{
		EntryPoint: EntryPointGetReceipt,
		Parameter:  serial.Encode(serial.String(id)),
	})
	require.NoError(t, err)
	receipt, err := serial.DecodeOption[entity.Receipt](inv.ReturnValue)
	require.NoError(t, err)
	return receipt
}

var r1 = entity.Receipt{
	ReceiptID: "r1",
	TxHash:    "0xabc",
	AmountPLT: uint128.From64(1000),
	TsUnix:    1700000000,
}

func TestMintThenGet(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	reg.mint(t, r1)

	got := reg.get(t, "r1")
	require.NotNil(t, got)
	assert.Equal(t, r1, *got)
	assert.Nil(t, reg.get(t, "r2"))
}

func TestGetNeverMinted(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	assert.Nil(t, reg.get(t, "missing"))
	assert.Nil(t, reg.get(t, ""))
}

func TestMintThenGetUnusualIdentifiers(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	for _, id := range []string{"", "a\x00b", "a+b", "a/b", "räksmörgås"} {
		receipt := entity.Receipt{ReceiptID: id, TxHash: "\x00tx", AmountPLT: uint128.From64(1), TsUnix: 1}
		reg.mint(t, receipt)

		got := reg.get(t, id)
		require.NotNil(t, got, "%q", id)
		assert.Equal(t, receipt, *got)
	}
}

func TestMintOverwrites(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	second := entity.Receipt{
		ReceiptID: r1.ReceiptID,
		TxHash:    "0xdef",
		AmountPLT: uint128.Max,
		TsUnix:    1700000500,
	}
	reg.mint(t, r1)
	reg.mint(t, second)

	got := reg.get(t, r1.ReceiptID)
	require.NotNil(t, got)
	assert.Equal(t, second, *got)

	count, err := reg.repo.CountReceipts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMintEmitsOneEvent(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	inv := reg.mint(t, r1)
	require.Len(t, inv.Events, 1)

	event := inv.Events[0]
	assert.Equal(t, EventReceiptEmitted, event.Tag)
	assert.Equal(t, Name, event.Contract)
	assert.Equal(t, inv.Hash, event.InvocationHash)
	assert.Equal(t, entity.ReceiptEmitted{ReceiptID: "r1", TxHash: "0xabc", TsUnix: 1700000000}, event.Payload)

	var decoded entity.ReceiptEmitted
	require.NoError(t, serial.Decode(event.Data, &decoded))
	assert.Equal(t, "r1", decoded.ReceiptID)

	assert.Equal(t, 1, reg.sink.Len())
}

func TestGetEmitsNoEvent(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	reg.mint(t, r1)
	reg.get(t, "r1")
	assert.Equal(t, 1, reg.sink.Len())
}

func TestMalformedParameter(t *testing.T) {
	t.Parallel()

	valid := serial.Encode(r1)
	testCases := []struct {
		name       string
		entryPoint string
		parameter  []byte
	}{
		{name: "mint empty", entryPoint: EntryPointMintReceipt, parameter: nil},
		{name: "mint truncated amount", entryPoint: EntryPointMintReceipt, parameter: valid[:len(valid)-10]},
		{name: "mint invalid utf8", entryPoint: EntryPointMintReceipt, parameter: []byte{2, 0, 0, 0, 0xff, 0xfe}},
		{name: "get empty", entryPoint: EntryPointGetReceipt, parameter: nil},
		{name: "get short length", entryPoint: EntryPointGetReceipt, parameter: []byte{5, 0, 0, 0, 'r'}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reg := newTestRegistry(t)
			reg.mint(t, r1)

			_, err := reg.host.Invoke(context.Background(), host.Call{EntryPoint: tc.entryPoint, Parameter: tc.parameter})
			require.Error(t, err)
			assert.ErrorIs(t, err, serial.ErrMalformed)

			got := reg.get(t, "r1")
			require.NotNil(t, got)
			assert.Equal(t, r1, *got)
			assert.Equal(t, 1, reg.sink.Len())
		})
	}
}

func TestMintIgnoresTrailingBytes(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)

	_, err := reg.host.Invoke(context.Background(), host.Call{
		EntryPoint: EntryPointMintReceipt,
		Parameter:  append(serial.Encode(r1), 0xde, 0xad),
	})
	require.NoError(t, err)
	assert.NotNil(t, reg.get(t, "r1"))
}

func TestMintStoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dg := mocks.NewReceiptsDataGatewayWithTx(t)
	dgTx := mocks.NewReceiptsDataGatewayWithTx(t)
	dg.EXPECT().GetContractInstance(mock.Anything).Return(&entity.ContractInstance{
		Contract:  Name,
		Version:   "test",
		DBVersion: testDBVersion,
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}, nil)
	dg.EXPECT().BeginReceiptsTx(mock.Anything).Return(dgTx, nil)
	dgTx.EXPECT().UpsertReceipt(mock.Anything, r1).Return(errors.New("connection reset"))
	dgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	sink := eventlog.NewMemorySink(4)
	h := host.New[datagateway.ReceiptsDataGateway](New(), NewStateStore(dg, testDBVersion), sink)
	require.NoError(t, h.Init(ctx))

	_, err := h.Invoke(ctx, host.Call{EntryPoint: EntryPointMintReceipt, Parameter: serial.Encode(r1)})
	require.Error(t, err)
	assert.Zero(t, sink.Len())
	dgTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestStateStoreDBVersionMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := memory.NewRepository()
	require.NoError(t, NewStateStore(repo, 1).CreateInstance(ctx, host.Instance{Contract: Name, Version: "old"}))

	_, err := NewStateStore(repo, 2).Instance(ctx)
	assert.ErrorIs(t, err, errs.ConflictSetting)

	instance, err := NewStateStore(repo, 1).Instance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", instance.Version)
}

func TestStateStoreNotInitialized(t *testing.T) {
	t.Parallel()

	_, err := NewStateStore(memory.NewRepository(), 1).Instance(context.Background())
	assert.ErrorIs(t, err, errs.NotFound)
}
