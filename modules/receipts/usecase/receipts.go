package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/modules/receipts/contract"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/pkg/serial"
)

// MintReceipt stores receipt through the contract and returns the invocation with its ReceiptEmitted event.
func (u *Usecase) MintReceipt(ctx context.Context, receipt entity.Receipt, invoker string) (*host.Invocation, error) {
	inv, err := u.host.Invoke(ctx, host.Call{
		EntryPoint: contract.EntryPointMintReceipt,
		Parameter:  serial.Encode(receipt),
		Invoker:    invoker,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint receipt")
	}
	return inv, nil
}

// GetReceipt returns the receipt stored under id, or nil if there is none.
func (u *Usecase) GetReceipt(ctx context.Context, id string) (*entity.Receipt, error) {
	inv, err := u.host.Invoke(ctx, host.Call{
		EntryPoint: contract.EntryPointGetReceipt,
		Parameter:  serial.Encode(serial.String(id)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get receipt")
	}
	receipt, err := serial.DecodeOption[entity.Receipt](inv.ReturnValue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse get_receipt return value")
	}
	return receipt, nil
}

// GetReceiptsByIDs reads committed receipts directly from storage.
func (u *Usecase) GetReceiptsByIDs(ctx context.Context, ids []string) (map[string]*entity.Receipt, error) {
	receipts, err := u.receiptsDg.GetReceiptsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get receipts by ids")
	}
	return receipts, nil
}

func (u *Usecase) ListReceipts(ctx context.Context, afterID string, limit int32) ([]*entity.Receipt, error) {
	receipts, err := u.receiptsDg.ListReceipts(ctx, afterID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}
	return receipts, nil
}

func (u *Usecase) CountReceipts(ctx context.Context) (int64, error) {
	count, err := u.receiptsDg.CountReceipts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count receipts")
	}
	return count, nil
}

// RecentReceiptEvents returns up to n ReceiptEmitted events seen by this process, newest first.
func (u *Usecase) RecentReceiptEvents(n int) []eventlog.Event {
	if u.recent == nil {
		return nil
	}
	return u.recent.Recent(n, contract.EventReceiptEmitted)
}

// Invoke runs a raw call against the contract.
func (u *Usecase) Invoke(ctx context.Context, call host.Call) (*host.Invocation, error) {
	inv, err := u.host.Invoke(ctx, call)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return inv, nil
}

type Info struct {
	Contract     string
	Version      string
	EntryPoints  []string
	CreatedAt    int64
	ReceiptCount int64
}

func (u *Usecase) GetInfo(ctx context.Context) (*Info, error) {
	instance, ok := u.host.Instance()
	if !ok {
		return nil, errors.Wrap(errs.NotFound, "contract instance not initialized")
	}
	count, err := u.CountReceipts(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Info{
		Contract:     u.host.Contract(),
		Version:      instance.Version,
		EntryPoints:  u.host.EntryPoints(),
		CreatedAt:    instance.CreatedAt.Unix(),
		ReceiptCount: count,
	}, nil
}
