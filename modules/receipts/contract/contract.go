package contract

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/serial"
)

const (
	// Name is the name the receipt registry is instantiated under.
	Name = "realpay"

	EntryPointMintReceipt = "mint_receipt"
	EntryPointGetReceipt  = "get_receipt"

	EventReceiptEmitted = "ReceiptEmitted"
)

var _ host.Contract[datagateway.ReceiptsDataGateway] = (*Contract)(nil)

// Contract is the receipt registry: a map from receipt id to the latest minted receipt.
type Contract struct{}

func New() *Contract {
	return &Contract{}
}

func (*Contract) Name() string {
	return Name
}

// Init starts the instance with an empty registry.
func (*Contract) Init(ctx context.Context, ictx *host.InitContext, _ datagateway.ReceiptsDataGateway) error {
	logger.InfoContext(ctx, "Initialized receipt registry", slogx.String("version", ictx.Instance.Version))
	return nil
}

func (c *Contract) EntryPoints() []host.EntryPoint[datagateway.ReceiptsDataGateway] {
	return []host.EntryPoint[datagateway.ReceiptsDataGateway]{
		{Name: EntryPointMintReceipt, Mutable: true, Handler: c.mintReceipt},
		{Name: EntryPointGetReceipt, Handler: c.getReceipt},
	}
}

func (*Contract) mintReceipt(ctx context.Context, rctx *host.ReceiveContext, state datagateway.ReceiptsDataGateway) ([]byte, error) {
	var receipt entity.Receipt
	if err := receipt.Deserial(rctx.Parameter()); err != nil {
		return nil, errors.Wrap(err, "failed to parse receipt")
	}

	if err := state.UpsertReceipt(ctx, receipt); err != nil {
		return nil, errors.Wrap(err, "failed to store receipt")
	}

	if err := rctx.EmitEvent(EventReceiptEmitted, entity.ReceiptEmitted{
		ReceiptID: receipt.ReceiptID,
		TxHash:    receipt.TxHash,
		TsUnix:    receipt.TsUnix,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to emit event")
	}
	return nil, nil
}

func (*Contract) getReceipt(ctx context.Context, rctx *host.ReceiveContext, state datagateway.ReceiptsDataGateway) ([]byte, error) {
	var id serial.String
	if err := id.Deserial(rctx.Parameter()); err != nil {
		return nil, errors.Wrap(err, "failed to parse receipt id")
	}

	receipt, err := state.GetReceipt(ctx, string(id))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return serial.EncodeOption[entity.Receipt](nil), nil
		}
		return nil, errors.Wrap(err, "failed to get receipt")
	}
	return serial.EncodeOption(receipt), nil
}
