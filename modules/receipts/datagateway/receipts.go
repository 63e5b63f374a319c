package datagateway

import (
	"context"

	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
)

type ReceiptsDataGateway interface {
	ReceiptsReaderDataGateway
	ReceiptsWriterDataGateway
	ContractInstanceDataGateway

	// BeginReceiptsTx returns a ReceiptsDataGateway whose writes are visible only after Commit.
	BeginReceiptsTx(ctx context.Context) (ReceiptsDataGatewayWithTx, error)
}

type ReceiptsDataGatewayWithTx interface {
	ReceiptsDataGateway
	Tx
}

type ReceiptsReaderDataGateway interface {
	// GetReceipt returns errs.NotFound if no receipt is stored under id.
	GetReceipt(ctx context.Context, id string) (*entity.Receipt, error)
	// GetReceiptsByIDs returns the stored receipts keyed by id. Missing ids are absent from the map.
	GetReceiptsByIDs(ctx context.Context, ids []string) (map[string]*entity.Receipt, error)
	// ListReceipts returns up to limit receipts with id greater than afterID, ordered by id.
	ListReceipts(ctx context.Context, afterID string, limit int32) ([]*entity.Receipt, error)
	CountReceipts(ctx context.Context) (int64, error)
}

type ReceiptsWriterDataGateway interface {
	// UpsertReceipt stores receipt, replacing any receipt with the same id.
	UpsertReceipt(ctx context.Context, receipt entity.Receipt) error
}

type ContractInstanceDataGateway interface {
	// GetContractInstance returns errs.NotFound if the instance hasn't been created.
	GetContractInstance(ctx context.Context) (*entity.ContractInstance, error)
	CreateContractInstance(ctx context.Context, instance entity.ContractInstance) error
}
