package usecase

import (
	"context"

	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
)

// Host is the part of the contract host the usecase drives.
type Host interface {
	Invoke(ctx context.Context, call host.Call) (*host.Invocation, error)
	Instance() (host.Instance, bool)
	Contract() string
	EntryPoints() []string
}

type Usecase struct {
	receiptsDg datagateway.ReceiptsReaderDataGateway
	host       Host
	recent     *eventlog.MemorySink
}

func New(receiptsDg datagateway.ReceiptsReaderDataGateway, host Host, recent *eventlog.MemorySink) *Usecase {
	return &Usecase{
		receiptsDg: receiptsDg,
		host:       host,
		recent:     recent,
	}
}
