package httphandler

import (
	"time"

	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/usecase"
	"github.com/gaze-network/realpay-receipts/pkg/decimals"
)

type HttpHandler struct {
	usecase       *usecase.Usecase
	tokenDecimals uint8
	now           func() time.Time
}

func New(usecase *usecase.Usecase, tokenDecimals uint8) *HttpHandler {
	return &HttpHandler{
		usecase:       usecase,
		tokenDecimals: tokenDecimals,
		now:           time.Now,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

type receipt struct {
	ReceiptID string `json:"receiptId"`
	TxHash    string `json:"txHash"`
	AmountPlt string `json:"amountPlt"` // raw base units
	Amount    string `json:"amount"`    // formatted with token decimals
	Decimals  uint8  `json:"decimals"`
	TsUnix    uint64 `json:"tsUnix"`
}

func (h *HttpHandler) mapReceipt(r *entity.Receipt) *receipt {
	if r == nil {
		return nil
	}
	return &receipt{
		ReceiptID: r.ReceiptID,
		TxHash:    r.TxHash,
		AmountPlt: r.AmountPLT.String(),
		Amount:    decimals.FormatAmount(r.AmountPLT, h.tokenDecimals),
		Decimals:  h.tokenDecimals,
		TsUnix:    r.TsUnix,
	}
}
