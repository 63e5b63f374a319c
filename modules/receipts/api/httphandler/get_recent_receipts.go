package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gofiber/fiber/v2"
)

type getRecentReceiptsRequest struct {
	N int `query:"n"`
}

const (
	getRecentReceiptsDefaultN = 10
	getRecentReceiptsMaxN     = 100
)

func (r getRecentReceiptsRequest) Validate() error {
	var errList []error
	if r.N < 0 {
		errList = append(errList, errors.New("'n' must be positive"))
	}
	if r.N > getRecentReceiptsMaxN {
		errList = append(errList, errors.Errorf("'n' cannot exceed %d", getRecentReceiptsMaxN))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type recentReceipt struct {
	ReceiptID      string `json:"receiptId"`
	TxHash         string `json:"txHash"`
	TsUnix         uint64 `json:"tsUnix"`
	InvocationHash string `json:"invocationHash"`
	Sequence       uint64 `json:"sequence"`
	EmittedAt      int64  `json:"emittedAt"` // unix timestamp
}

type getRecentReceiptsResult struct {
	List []recentReceipt `json:"list"`
}

type getRecentReceiptsResponse = HttpResponse[getRecentReceiptsResult]

func (h *HttpHandler) GetRecentReceipts(ctx *fiber.Ctx) (err error) {
	var req getRecentReceiptsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if req.N == 0 {
		req.N = getRecentReceiptsDefaultN
	}

	events := h.usecase.RecentReceiptEvents(req.N)
	list := make([]recentReceipt, 0, len(events))
	for _, e := range events {
		var emitted entity.ReceiptEmitted
		switch p := e.Payload.(type) {
		case entity.ReceiptEmitted:
			emitted = p
		case *entity.ReceiptEmitted:
			emitted = *p
		default:
			continue
		}
		list = append(list, recentReceipt{
			ReceiptID:      emitted.ReceiptID,
			TxHash:         emitted.TxHash,
			TsUnix:         emitted.TsUnix,
			InvocationHash: e.InvocationHash.String(),
			Sequence:       e.Sequence,
			EmittedAt:      e.Timestamp.Unix(),
		})
	}

	resp := getRecentReceiptsResponse{
		Result: &getRecentReceiptsResult{
			List: list,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
