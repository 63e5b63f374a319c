package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	getReceiptsDefaultLimit = 100
	getReceiptsMaxLimit     = 1000
)

type getReceiptsRequest struct {
	After string `query:"after"`
	Limit int32  `query:"limit"`
}

func (r getReceiptsRequest) Validate() error {
	var errList []error
	if r.Limit < 0 {
		errList = append(errList, errors.New("'limit' must be non-negative"))
	}
	if r.Limit > getReceiptsMaxLimit {
		errList = append(errList, errors.Errorf("'limit' cannot exceed %d", getReceiptsMaxLimit))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getReceiptsResult struct {
	List  []*receipt `json:"list"`
	Total int64      `json:"total"`
	// Next is the 'after' cursor of the following page, empty on the last page.
	Next string `json:"next"`
}

type getReceiptsResponse = HttpResponse[getReceiptsResult]

// GetReceipts pages through the stored receipts ordered by id.
func (h *HttpHandler) GetReceipts(ctx *fiber.Ctx) error {
	var req getReceiptsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if req.Limit == 0 {
		req.Limit = getReceiptsDefaultLimit
	}

	var (
		receipts []*entity.Receipt
		total    int64
	)
	group, groupctx := errgroup.WithContext(ctx.UserContext())
	group.Go(func() error {
		list, err := h.usecase.ListReceipts(groupctx, req.After, req.Limit)
		if err != nil {
			return errors.Wrap(err, "error during ListReceipts")
		}
		receipts = list
		return nil
	})
	group.Go(func() error {
		count, err := h.usecase.CountReceipts(groupctx)
		if err != nil {
			return errors.Wrap(err, "error during CountReceipts")
		}
		total = count
		return nil
	})
	if err := group.Wait(); err != nil {
		return errors.WithStack(err)
	}

	var next string
	if len(receipts) == int(req.Limit) {
		next = receipts[len(receipts)-1].ReceiptID
	}

	resp := getReceiptsResponse{
		Result: &getReceiptsResult{
			List:  lo.Map(receipts, func(r *entity.Receipt, _ int) *receipt { return h.mapReceipt(r) }),
			Total: total,
			Next:  next,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
