package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getReceiptsBatchRequest struct {
	Ids []string `json:"ids"`
}

const getReceiptsBatchMaxIds = 100

func (r getReceiptsBatchRequest) Validate() error {
	var errList []error
	if len(r.Ids) == 0 {
		errList = append(errList, errors.New("at least one id is required"))
	}
	if len(r.Ids) > getReceiptsBatchMaxIds {
		errList = append(errList, errors.Errorf("cannot exceed %d ids", getReceiptsBatchMaxIds))
	}
	for i, id := range r.Ids {
		if id == "" {
			errList = append(errList, errors.Errorf("ids[%d]: id is required", i))
		}
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getReceiptsBatchResult struct {
	List []*receipt `json:"list"` // null for ids with no receipt
}

type getReceiptsBatchResponse = HttpResponse[getReceiptsBatchResult]

func (h *HttpHandler) GetReceiptsBatch(ctx *fiber.Ctx) (err error) {
	var req getReceiptsBatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	found, err := h.usecase.GetReceiptsByIDs(ctx.UserContext(), req.Ids)
	if err != nil {
		return errors.Wrap(err, "error during GetReceiptsByIDs")
	}
	results := lo.Map(req.Ids, func(id string, _ int) *receipt {
		return h.mapReceipt(found[id])
	})

	resp := getReceiptsBatchResponse{
		Result: &getReceiptsBatchResult{
			List: results,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
