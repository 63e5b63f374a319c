package httphandler

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getReceiptRequest struct {
	Id string `params:"id"`
}

func (r *getReceiptRequest) Validate() error {
	var errList []error
	id, err := url.PathUnescape(r.Id)
	if err != nil {
		return errors.WithStack(err)
	}
	r.Id = id
	if r.Id == "" {
		errList = append(errList, errors.New("'id' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getReceiptResponse = HttpResponse[receipt]

func (h *HttpHandler) GetReceipt(ctx *fiber.Ctx) (err error) {
	var req getReceiptRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	r, err := h.usecase.GetReceipt(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetReceipt")
	}
	if r == nil {
		return errs.NewPublicErrorOf(errs.NotFound, "receipt not found")
	}

	resp := getReceiptResponse{
		Result: h.mapReceipt(r),
	}
	return errors.WithStack(ctx.JSON(resp))
}
