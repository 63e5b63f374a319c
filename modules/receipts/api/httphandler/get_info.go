package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getInfoResult struct {
	Contract     string   `json:"contract"`
	Version      string   `json:"version"`
	EntryPoints  []string `json:"entryPoints"`
	CreatedAt    int64    `json:"createdAt"` // unix timestamp
	ReceiptCount int64    `json:"receiptCount"`
	Decimals     uint8    `json:"decimals"`
}

type getInfoResponse = HttpResponse[getInfoResult]

func (h *HttpHandler) GetInfo(ctx *fiber.Ctx) (err error) {
	info, err := h.usecase.GetInfo(ctx.UserContext())
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicErrorOf(errs.NotFound, "contract instance not initialized")
		}
		return errors.Wrap(err, "error during GetInfo")
	}

	resp := getInfoResponse{
		Result: &getInfoResult{
			Contract:     info.Contract,
			Version:      info.Version,
			EntryPoints:  info.EntryPoints,
			CreatedAt:    info.CreatedAt,
			ReceiptCount: info.ReceiptCount,
			Decimals:     h.tokenDecimals,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
