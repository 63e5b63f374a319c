package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/pkg/decimals"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestcontext"
	"github.com/gaze-network/uint128"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type mintReceiptRequest struct {
	ReceiptID string  `json:"receiptId"`
	TxHash    string  `json:"txHash"`
	AmountPlt string  `json:"amountPlt"`
	Amount    string  `json:"amount"`
	TsUnix    *uint64 `json:"tsUnix"`
}

// Validate checks the request and resolves the raw amount.
func (r mintReceiptRequest) Validate(tokenDecimals uint8) (uint128.Uint128, error) {
	var errList []error
	var amount uint128.Uint128
	switch {
	case r.AmountPlt != "" && r.Amount != "":
		errList = append(errList, errors.New("only one of 'amountPlt' or 'amount' is allowed"))
	case r.AmountPlt != "":
		v, err := uint128.FromString(r.AmountPlt)
		if err != nil {
			errList = append(errList, errors.Errorf("'amountPlt' %q is not a valid u128", r.AmountPlt))
		}
		amount = v
	case r.Amount != "":
		v, err := decimals.ParseAmount(r.Amount, tokenDecimals)
		if err != nil {
			errList = append(errList, errors.Errorf("'amount' %q is not a valid amount with %d decimals", r.Amount, tokenDecimals))
		}
		amount = v
	default:
		errList = append(errList, errors.New("'amountPlt' or 'amount' is required"))
	}
	return amount, errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type event struct {
	Index int    `json:"index"`
	Tag   string `json:"tag"`
	Data  string `json:"data"` // hex
	Event any    `json:"event,omitempty"`
}

type mintReceiptResult struct {
	Receipt        *receipt `json:"receipt"`
	InvocationHash string   `json:"invocationHash"`
	Sequence       uint64   `json:"sequence"`
	Events         []event  `json:"events"`
}

type mintReceiptResponse = HttpResponse[mintReceiptResult]

func (h *HttpHandler) MintReceipt(ctx *fiber.Ctx) (err error) {
	var req mintReceiptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	amount, err := req.Validate(h.tokenDecimals)
	if err != nil {
		return errors.WithStack(err)
	}

	r := entity.Receipt{
		ReceiptID: req.ReceiptID,
		TxHash:    req.TxHash,
		AmountPLT: amount,
	}
	if r.ReceiptID == "" {
		r.ReceiptID = uuid.NewString()
	}
	if r.TxHash == "" {
		r.TxHash = "tx_" + uuid.NewString()
	}
	if req.TsUnix != nil {
		r.TsUnix = *req.TsUnix
	} else {
		r.TsUnix = uint64(h.now().Unix())
	}

	inv, err := h.usecase.MintReceipt(ctx.UserContext(), r, requestcontext.GetClientIP(ctx.UserContext()))
	if err != nil {
		if errors.Is(err, errs.InvalidArgument) {
			return errs.NewPublicError("receipt is too large")
		}
		return errors.Wrap(err, "error during MintReceipt")
	}

	resp := mintReceiptResponse{
		Result: &mintReceiptResult{
			Receipt:        h.mapReceipt(&r),
			InvocationHash: inv.Hash.String(),
			Sequence:       inv.Sequence,
			Events:         mapEvents(inv.Events),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
