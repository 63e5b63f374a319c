package httphandler

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestcontext"
	"github.com/gaze-network/realpay-receipts/pkg/serial"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type invokeRequest struct {
	EntryPoint string `params:"entrypoint"`
	Parameter  string `json:"parameter"` // hex
}

func (r invokeRequest) Validate() ([]byte, error) {
	var errList []error
	if r.EntryPoint == "" {
		errList = append(errList, errors.New("'entrypoint' is required"))
	}
	parameter, err := hex.DecodeString(strings.TrimPrefix(r.Parameter, "0x"))
	if err != nil {
		errList = append(errList, errors.New("'parameter' must be hex encoded"))
	}
	return parameter, errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type invokeResult struct {
	EntryPoint     string  `json:"entryPoint"`
	InvocationHash string  `json:"invocationHash"`
	Sequence       uint64  `json:"sequence"`
	ReturnValue    string  `json:"returnValue"` // hex
	Events         []event `json:"events"`
	Timestamp      int64   `json:"timestamp"` // unix timestamp
}

type invokeResponse = HttpResponse[invokeResult]

func (h *HttpHandler) Invoke(ctx *fiber.Ctx) (err error) {
	var req invokeRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errors.WithStack(err)
		}
	}
	parameter, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	inv, err := h.usecase.Invoke(ctx.UserContext(), host.Call{
		EntryPoint: req.EntryPoint,
		Parameter:  parameter,
		Invoker:    requestcontext.GetClientIP(ctx.UserContext()),
	})
	if err != nil {
		switch {
		case errors.Is(err, serial.ErrMalformed):
			return errs.WithPublicMessage(err, "malformed parameter")
		case errors.Is(err, errs.InvalidArgument):
			return errs.WithPublicMessage(err, "invalid parameter")
		case errors.Is(err, errs.NotFound):
			return errs.WithPublicMessage(err, "")
		}
		return errors.Wrap(err, "error during Invoke")
	}

	resp := invokeResponse{
		Result: &invokeResult{
			EntryPoint:     inv.EntryPoint,
			InvocationHash: inv.Hash.String(),
			Sequence:       inv.Sequence,
			ReturnValue:    hex.EncodeToString(inv.ReturnValue),
			Events:         mapEvents(inv.Events),
			Timestamp:      inv.Timestamp.Unix(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func mapEvents(events []eventlog.Event) []event {
	return lo.Map(events, func(e eventlog.Event, _ int) event {
		return event{
			Index: e.Index,
			Tag:   e.Tag,
			Data:  hex.EncodeToString(e.Data),
			Event: e.Payload,
		}
	})
}
