package api

import (
	"github.com/gaze-network/realpay-receipts/modules/receipts/api/httphandler"
	"github.com/gaze-network/realpay-receipts/modules/receipts/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase, tokenDecimals uint8) *httphandler.HttpHandler {
	return httphandler.New(usecase, tokenDecimals)
}
