package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/receipts/v1")

	r.Get("/info", h.GetInfo)
	r.Get("/receipts", h.GetReceipts)
	r.Post("/receipts", h.MintReceipt)
	r.Post("/receipts/batch", h.GetReceiptsBatch)
	r.Get("/receipts/recent", h.GetRecentReceipts)
	r.Get("/receipts/:id", h.GetReceipt)
	r.Post("/invoke/:entrypoint", h.Invoke)
	return nil
}
