package receiptHandler

import (
	receiptService "FinanceGolang/internal/api/receipt/service"
	"FinanceGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReceiptHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	receiptService receiptService.IReceiptService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	receiptService receiptService.IReceiptService,
) *ReceiptHandler {
	return &ReceiptHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		receiptService: receiptService,
	}
}

func (h *ReceiptHandler) Start(srv fiber.Router) {
	receipts := srv.Group("/receipts")

	receipts.Get("/", h.middleware.NewTokenMiddleware, h.GetReceipts)
	receipts.Post("/", h.middleware.NewTokenMiddleware, h.CreateReceipt)
	receipts.Post("/import-ekasa", h.middleware.NewTokenMiddleware, h.ImportReceipt)
	receipts.Get("/:id", h.middleware.NewTokenMiddleware, h.GetReceiptByID)
	receipts.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateReceipt)
	receipts.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteReceipt)

	receipts.Post("/:id/items", h.middleware.NewTokenMiddleware, h.CreateItem)
	receipts.Put("/:id/items/:itemId", h.middleware.NewTokenMiddleware, h.UpdateItem)
	receipts.Delete("/:id/items/:itemId", h.middleware.NewTokenMiddleware, h.DeleteItem)
}
