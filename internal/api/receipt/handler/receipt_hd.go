package receiptHandler

import (
	"time"

	"FinanceGolang/internal/api/receipt"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"
	"FinanceGolang/pkg/handlerUtil"
	jwtPkg "FinanceGolang/pkg/jwt"
	"FinanceGolang/pkg/log"
	"FinanceGolang/pkg/money"
	"FinanceGolang/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReceiptHandler) GetReceipts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get receipts request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	receipts, err := h.receiptService.GetReceipts(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_receipts")
	}

	items := make([]receipt.ReceiptResponse, 0, len(receipts))
	for _, rec := range receipts {
		items = append(items, makeReceiptResponse(rec, nil))
	}

	response := receipt.ReceiptListResponse{
		Receipts: items,
		Count:    len(items),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ReceiptHandler) GetReceiptByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get receipt by ID request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	rec, recItems, err := h.receiptService.GetReceiptByID(c, ctx.Params("id"), userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_receipt")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeReceiptResponse(rec, recItems))
	}
}

func (h *ReceiptHandler) CreateReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create receipt request")

	var req receipt.CreateReceiptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.receiptService.CreateReceipt(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_receipt")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeReceiptResponse(created, nil))
	}
}

func (h *ReceiptHandler) UpdateReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update receipt request")

	var req receipt.UpdateReceiptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.ID = ctx.Params("id")
	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.receiptService.UpdateReceipt(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_receipt")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Receipt updated successfully",
		})
	}
}

func (h *ReceiptHandler) DeleteReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete receipt request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.receiptService.DeleteReceipt(c, ctx.Params("id"), userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_receipt")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Receipt deleted successfully",
		})
	}
}

func (h *ReceiptHandler) ImportReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing import receipt request")

	var req receipt.ImportReceiptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	imported, err := h.receiptService.ImportReceipt(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "import_receipt")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, imported)
	}
}

func makeReceiptResponse(rec entity.Receipt, recItems []entity.ReceiptItem) receipt.ReceiptResponse {
	response := receipt.ReceiptResponse{
		ID:            rec.ID,
		ExternalUID:   rec.ExternalUID,
		UserID:        rec.UserID,
		AccountID:     rec.AccountID,
		TagID:         rec.TagID,
		Description:   rec.Description,
		IssueDate:     utils.FormatDate(rec.IssueDate),
		Currency:      rec.Currency,
		TotalAmount:   money.ToFloat(rec.TotalAmount),
		ExtraMetadata: rec.ExtraMetadata,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}

	for _, item := range recItems {
		response.Items = append(response.Items, makeItemResponse(item))
	}

	return response
}

func makeItemResponse(item entity.ReceiptItem) receipt.ReceiptItemResponse {
	return receipt.ReceiptItemResponse{
		ID:            item.ID,
		ReceiptID:     item.ReceiptID,
		CategoryID:    item.CategoryID,
		Name:          item.Name,
		Quantity:      money.ToFloat(item.Quantity),
		UnitPrice:     money.ToFloat(item.UnitPrice),
		TotalPrice:    money.ToFloat(item.TotalPrice),
		ExtraMetadata: item.ExtraMetadata,
	}
}
