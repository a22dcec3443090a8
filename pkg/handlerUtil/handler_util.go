package handlerUtil

import (
	"errors"

	"FinanceGolang/pkg/log"
	"FinanceGolang/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusConflict:
		return "conflict"
	case fiber.StatusRequestTimeout:
		return "request_timeout"
	case fiber.StatusTooManyRequests:
		return "too_many_requests"
	default:
		return "internal_error"
	}
}

func envelope(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"data": nil,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// Handle maps a service error to the response envelope. Domain errors are
// declared as *response.Error values carrying their status code; everything
// else is an unexpected internal error.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return envelope(c, respErr.Code, codeForStatus(respErr.Code), err.Error())
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"pq_code":    string(pqErr.Code),
			"path":       path,
			"operation":  operation,
		}).Warn("Database integrity error")
		return envelope(c, fiber.StatusBadRequest, "bad_request", "database integrity error")
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return envelope(c, fiber.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return envelope(c, fiber.StatusBadRequest, "validation_error", "Validation failed: "+err.Error())
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return envelope(c, fiber.StatusRequestTimeout, "request_timeout", utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return envelope(c, fiber.StatusUnauthorized, "unauthorized", message)
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"data":  data,
		"error": nil,
	})
}
