package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travel-time-gateway/internal/pkg/errors"
)

// ErrorResponse keeps the {"detail": ...} shape existing clients parse.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Detail: appErr.Message,
			Code:   appErr.Code,
		})
	}

	// Unknown error - return 500
	return c.Status(errors.ErrInternalServer.StatusCode).JSON(ErrorResponse{
		Detail: err.Error(),
		Code:   errors.ErrInternalServer.Code,
	})
}
