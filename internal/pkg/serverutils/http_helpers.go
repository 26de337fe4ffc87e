package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"tg-notegraph-be/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and reports the offending
// fields as an InvalidArgument error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
		}
		return apperror.InvalidArgument("validation failed: %s", strings.Join(fields, ", "))
	}
	return apperror.InvalidArgument("validation failed: %v", err)
}

func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	}
}

// ErrorHandlerMiddleware translates the error taxonomy into HTTP statuses
// at the single exit point of the request pipeline.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
			})
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrInvalidArgument):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperror.ErrDuplicateIdentity), errors.Is(err, apperror.ErrDuplicateEdge):
			status = fiber.StatusConflict
		case errors.Is(err, apperror.ErrInvalidState):
			status = fiber.StatusUnprocessableEntity
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}
