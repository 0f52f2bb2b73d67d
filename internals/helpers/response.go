package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// Envelope is the uniform response shape every handler returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   *ErrorBody  `json:"error"`
}

// Success response, default 200
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// Success response with custom code (201 for created, etc.)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error response without detail payload
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Envelope{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// Error response carrying per-field details
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(Envelope{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Validate is the shared validator instance used by all handlers.
var Validate = validator.New()

// ValidationError maps validator.v10 failures to the envelope, one entry per field.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}
