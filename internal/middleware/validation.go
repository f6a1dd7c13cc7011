package middleware

import (
	"virtual-interviewer/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalSessionID = "validated_session_id"
	LocalResumeID  = "validated_resume_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam checks the :id path parameter and stores it under localKey.
func (vm *ValidationMiddleware) ValidateIDParam(field, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateID(field, id); len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

// ValidateSessionIDParam validates /interview/sessions/:id.
func (vm *ValidationMiddleware) ValidateSessionIDParam() fiber.Handler {
	return vm.ValidateIDParam("session_id", LocalSessionID)
}

// ValidateResumeIDParam validates /resume/:id.
func (vm *ValidationMiddleware) ValidateResumeIDParam() fiber.Handler {
	return vm.ValidateIDParam("resume_id", LocalResumeID)
}
