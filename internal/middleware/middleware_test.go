package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", domain.NewInvalidInputError("bad", nil), http.StatusBadRequest, "INVALID_INPUT"},
		{"not found", domain.NewNotFoundError("missing"), http.StatusNotFound, "NOT_FOUND"},
		{"resource unavailable", domain.NewResourceUnavailableError("model file missing", nil), http.StatusServiceUnavailable, "RESOURCE_UNAVAILABLE"},
		{"upstream failure", domain.NewUpstreamFailureError("llm failed", errors.New("500")), http.StatusBadGateway, "UPSTREAM_FAILURE"},
		{"internal", domain.NewInternalError("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber", fiber.NewError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge, "HTTP_ERROR"},
		{"unknown", errors.New("raw"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newErrorApp(tt.err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestErrorHandler_Details(t *testing.T) {
	err := domain.NewInvalidInputError("file path is outside the upload directory", nil).WithContext("file_path", "../x")
	resp, testErr := newErrorApp(err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, testErr)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "../x", body.Details["file_path"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	err := domain.ValidationErrors{domain.NewMissingFieldError("role_title")}
	resp, testErr := newErrorApp(err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, testErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "role_title", body.Errors[0].Field)
}

func TestValidateSessionIDParam(t *testing.T) {
	vm := NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/sessions/:id", vm.ValidateSessionIDParam(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalSessionID).(string))
	})

	id := util.NewULID()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/sessions/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
