package http

import (
	"errors"
	"log/slog"
	"net/http"

	"masar-mortgage/internal/domain/mortgage"
	"masar-mortgage/internal/usecase/assistant"
	"masar-mortgage/internal/usecase/calculator"
	ucSession "masar-mortgage/internal/usecase/session"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, mortgage.ErrInvalidInput),
		errors.Is(err, calculator.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, mortgage.ErrUnknownBank):
		return http.StatusNotFound
	case errors.Is(err, mortgage.ErrStepInvalid),
		errors.Is(err, mortgage.ErrStepLocked),
		errors.Is(err, mortgage.ErrUnknownStep),
		errors.Is(err, mortgage.ErrNoPrevious),
		errors.Is(err, ucSession.ErrMissingName),
		errors.Is(err, assistant.ErrEmptyQuestion),
		errors.Is(err, assistant.ErrQuestionTooLong):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ucSession.ErrInvalidCredentials),
		errors.Is(err, ucSession.ErrInvalidToken),
		errors.Is(err, ucSession.ErrSessionExpired):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func writeError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "err", err)
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

// bindAndValidate writes the 400/422 response itself and reports false
// when the request cannot proceed.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
