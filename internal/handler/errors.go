package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/labstack/echo/v4"
)

// statusFor maps service errors to HTTP statuses. Anything unknown is a 500.
func statusFor(err error) int {
	var (
		uploadErr     *domain.UploadError
		parseErr      *domain.ParseError
		validationErr *domain.ValidationError
	)

	switch {
	case errors.Is(err, domain.ErrVerbNotFound):
		return http.StatusNotFound
	case errors.As(err, &uploadErr):
		return http.StatusBadRequest
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateVerb):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *VerbHandler) respondError(c echo.Context, err error) error {
	ctx := c.Request().Context()
	status := statusFor(err)

	body := map[string]interface{}{"error": err.Error()}

	var (
		parseErr      *domain.ParseError
		validationErr *domain.ValidationError
	)
	switch {
	case errors.As(err, &parseErr):
		body["line"] = parseErr.Line
	case errors.As(err, &validationErr):
		if validationErr.Row > 0 {
			body["row"] = validationErr.Row
		}
		body["field"] = validationErr.Field
		body["rule"] = validationErr.Tag
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(ctx, "Request failed",
			"path", c.Path(),
			"error", err,
		)
		body["error"] = "internal server error"
	} else {
		h.logger.Warn(ctx, "Request rejected",
			"path", c.Path(),
			"status", status,
			"error", err,
		)
	}

	return c.JSON(status, body)
}
