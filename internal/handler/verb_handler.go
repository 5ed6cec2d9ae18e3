package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/internal/middleware"
	"github.com/grachmannico95/verbs-service/internal/service"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"github.com/labstack/echo/v4"
)

type VerbHandler struct {
	service        service.VerbService
	logger         *logger.Logger
	maxUploadBytes int64
}

func NewVerbHandler(service service.VerbService, log *logger.Logger, maxUploadBytes int64) *VerbHandler {
	return &VerbHandler{
		service:        service,
		logger:         log,
		maxUploadBytes: maxUploadBytes,
	}
}

type deleteByIDsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

func (h *VerbHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	// Unparsable values fall back to the service defaults.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.service.List(ctx, page, perPage)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *VerbHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	verb, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, verb)
}

func (h *VerbHandler) Create(c echo.Context) error {
	var input domain.VerbInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return h.respondError(c, err)
	}

	verb, err := h.service.Create(c.Request().Context(), input, middleware.UserFrom(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, verb)
}

func (h *VerbHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var input domain.VerbInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return h.respondError(c, err)
	}

	verb, err := h.service.Update(c.Request().Context(), id, input, middleware.UserFrom(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, verb)
}

func (h *VerbHandler) Remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.service.Remove(c.Request().Context(), id, middleware.UserFrom(c)); err != nil {
		return h.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VerbHandler) DeleteByIDs(c echo.Context) error {
	var req deleteByIDsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err)
	}

	if err := h.service.DeleteByIDs(c.Request().Context(), req.IDs, middleware.UserFrom(c)); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"deleted": len(req.IDs)})
}

func (h *VerbHandler) BulkImport(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling bulk import request")

	result, err := h.service.BulkImport(ctx, multipartUpload(c, "file", h.maxUploadBytes), middleware.UserFrom(c))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *VerbHandler) ListAudit(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.ListAudit(c.Request().Context(), limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": entries})
}
