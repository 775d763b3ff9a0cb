package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/internal/domain/form"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	conversionSvc conversion.Service
	formSvc       form.Service
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(conversionSvc conversion.Service, formSvc form.Service, logger *slog.Logger) *Handler {
	return &Handler{
		conversionSvc: conversionSvc,
		formSvc:       formSvc,
		logger:        logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListCategories returns every category with its units.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.conversionSvc.Categories(c.Request.Context())})
}

// ListUnits returns the ordered units of one category.
func (h *Handler) ListUnits(c *gin.Context) {
	info, err := h.conversionSvc.Units(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Convert handles a one-shot conversion.
func (h *Handler) Convert(c *gin.Context) {
	var req conversion.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.conversionSvc.Convert(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecentConversions lists the conversion log, newest first.
func (h *Handler) RecentConversions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
			return
		}
		limit = parsed
	}

	entries, err := h.conversionSvc.Recent(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	if entries == nil {
		entries = []conversion.HistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"conversions": entries})
}

type createFormRequest struct {
	Locale string `json:"locale"`
}

// CreateForm opens a new conversion form.
func (h *Handler) CreateForm(c *gin.Context) {
	var req createFormRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	view, err := h.formSvc.Create(c.Request.Context(), req.Locale)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetForm returns the current state of a form.
func (h *Handler) GetForm(c *gin.Context) {
	view, err := h.formSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateForm applies selection changes and returns the recomputed form.
func (h *Handler) UpdateForm(c *gin.Context) {
	var update form.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	view, err := h.formSvc.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteForm discards a form.
func (h *Handler) DeleteForm(c *gin.Context) {
	if err := h.formSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error) {
	abortWithError(c, fromDomainError(err))
}
