package handler

import (
	"log/slog"
	"net/http"

	"menfes/internal/view"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandler serves the mirrored page, mainly for inspection and tests.
type PageHandler struct {
	doc    *view.Document
	logger *slog.Logger
}

// PageHandlerParams holds dependencies for the PageHandler.
type PageHandlerParams struct {
	fx.In

	Doc    *view.Document
	Logger *slog.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		doc:    params.Doc,
		logger: params.Logger,
	}
}

// Page renders the current state of the mirrored page.
func (h *PageHandler) Page(c echo.Context) error {
	html, err := h.doc.HTML()
	if err != nil {
		h.logger.Error("render mirrored page", slog.Any("error", err))

		return echo.NewHTTPError(http.StatusInternalServerError, "render failed")
	}

	return c.HTML(http.StatusOK, html)
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
