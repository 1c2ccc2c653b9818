package handler

import (
	"net/http"

	"menfes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrefsHandler exposes the locally persisted preferences.
type PrefsHandler struct {
	prefs usecase.PrefsUsecase
}

// PrefsHandlerParams holds dependencies for the PrefsHandler.
type PrefsHandlerParams struct {
	fx.In

	Prefs usecase.PrefsUsecase
}

// NewPrefsHandler creates a new preferences handler.
func NewPrefsHandler(params PrefsHandlerParams) *PrefsHandler {
	return &PrefsHandler{prefs: params.Prefs}
}

// ToggleTheme flips the theme and reports the new one.
func (h *PrefsHandler) ToggleTheme(c echo.Context) error {
	theme := h.prefs.ToggleTheme(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]string{"theme": theme})
}

type nameRequest struct {
	Name string `json:"name" validate:"max=40"`
}

// RememberName persists the display name.
func (h *PrefsHandler) RememberName(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.prefs.RememberName(c.Request().Context(), req.Name)

	return c.JSON(http.StatusOK, map[string]string{"name": h.prefs.DisplayName(c.Request().Context())})
}

// GetDraft returns the persisted composer draft.
func (h *PrefsHandler) GetDraft(c echo.Context) error {
	return c.JSON(http.StatusOK, h.prefs.Draft(c.Request().Context()))
}

// SaveDraft persists the composer draft.
func (h *PrefsHandler) SaveDraft(c echo.Context) error {
	var draft usecase.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	h.prefs.SaveDraft(c.Request().Context(), draft)

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ClearDraft removes the persisted composer draft.
func (h *PrefsHandler) ClearDraft(c echo.Context) error {
	h.prefs.ClearDraft(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
