package handler

import (
	"log/slog"
	"net/http"

	"menfes/internal/domain/entity"
	"menfes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandler drives the push toggle and renders foreground push
// messages as inline popups.
type NotificationHandler struct {
	push   usecase.PushUsecase
	toasts usecase.ToastUsecase
	logger *slog.Logger
}

// NotificationHandlerParams holds dependencies for the NotificationHandler.
type NotificationHandlerParams struct {
	fx.In

	Push   usecase.PushUsecase
	Toasts usecase.ToastUsecase
	Logger *slog.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		push:   params.Push,
		toasts: params.Toasts,
		logger: params.Logger,
	}
}

// Toggle flips push notifications on or off.
func (h *NotificationHandler) Toggle(c echo.Context) error {
	if err := h.push.Toggle(c.Request().Context()); err != nil {
		h.logger.Warn("toggle notifications", slog.Any("error", err))

		return echo.NewHTTPError(http.StatusBadGateway, "push provider unreachable")
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Test sends a verification push to the registered token.
func (h *NotificationHandler) Test(c echo.Context) error {
	if err := h.push.TestPush(c.Request().Context()); err != nil {
		h.logger.Warn("test push", slog.Any("error", err))

		return echo.NewHTTPError(http.StatusBadGateway, "push provider unreachable")
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ForegroundPush renders a push message that arrived while the page is in
// the foreground as an inline popup instead of a system notification.
func (h *NotificationHandler) ForegroundPush(c echo.Context) error {
	var payload entity.PushPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	kind := entity.KindInfo
	message := payload.Title() + ": " + payload.Body()
	if payload.Admin() {
		kind = entity.KindAdmin
		message = "🛡️ Admin: " + message
	}
	h.toasts.EnqueueInline(entity.NotificationRequest{
		Kind:    kind,
		Message: message,
	})

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
