// Package handler contains the worker-context push handlers.
package handler

import (
	"log/slog"
	"net/http"

	"menfes/config"
	deliverycontext "menfes/internal/delivery/context"
	"menfes/internal/domain/entity"
	"menfes/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandler receives push messages in the worker context and turns them
// into system notifications, and resolves notification clicks to a window.
type PushHandler struct {
	logger  *slog.Logger
	logoURL string
	center  service.NotificationCenter
	windows service.WindowClients
}

// PushHandlerParams holds dependencies for the PushHandler.
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Center  service.NotificationCenter
	Windows service.WindowClients
}

// NewPushHandler creates a new push handler.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger:  params.Logger,
		logoURL: params.Config.Board.LogoURL,
		center:  params.Center,
		windows: params.Windows,
	}
}

// HandlePush displays the pushed message as a system notification. Malformed
// payloads still display, with the fallback title and body.
func (h *PushHandler) HandlePush(c echo.Context) error {
	var payload entity.PushPayload
	if err := c.Bind(&payload); err != nil {
		h.logger.Warn("undecodable push payload",
			slog.String("request_id", deliverycontext.GetRequestID(c)),
			slog.Any("error", err))
		payload = entity.PushPayload{}
	}

	shown := service.ShownNotification{
		Title:     payload.Title(),
		Body:      payload.Body(),
		Icon:      h.logoURL,
		Badge:     h.logoURL,
		TargetURL: payload.ClickURL(),
		Admin:     payload.Admin(),
	}
	if payload.Notification != nil {
		if payload.Notification.Icon != "" {
			shown.Icon = payload.Notification.Icon
		}
		if payload.Notification.Badge != "" {
			shown.Badge = payload.Notification.Badge
		}
		shown.Image = payload.Notification.Image
	}

	id := h.center.Show(shown)

	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

// HandleClick resolves a notification activation: focus an open window on
// the target URL, or open a new one.
func (h *PushHandler) HandleClick(c echo.Context) error {
	id := c.Param("id")
	shown, ok := h.center.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown notification")
	}
	h.center.Dismiss(id)

	for _, win := range h.windows.List() {
		if err := h.windows.Focus(win.ID, shown.TargetURL); err == nil {
			return c.JSON(http.StatusOK, map[string]any{
				"window": win.ID,
				"url":    shown.TargetURL,
				"opened": false,
			})
		}
	}

	win := h.windows.Open(shown.TargetURL)

	return c.JSON(http.StatusOK, map[string]any{
		"window": win.ID,
		"url":    shown.TargetURL,
		"opened": true,
	})
}
