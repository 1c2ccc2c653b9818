// Package router contains routing setup for the control surface.
package router

import (
	"menfes/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ActionHandler       *handler.ActionHandler
	NotificationHandler *handler.NotificationHandler
	PrefsHandler        *handler.PrefsHandler
	PageHandler         *handler.PageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	actionHandler       *handler.ActionHandler
	notificationHandler *handler.NotificationHandler
	prefsHandler        *handler.PrefsHandler
	pageHandler         *handler.PageHandler
}

// NewRouter is the constructor for the Router. Fx injects the handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		actionHandler:       params.ActionHandler,
		notificationHandler: params.NotificationHandler,
		prefsHandler:        params.PrefsHandler,
		pageHandler:         params.PageHandler,
	}
}

// RegisterRoutes sets up all the control surface routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/page", r.pageHandler.Page)

	actionGroup := e.Group("/actions")
	{
		actionGroup.POST("/like/:id", r.actionHandler.Like)
		actionGroup.POST("/share/:id", r.actionHandler.Share)
	}

	notifGroup := e.Group("/notifications")
	{
		notifGroup.POST("/toggle", r.notificationHandler.Toggle)
		notifGroup.POST("/test", r.notificationHandler.Test)
	}

	// Foreground push messages arrive here while the page is visible.
	e.POST("/push", r.notificationHandler.ForegroundPush)

	prefsGroup := e.Group("/prefs")
	{
		prefsGroup.POST("/theme/toggle", r.prefsHandler.ToggleTheme)
		prefsGroup.PUT("/name", r.prefsHandler.RememberName)
		prefsGroup.GET("/draft", r.prefsHandler.GetDraft)
		prefsGroup.PUT("/draft", r.prefsHandler.SaveDraft)
		prefsGroup.DELETE("/draft", r.prefsHandler.ClearDraft)
	}
}
