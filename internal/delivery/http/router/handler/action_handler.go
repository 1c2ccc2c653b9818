package handler

import (
	"log/slog"
	"net/http"

	"menfes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActionHandler forwards user gestures to the engagement usecase.
type ActionHandler struct {
	engagement usecase.EngagementUsecase
	logger     *slog.Logger
}

// ActionHandlerParams holds dependencies for the ActionHandler.
type ActionHandlerParams struct {
	fx.In

	Engagement usecase.EngagementUsecase
	Logger     *slog.Logger
}

// NewActionHandler creates a new action handler.
func NewActionHandler(params ActionHandlerParams) *ActionHandler {
	return &ActionHandler{
		engagement: params.Engagement,
		logger:     params.Logger,
	}
}

// Like toggles the like on a post.
func (h *ActionHandler) Like(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing post id")
	}

	if err := h.engagement.Like(c.Request().Context(), postID); err != nil {
		h.logger.Warn("like action failed", slog.String("post_id", postID), slog.Any("error", err))

		return echo.NewHTTPError(http.StatusBadGateway, "board unreachable")
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type shareRequest struct {
	Link string `json:"link" validate:"omitempty,url"`
}

// Share records a copied share link and pings the board.
func (h *ActionHandler) Share(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing post id")
	}

	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.engagement.Share(c.Request().Context(), postID, req.Link); err != nil {
		h.logger.Warn("share action failed", slog.String("post_id", postID), slog.Any("error", err))
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
