package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menfes/internal/delivery/http/validator"
	mocksusecase "menfes/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newActionContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec
}

func TestActionHandler_Like(t *testing.T) {
	engagement := mocksusecase.NewMockEngagementUsecase(t)
	engagement.EXPECT().Like(mock.Anything, "ab12cd").Return(nil).Once()

	h := &ActionHandler{
		engagement: engagement,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newActionContext(t, http.MethodPost, "/actions/like/ab12cd", "")
	c.SetParamNames("id")
	c.SetParamValues("ab12cd")

	require.NoError(t, h.Like(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestActionHandler_Like_BoardUnreachable(t *testing.T) {
	engagement := mocksusecase.NewMockEngagementUsecase(t)
	engagement.EXPECT().Like(mock.Anything, "ab12cd").Return(errors.New("connection refused")).Once()

	h := &ActionHandler{
		engagement: engagement,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, _ := newActionContext(t, http.MethodPost, "/actions/like/ab12cd", "")
	c.SetParamNames("id")
	c.SetParamValues("ab12cd")

	err := h.Like(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
}

func TestActionHandler_Like_MissingID(t *testing.T) {
	engagement := mocksusecase.NewMockEngagementUsecase(t)

	h := &ActionHandler{
		engagement: engagement,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, _ := newActionContext(t, http.MethodPost, "/actions/like/", "")

	err := h.Like(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestActionHandler_Share(t *testing.T) {
	engagement := mocksusecase.NewMockEngagementUsecase(t)
	engagement.EXPECT().
		Share(mock.Anything, "ab12cd", "https://menfes.example/post/ab12cd").
		Return(nil).Once()

	h := &ActionHandler{
		engagement: engagement,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newActionContext(t, http.MethodPost, "/actions/share/ab12cd",
		`{"link": "https://menfes.example/post/ab12cd"}`)
	c.SetParamNames("id")
	c.SetParamValues("ab12cd")

	require.NoError(t, h.Share(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestActionHandler_Share_PingFailureStillSucceeds(t *testing.T) {
	engagement := mocksusecase.NewMockEngagementUsecase(t)
	engagement.EXPECT().Share(mock.Anything, "ab12cd", "").Return(errors.New("timeout")).Once()

	h := &ActionHandler{
		engagement: engagement,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newActionContext(t, http.MethodPost, "/actions/share/ab12cd", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("ab12cd")

	require.NoError(t, h.Share(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActionHandler_Share_RejectsInvalidLink(t *testing.T) {
	engagement := mocksusecase.NewMockEngagementUsecase(t)

	h := &ActionHandler{
		engagement: engagement,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, _ := newActionContext(t, http.MethodPost, "/actions/share/ab12cd", `{"link": "not a url"}`)
	c.SetParamNames("id")
	c.SetParamValues("ab12cd")

	err := h.Share(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
