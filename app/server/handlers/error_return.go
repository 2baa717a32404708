package handlers

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/services"
	"campo-cidade/app/server/session"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) er(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, &ErrorMessage{
		Message: message,
	})
}

// ers 把业务和会话错误映射为 HTTP 状态码，未知错误记录日志后返回 500
func (a *App) ers(c echo.Context, err error, action string) error {
	message := services.Message(err)

	var statusCode int
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, session.ErrUnknownView):
		statusCode = http.StatusBadRequest
	case errors.Is(err, services.ErrAuth):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, session.ErrNotLoggedIn):
		statusCode = http.StatusUnauthorized
		message = constants.MsgLoginRequired
	case errors.Is(err, services.ErrForbidden):
		statusCode = http.StatusForbidden
	case errors.Is(err, session.ErrViewDenied):
		statusCode = http.StatusForbidden
		message = constants.MsgAccessDenied
	case errors.Is(err, services.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, services.ErrConstraint), errors.Is(err, session.ErrAlreadyLoggedIn), errors.Is(err, session.ErrNotOnPage):
		statusCode = http.StatusConflict
	default:
		a.l.Error("failed to "+action, zap.Error(err))
		statusCode = http.StatusInternalServerError
		message = ""
	}

	return a.er(c, statusCode, message)
}

// erAuth 返回 authUser 失败时的响应
func (a *App) erAuth(c echo.Context, err error, statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return a.er(c, statusCode, constants.MsgLoginRequired)
	case http.StatusForbidden:
		return a.er(c, statusCode, constants.MsgAccessDenied)
	}

	a.l.Error("failed to auth", zap.Error(err))
	return a.er(c, statusCode, "")
}

// warning 把图片读写失败转为给用户看的提示
func warning(w *services.IOWarning) string {
	if w == nil {
		return ""
	}
	return fmt.Sprintf(constants.MsgPhotoSaveFailed, w.Err)
}
