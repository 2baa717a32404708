package handlers

import (
	"campo-cidade/app/server/middlewares"
	"campo-cidade/app/server/session"
	"fmt"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) authUser(c echo.Context, requireAdminRole bool) (*middlewares.Session, error, int) {
	// 提取会话
	sess := middlewares.GetSession(c)
	if sess == nil {
		return nil, fmt.Errorf("missing session"), http.StatusInternalServerError
	}

	// 验证登录
	if !sess.State.LoggedIn() {
		return nil, session.ErrNotLoggedIn, http.StatusUnauthorized
	}

	// 验证权限
	if requireAdminRole && !sess.State.IsAdmin() {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	return sess, nil, http.StatusOK
}

// currentSession 返回请求的会话，不要求登录
func (a *App) currentSession(c echo.Context) (*middlewares.Session, error) {
	sess := middlewares.GetSession(c)
	if sess == nil {
		return nil, fmt.Errorf("missing session")
	}
	return sess, nil
}

// saveSession 保存转换后的状态，成功后才更新请求中的会话
func (a *App) saveSession(c echo.Context, sess *middlewares.Session, next session.State) error {
	if err := a.sessions.Save(c.Request().Context(), sess.ID, next); err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	sess.State = next
	return nil
}
