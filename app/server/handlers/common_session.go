package handlers

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) SessionGet(c echo.Context) error {
	sess, err := a.currentSession(c)
	if err != nil {
		a.l.Error("failed to get session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	return c.JSON(http.StatusOK, &sess.State)
}

// transition 在当前会话上执行一次不需要额外数据的转换
func (a *App) transition(c echo.Context, apply func(session.State) (session.State, error)) error {
	sess, err := a.currentSession(c)
	if err != nil {
		a.l.Error("failed to get session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	next, err := apply(sess.State)
	if err != nil {
		return a.ers(c, err, "change page")
	}
	if err := a.saveSession(c, sess, next); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	return c.JSON(http.StatusOK, &Result{
		Rerender: true,
		Session:  sess.State,
	})
}

func (a *App) SessionShowRegistration(c echo.Context) error {
	return a.transition(c, session.State.ShowRegistration)
}

func (a *App) SessionBackToLogin(c echo.Context) error {
	return a.transition(c, session.State.BackToLogin)
}

func (a *App) SessionNavigate(c echo.Context) error {
	// 绑定请求体
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}

	return a.transition(c, func(s session.State) (session.State, error) {
		return s.Navigate(req.View)
	})
}

func (a *App) SessionBeginEdit(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req EditRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}

	// 只能编辑存在且有权限的菜园
	garden, err := a.s.GetGarden(rctx, req.GardenID)
	if err != nil {
		return a.ers(c, err, "get garden")
	}
	if !a.canEdit(sess.State.Identity, garden.UserID) {
		return a.er(c, http.StatusForbidden, constants.MsgNotGardenOwner)
	}

	next, err := sess.State.BeginEdit(garden.ID)
	if err != nil {
		return a.ers(c, err, "begin edit")
	}
	if err := a.saveSession(c, sess, next); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	return c.JSON(http.StatusOK, &Result{
		Rerender: true,
		Session:  sess.State,
		Data:     a.gardenInfo(garden),
	})
}

func (a *App) SessionEndEdit(c echo.Context) error {
	return a.transition(c, func(s session.State) (session.State, error) {
		return s.EndEdit(), nil
	})
}

func (a *App) canEdit(identity *session.Identity, ownerID uint) bool {
	return identity != nil && (identity.IsAdmin || identity.ID == ownerID)
}
