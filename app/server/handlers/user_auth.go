package handlers

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/services"
	"campo-cidade/app/server/session"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) AuthRegister(c echo.Context) error {
	sess, err := a.currentSession(c)
	if err != nil {
		a.l.Error("failed to get session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}
	if sess.State.LoggedIn() {
		return a.ers(c, session.ErrAlreadyLoggedIn, "register")
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}

	// 创建用户
	if _, err := a.s.Register(rctx, services.RegisterInput{
		Name:            req.Name,
		Age:             req.Age,
		Phone:           req.Phone,
		Address:         req.Address,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return a.ers(c, err, "register user")
	}

	// 回到登录页，注册后不自动登录
	next := sess.State
	if next.Page == session.PageRegistration {
		if next, err = next.BackToLogin(); err != nil {
			return a.ers(c, err, "return to login page")
		}
	}
	if err := a.saveSession(c, sess, next); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	return c.JSON(http.StatusCreated, &Result{
		Rerender: true,
		Message:  constants.MsgRegistered,
		Session:  sess.State,
	})
}

func (a *App) AuthLogin(c echo.Context) error {
	sess, err := a.currentSession(c)
	if err != nil {
		a.l.Error("failed to get session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}

	// 没有写邮箱或密码
	if req.Email == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, constants.MsgRequiredFields)
	}

	user, err := a.s.Login(rctx, req.Email, req.Password)
	if err != nil {
		return a.ers(c, err, "log in")
	}

	next, err := sess.State.LogIn(session.Identity{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return a.ers(c, err, "log in")
	}
	if err := a.saveSession(c, sess, next); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	return c.JSON(http.StatusOK, &Result{
		Rerender: true,
		Message:  fmt.Sprintf(constants.MsgWelcome, user.Name),
		Session:  sess.State,
	})
}

func (a *App) AuthLogout(c echo.Context) error {
	sess, err := a.currentSession(c)
	if err != nil {
		a.l.Error("failed to get session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	// 退出后不再保存状态，下次请求从登录页开始
	if err := a.sessions.Delete(c.Request().Context(), sess.ID); err != nil {
		a.l.Error("failed to delete session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}
	sess.State = sess.State.LogOut()

	return c.JSON(http.StatusOK, &Result{
		Rerender: true,
		Session:  sess.State,
	})
}
