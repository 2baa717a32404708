package handlers

import (
	"campo-cidade/app/server/constants"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// HomeGet 返回首页：个人信息和自己的菜园
func (a *App) HomeGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	rctx := c.Request().Context()

	user, err := a.s.Profile(rctx, sess.State.Identity.ID)
	if err != nil {
		return a.ers(c, err, "get profile")
	}
	gardens, err := a.s.ListForOwner(rctx, user.ID)
	if err != nil {
		return a.ers(c, err, "get gardens")
	}

	res := HomeResponse{
		User:    a.userInfo(user),
		Gardens: a.gardenInfos(gardens),
		Session: sess.State,
	}
	if len(gardens) == 0 {
		res.Message = constants.MsgNoGardens
	}

	return c.JSON(http.StatusOK, &res)
}

func (a *App) ProfilePhotoUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	rctx := c.Request().Context()

	// 读取上传的文件
	photo, err := c.FormFile("foto")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return a.er(c, http.StatusBadRequest, constants.MsgRequiredFields)
		}
		a.l.Error("failed to read form file", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}
	src, err := photo.Open()
	if err != nil {
		a.l.Error("failed to open form file", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}
	defer src.Close()

	user, w, err := a.s.UpdateProfilePhoto(rctx, sess.State.Identity.ID, src)
	if err != nil {
		return a.ers(c, err, "update profile photo")
	}

	res := Result{
		Rerender: true,
		Warning:  warning(w),
		Session:  sess.State,
		Data:     a.userInfo(user),
	}
	if w == nil {
		res.Message = constants.MsgPhotoUpdated
	}

	return c.JSON(http.StatusOK, &res)
}
