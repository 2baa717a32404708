package handlers

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) AdminGardenList(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, true)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	gardens, err := a.s.ListAll(c.Request().Context(), *sess.State.Identity)
	if err != nil {
		return a.ers(c, err, "get garden list")
	}

	res := GardenListResponse{
		Gardens: a.gardenInfos(gardens),
	}
	if len(gardens) == 0 {
		res.Message = constants.MsgNoGardensAdmin
	}

	return c.JSON(http.StatusOK, &res)
}

func (a *App) AdminGardenDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, true)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest, "")
	}

	// 删除
	if err := a.s.DeleteGarden(c.Request().Context(), *sess.State.Identity, id); err != nil {
		return a.ers(c, err, "delete garden")
	}

	// 被删除的菜园正在编辑时结束编辑
	if sess.State.Editing() && *sess.State.EditingGardenID == id {
		if err := a.saveSession(c, sess, sess.State.EndEdit()); err != nil {
			a.l.Error("failed to save session", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "")
		}
	}

	return c.JSON(http.StatusOK, &Result{
		Rerender: true,
		Message:  constants.MsgGardenDeleted,
		Session:  sess.State,
	})
}
