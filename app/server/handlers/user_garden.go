package handlers

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/images"
	"campo-cidade/app/server/services"
	"campo-cidade/app/server/session"
	"campo-cidade/app/server/utils"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

func formValue(params url.Values, name string) *string {
	if v, ok := params[name]; ok && len(v) > 0 {
		return &v[0]
	}
	return nil
}

// gardenPatchFromForm 表单中没有出现的字段为 nil
func gardenPatchFromForm(params url.Values) (services.GardenPatch, error) {
	patch := services.GardenPatch{
		Name:         formValue(params, "nome_horta"),
		Species:      formValue(params, "especie"),
		Address:      formValue(params, "endereco"),
		ContactName:  formValue(params, "contato"),
		ContactEmail: formValue(params, "email"),
	}

	if days := formValue(params, "dias_colheita"); days != nil {
		v, err := utils.FormInt(*days)
		if err != nil {
			return patch, err
		}
		patch.DaysToHarvest = v
	}

	return patch, nil
}

// formPhoto 返回上传的照片，没有上传时返回 nil
func formPhoto(c echo.Context) (multipart.File, error) {
	fh, err := c.FormFile("foto")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}

	return fh.Open()
}

// formMessage 数字字段无法解析时提示天数无效
func formMessage(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return constants.MsgInvalidDays
	}
	return ""
}

// readGardenForm 读取菜园表单和照片；照片不为 nil 时由调用方关闭
func (a *App) readGardenForm(c echo.Context) (services.GardenPatch, multipart.File, error) {
	params, err := c.FormParams()
	if err != nil {
		return services.GardenPatch{}, nil, fmt.Errorf("failed to parse form: %w", err)
	}

	patch, err := gardenPatchFromForm(params)
	if err != nil {
		return patch, nil, err
	}

	photo, err := formPhoto(c)
	if err != nil {
		return patch, nil, err
	}

	return patch, photo, nil
}

func (a *App) GardenList(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	gardens, err := a.s.ListForOwner(c.Request().Context(), sess.State.Identity.ID)
	if err != nil {
		return a.ers(c, err, "get gardens")
	}

	res := GardenListResponse{
		Gardens: a.gardenInfos(gardens),
	}
	if len(gardens) == 0 {
		res.Message = constants.MsgNoGardens
	}

	return c.JSON(http.StatusOK, &res)
}

func (a *App) GardenCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	rctx := c.Request().Context()
	identity := sess.State.Identity

	// 读取表单
	patch, photo, err := a.readGardenForm(c)
	if err != nil {
		a.l.Debug("failed to read garden form", zap.Error(err))
		return a.er(c, http.StatusBadRequest, formMessage(err))
	}
	if photo != nil {
		defer photo.Close()
	}

	// 联系人默认是当前用户
	if patch.ContactName == nil {
		patch.ContactName = &identity.Name
	}
	if patch.ContactEmail == nil {
		patch.ContactEmail = &identity.Email
	}

	var src io.Reader
	if photo != nil {
		src = photo
	}
	garden, w, err := a.s.CreateGarden(rctx, identity.ID, services.GardenInput{
		Name:          utils.V(patch.Name),
		Species:       utils.V(patch.Species),
		DaysToHarvest: utils.V(patch.DaysToHarvest),
		Address:       utils.V(patch.Address),
		ContactName:   utils.V(patch.ContactName),
		ContactEmail:  utils.V(patch.ContactEmail),
	}, src)
	if err != nil {
		return a.ers(c, err, "create garden")
	}

	// 创建后回到首页
	next, err := sess.State.Navigate(session.ViewHome)
	if err != nil {
		return a.ers(c, err, "navigate home")
	}
	if err := a.saveSession(c, sess, next); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "")
	}

	return c.JSON(http.StatusCreated, &Result{
		Rerender: true,
		Message:  constants.MsgGardenCreated,
		Warning:  warning(w),
		Session:  sess.State,
		Data:     a.gardenInfo(garden),
	})
}

func (a *App) GardenGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest, "")
	}

	garden, err := a.s.GetGarden(c.Request().Context(), id)
	if err != nil {
		return a.ers(c, err, "get garden")
	}
	if !a.canEdit(sess.State.Identity, garden.UserID) {
		return a.er(c, http.StatusForbidden, constants.MsgNotGardenOwner)
	}

	return c.JSON(http.StatusOK, a.gardenInfo(garden))
}

func (a *App) GardenUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	rctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest, "")
	}

	// 读取表单
	patch, photo, err := a.readGardenForm(c)
	if err != nil {
		a.l.Debug("failed to read garden form", zap.Error(err))
		return a.er(c, http.StatusBadRequest, formMessage(err))
	}
	if photo != nil {
		defer photo.Close()
	}

	var src io.Reader
	if photo != nil {
		src = photo
	}
	garden, w, err := a.s.UpdateGarden(rctx, *sess.State.Identity, id, patch, src)
	if err != nil {
		return a.ers(c, err, "update garden")
	}

	// 保存后结束编辑
	if sess.State.Editing() && *sess.State.EditingGardenID == garden.ID {
		if err := a.saveSession(c, sess, sess.State.EndEdit()); err != nil {
			a.l.Error("failed to save session", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "")
		}
	}

	return c.JSON(http.StatusOK, &Result{
		Rerender: true,
		Message:  constants.MsgGardenUpdated,
		Warning:  warning(w),
		Session:  sess.State,
		Data:     a.gardenInfo(garden),
	})
}

func (a *App) GardenPostToFeed(c echo.Context) error {
	// 抓取 user 信息（认证）
	sess, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	rctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest, "")
	}

	// 绑定请求体
	var req FeedPostRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "")
	}

	// 只能发布自己的菜园
	garden, err := a.s.GetGarden(rctx, id)
	if err != nil {
		return a.ers(c, err, "get garden")
	}
	if !a.canEdit(sess.State.Identity, garden.UserID) {
		return a.er(c, http.StatusForbidden, constants.MsgNotGardenOwner)
	}

	post, garden, err := a.s.PostToFeed(rctx, garden.ID, sess.State.Identity.ID, req.Description)
	if err != nil {
		return a.ers(c, err, "post to feed")
	}

	return c.JSON(http.StatusCreated, &Result{
		Rerender: true,
		Message:  fmt.Sprintf(constants.MsgGardenPosted, garden.Name),
		Session:  sess.State,
		Data: FeedEntryInfo{
			ID:          post.ID,
			Photo:       a.images.URL(a.images.Resolve(post.Photo, images.ClassGarden)),
			Description: post.Description,
			PostedAt:    post.PostedAt,
			UserName:    sess.State.Identity.Name,
			GardenName:  garden.Name,
			Species:     garden.Species,
		},
	})
}
