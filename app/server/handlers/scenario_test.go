package handlers

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/session"
	"encoding/json"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestScenario_AnaPostsTomateiro(t *testing.T) {
	e := newTestServer(t)
	ana := newClient(t, e)

	// 新访客在登录页
	rec := ana.json(http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.Initial(), decode[session.State](t, rec))

	// 注册
	rec = ana.json(http.MethodPost, "/api/session/registration", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.PageRegistration, decode[resultBody](t, rec).Session.Page)

	rec = ana.json(http.MethodPost, "/api/auth/register", RegisterRequest{
		Name:            "Ana",
		Phone:           "61999990000",
		Address:         "Rua das Flores, 1",
		Email:           "ana@campo.br",
		Password:        "tomate123",
		ConfirmPassword: "tomate123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res := decode[resultBody](t, rec)
	assert.Equal(t, constants.MsgRegistered, res.Message)
	assert.Equal(t, session.PageLogin, res.Session.Page)
	assert.False(t, res.Session.LoggedIn())

	// 登录
	state := ana.login("ana@campo.br", "tomate123")
	require.NotNil(t, state.Identity)
	assert.Equal(t, "Ana", state.Identity.Name)
	assert.Equal(t, session.ViewHome, state.View)
	anaID := state.Identity.ID

	rec = ana.json(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	home := decode[HomeResponse](t, rec)
	assert.Empty(t, home.Gardens)
	assert.Equal(t, constants.MsgNoGardens, home.Message)
	assert.Equal(t, "/imagens/default-user.jpg", home.User.Photo)

	// 创建菜园，联系人默认为自己
	rec = ana.form(http.MethodPost, "/api/gardens", tomateiroForm(), []byte("jpeg bytes"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res = decode[resultBody](t, rec)
	assert.Equal(t, constants.MsgGardenCreated, res.Message)
	assert.Empty(t, res.Warning)
	assert.Equal(t, session.ViewHome, res.Session.View)

	var garden GardenInfo
	require.NoError(t, json.Unmarshal(res.Data, &garden))
	assert.Equal(t, "Tomateiro", garden.Name)
	assert.Equal(t, "Ana", garden.ContactName)
	assert.Equal(t, "ana@campo.br", garden.ContactEmail)
	assert.Equal(t, anaID, garden.UserID)
	assert.Equal(t, fmt.Sprintf("/uploads/horta_%d.jpg", anaID), garden.Photo)

	rec = ana.json(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	home = decode[HomeResponse](t, rec)
	require.Len(t, home.Gardens, 1)
	assert.Equal(t, "Tomateiro", home.Gardens[0].Name)
	assert.Empty(t, home.Message)

	// 发布到动态
	rec = ana.json(http.MethodPost, fmt.Sprintf("/api/gardens/%d/feed", garden.ID), FeedPostRequest{})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Horta 'Tomateiro' postada no feed!", decode[resultBody](t, rec).Message)

	rec = ana.json(http.MethodGet, "/api/feed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decode[FeedResponse](t, rec)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, "Ana", feed.Posts[0].UserName)
	assert.Equal(t, "Tomateiro", feed.Posts[0].GardenName)
	assert.Equal(t, "Tomato", feed.Posts[0].Species)
	require.NotNil(t, feed.Posts[0].Description)
	assert.Equal(t, "Horta de Ana", *feed.Posts[0].Description)
	assert.Equal(t, garden.Photo, feed.Posts[0].Photo)

	// 照片可以通过静态路由访问
	rec = ana.do(http.MethodGet, garden.Photo, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg bytes", rec.Body.String())

	// 退出
	rec = ana.json(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.Initial(), decode[resultBody](t, rec).Session)

	rec = ana.json(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_DuplicateAdminEmail(t *testing.T) {
	e := newTestServer(t)
	cl := newClient(t, e)

	rec := cl.json(http.MethodPost, "/api/auth/register", RegisterRequest{
		Name:            "Impostor",
		Phone:           "61999990000",
		Address:         "SAD",
		Email:           constants.AdminEmail,
		Password:        "x",
		ConfirmPassword: "x",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, constants.MsgEmailTaken, decode[ErrorMessage](t, rec).Message)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	e := newTestServer(t)
	cl := newClient(t, e)

	rec := cl.json(http.MethodPost, "/api/auth/register", RegisterRequest{
		Name:            "Ana",
		Phone:           "61999990000",
		Address:         "Rua das Flores, 1",
		Email:           "ana@campo.br",
		Password:        "a",
		ConfirmPassword: "b",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.MsgPasswordMismatch, decode[ErrorMessage](t, rec).Message)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e := newTestServer(t)
	cl := newClient(t, e)
	cl.register("Ana", "ana@campo.br", "tomate123")

	for _, req := range []LoginRequest{
		{Email: "ana@campo.br", Password: "errada"},
		{Email: "ninguem@campo.br", Password: "tomate123"},
	} {
		rec := cl.json(http.MethodPost, "/api/auth/login", req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constants.MsgInvalidCredentials, decode[ErrorMessage](t, rec).Message)
	}

	rec := cl.json(http.MethodGet, "/api/session", nil)
	assert.False(t, decode[session.State](t, rec).LoggedIn())
}

func TestLogin_AlreadyLoggedIn(t *testing.T) {
	e := newTestServer(t)
	cl := newClient(t, e)
	cl.register("Ana", "ana@campo.br", "tomate123")
	cl.login("ana@campo.br", "tomate123")

	rec := cl.json(http.MethodPost, "/api/auth/login", LoginRequest{Email: "ana@campo.br", Password: "tomate123"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRequiresLogin(t *testing.T) {
	e := newTestServer(t)
	cl := newClient(t, e)

	for _, target := range []string{"/api/me", "/api/gardens", "/api/feed", "/api/admin/gardens"} {
		rec := cl.json(http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, constants.MsgLoginRequired, decode[ErrorMessage](t, rec).Message, target)
	}

	rec := cl.json(http.MethodPost, "/api/session/view", NavigateRequest{View: session.ViewFeed})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
