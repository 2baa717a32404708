package handlers

import (
	"bytes"
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/images"
	"campo-cidade/app/server/inits"
	"campo-cidade/app/server/jwt"
	"campo-cidade/app/server/services"
	"campo-cidade/app/server/session"
	"context"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	root := t.TempDir()
	l := zaptest.NewLogger(t)

	db, err := inits.DB(filepath.Join(root, "database.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	imgs, err := images.New(filepath.Join(root, "uploads"), filepath.Join(root, "imagens"))
	require.NoError(t, err)

	svc := services.New(l, db, imgs)
	_, err = svc.BootstrapAdmin(context.Background(), constants.AdminEmail, constants.AdminPassword)
	require.NoError(t, err)

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	e := echo.New()
	RegisterHandlers(e, NewApp(l, svc, session.NewMemoryStore(), j, imgs))
	return e
}

// client 像浏览器一样保存会话 cookie
type client struct {
	t       *testing.T
	e       *echo.Echo
	cookies []*http.Cookie
}

func newClient(t *testing.T, e *echo.Echo) *client {
	return &client{t: t, e: e}
}

func (cl *client) do(method string, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		cl.cookies = cookies
	}
	return rec
}

func (cl *client) json(method string, target string, v any) *httptest.ResponseRecorder {
	cl.t.Helper()
	var body io.Reader
	if v != nil {
		b, err := json.Marshal(v)
		require.NoError(cl.t, err)
		body = bytes.NewReader(b)
	}
	return cl.do(method, target, body, echo.MIMEApplicationJSON)
}

func (cl *client) form(method string, target string, fields map[string]string, photo []byte) *httptest.ResponseRecorder {
	cl.t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(cl.t, w.WriteField(k, v))
	}
	if photo != nil {
		fw, err := w.CreateFormFile("foto", "foto.jpg")
		require.NoError(cl.t, err)
		_, err = fw.Write(photo)
		require.NoError(cl.t, err)
	}
	require.NoError(cl.t, w.Close())
	return cl.do(method, target, buf, w.FormDataContentType())
}

func (cl *client) login(email string, password string) session.State {
	cl.t.Helper()
	rec := cl.json(http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password})
	require.Equal(cl.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[resultBody](cl.t, rec).Session
}

func (cl *client) register(name string, email string, password string) {
	cl.t.Helper()
	age := 30
	rec := cl.json(http.MethodPost, "/api/auth/register", RegisterRequest{
		Name:            name,
		Age:             &age,
		Phone:           "61999990000",
		Address:         "Rua das Flores, 1",
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.Equal(cl.t, http.StatusCreated, rec.Code, rec.Body.String())
}

// resultBody 是 Result 的解码形式
type resultBody struct {
	Rerender bool            `json:"rerender"`
	Message  string          `json:"message"`
	Warning  string          `json:"warning"`
	Session  session.State   `json:"session"`
	Data     json.RawMessage `json:"data"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func tomateiroForm() map[string]string {
	return map[string]string{
		"nome_horta":    "Tomateiro",
		"especie":       "Tomato",
		"dias_colheita": "60",
		"endereco":      "Quadra 5",
	}
}
