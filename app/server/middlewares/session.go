package middlewares

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/jwt"
	"campo-cidade/app/server/session"
	"errors"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const (
	contextKeyToken   = "token"
	contextKeySession = "session"
)

// Session 是当前请求所属的会话
type Session struct {
	ID    uuid.UUID
	State session.State
}

// SessionToken 从 cookie 中读取并校验会话 token ；缺失或无效时不拒绝请求，由 SessionState 开启新会话
func SessionToken(j *jwt.JWT) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:             j.Key(),
		SigningMethod:          gojwt.SigningMethodHS256.Alg(),
		TokenLookup:            "cookie:" + constants.SessionCookieName,
		ContextKey:             contextKeyToken,
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

// SessionState 加载会话状态并放入 context
func SessionState(store session.Store, j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			// 提取会话 ID
			if token, ok := c.Get(contextKeyToken).(*gojwt.Token); ok {
				if s, err := jwt.SessionFromToken(token); err == nil {
					state, err := store.Load(rctx, s.ID)
					if err != nil {
						if !errors.Is(err, session.ErrSessionNotFound) {
							l.Error("failed to load session", zap.Stringer("sid", s.ID), zap.Error(err))
						}
						// 状态已过期或丢失，沿用 ID 从登录页重新开始
						state = session.Initial()
					}

					c.Set(contextKeySession, &Session{ID: s.ID, State: state})
					return next(c)
				}
			}

			// 开启新会话
			s := &jwt.Session{
				ID:      uuid.New(),
				Expires: time.Now().Add(constants.SessionDuration).Unix(),
			}
			tokenString, err := j.SignToken(s)
			if err != nil {
				l.Error("failed to sign session token", zap.Error(err))
				return c.NoContent(http.StatusInternalServerError)
			}
			c.SetCookie(&http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    tokenString,
				Path:     "/",
				Expires:  time.Unix(s.Expires, 0),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			c.Set(contextKeySession, &Session{ID: s.ID, State: session.Initial()})
			return next(c)
		}
	}
}

// GetSession 返回 SessionState 放入的会话，没有经过中间件时返回 nil
func GetSession(c echo.Context) *Session {
	s, _ := c.Get(contextKeySession).(*Session)
	return s
}
