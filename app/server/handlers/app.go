package handlers

import (
	"campo-cidade/app/server/images"
	"campo-cidade/app/server/jwt"
	"campo-cidade/app/server/services"
	"campo-cidade/app/server/session"
	"go.uber.org/zap"
)

type App struct {
	l        *zap.Logger        // 日志
	s        *services.Services // 业务逻辑
	sessions session.Store      // 会话状态
	jwt      *jwt.JWT           // JWT ，签发会话 cookie
	images   *images.Store      // 照片
}

func NewApp(l *zap.Logger, s *services.Services, sessions session.Store, j *jwt.JWT, imgs *images.Store) *App {
	return &App{
		l:        l,
		s:        s,
		sessions: sessions,
		jwt:      j,
		images:   imgs,
	}
}
