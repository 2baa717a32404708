// Package services 实现注册登录、菜园增删改查、动态发布和管理员操作。
//
// 每个操作只使用一次短连接：单条语句自动提交，多条语句放在一个在返回前提交的事务中。
package services

import (
	"campo-cidade/app/server/images"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"time"
)

type Services struct {
	l      *zap.Logger
	db     *gorm.DB
	images *images.Store
	now    func() time.Time
}

func New(l *zap.Logger, db *gorm.DB, imgs *images.Store) *Services {
	return &Services{
		l:      l,
		db:     db,
		images: imgs,
		now:    time.Now,
	}
}
