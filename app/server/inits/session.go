package inits

import (
	"campo-cidade/app/server/session"
)

// SessionStore 选择会话存储：配置了 Redis 时使用 Redis ，否则保存在进程内存中
func SessionStore(redisConn string) (session.Store, func() error, error) {
	if redisConn == "" {
		return session.NewMemoryStore(), func() error { return nil }, nil
	}

	rdb, err := Redis(redisConn)
	if err != nil {
		return nil, nil, err
	}

	return session.NewRedisStore(rdb), rdb.Close, nil
}
