package constants

import "time"

// 会话
const (
	SessionCookieName = "campo_session"
	SessionDuration   = 24 * time.Hour
)

// 启动时创建的管理员
const (
	AdminEmail    = "ADM@123"
	AdminPassword = "123456"
	AdminName     = "Administrador"
	AdminPhone    = "61986221356"
	AdminAddress  = "SAD"
	AdminAge      = 32
)
