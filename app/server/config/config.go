package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // 数据库连接：SQLite 文件路径，或 postgres:// 开头的连接字符串
		RedisConnectionString string // Redis 连接字符串，留空则会话保存在进程内存中
	}
	Storage struct {
		UploadDir string // 上传的用户 / 菜园照片
		ImagesDir string // 默认占位图片
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于会话 JWT ，更新会导致旧有会话失效
	}
	Admin struct {
		Email    string // 启动时创建的管理员账号（保留标识）
		Password string // 管理员初始密码，不会自动轮换
	}
}
