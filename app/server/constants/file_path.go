package constants

// 数据库
const (
	DefaultDatabaseFile = "database.db"
)

// 图片目录
const (
	UploadDir = "uploads" // 用户上传的照片
	ImagesDir = "imagens" // 默认占位图片
)

// 上传文件名，按实体 ID 确定，重复上传直接覆盖
const (
	UserPhotoName   = "user_%d.jpg"  // %d -> user id
	GardenPhotoName = "horta_%d.jpg" // %d -> owner id (创建时) 或 horta id (更新时)
)

// 默认图片
const (
	DefaultUserImageName   = "default-user.jpg"
	DefaultGardenImageName = "default-horta.jpg"
)
