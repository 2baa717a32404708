package models

type User struct {
	ID uint `gorm:"column:user_id;primaryKey;autoIncrement"`

	// 基础信息
	Name    string `gorm:"column:nome;not null"`                   // 姓名
	Age     *int   `gorm:"column:idade"`                           // 年龄，可选
	Phone   string `gorm:"column:telefone;not null"`               // 电话
	Address string `gorm:"column:endereco;not null"`               // 地址
	Email   string `gorm:"column:email;unique;not null"`           // 邮箱，全局唯一，用于登录
	IsAdmin bool   `gorm:"column:is_admin;not null;default:false"` // 是否为管理员：只在启动时设置

	// 登录认证
	Password string `gorm:"column:senha;not null"` // 密码，使用 argon2id 储存

	// 头像路径，后加字段，由迁移补齐
	ProfilePhoto string `gorm:"column:foto_perfil;default:''"`
}

func (User) TableName() string {
	return "users"
}
