package inits

import (
	"campo-cidade/app/server/models"
	"fmt"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"strings"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(dialector(conn), &gorm.Config{
		TranslateError: true, // 唯一约束冲突转换为 gorm.ErrDuplicatedKey
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func dialector(conn string) gorm.Dialector {
	if strings.HasPrefix(conn, "postgres://") || strings.HasPrefix(conn, "postgresql://") {
		return postgres.Open(conn)
	}

	// 嵌入式 SQLite 文件，需要手动开启外键约束
	if !strings.Contains(conn, "_pragma=foreign_keys") {
		if strings.Contains(conn, "?") {
			conn += "&_pragma=foreign_keys(1)"
		} else {
			conn += "?_pragma=foreign_keys(1)"
		}
	}
	return sqlite.Open(conn)
}

// usersBaseline 是 users 表最初的结构，没有 foto_perfil
type usersBaseline struct {
	ID       uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:nome;not null"`
	Age      *int   `gorm:"column:idade"`
	Phone    string `gorm:"column:telefone;not null"`
	Address  string `gorm:"column:endereco;not null"`
	Email    string `gorm:"column:email;unique;not null"`
	Password string `gorm:"column:senha;not null"`
	IsAdmin  bool   `gorm:"column:is_admin;not null;default:false"`
}

func (usersBaseline) TableName() string {
	return "users"
}

func mig(db *gorm.DB) error {
	// users 已在列表中，hortas / feed_hortas 的外键依赖不会再拉入完整的 models.User
	if err := db.AutoMigrate(
		&usersBaseline{},
		&models.Garden{},
		&models.FeedPost{},
	); err != nil {
		return err
	}

	// 后加字段：直接检查表中的列，不存在才添加
	return addColumnIfMissing(db, &models.User{}, "ProfilePhoto")
}

func addColumnIfMissing(db *gorm.DB, model any, field string) error {
	m := db.Migrator()
	if m.HasColumn(model, field) {
		return nil
	}

	if err := m.AddColumn(model, field); err != nil {
		return fmt.Errorf("failed to add column %s: %w", field, err)
	}

	return nil
}
