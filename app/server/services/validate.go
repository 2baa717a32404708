package services

import (
	"campo-cidade/app/server/models"
	"fmt"
	"gorm.io/gorm"
	"strings"
)

// 方法不能有类型形参，所以这个不能用 (s *Services)
func validateIDs[M models.User | models.Garden](db *gorm.DB, ids []uint) error {
	if len(ids) > 0 {
		var rows []M
		if err := db.Find(&rows, ids).Error; err != nil {
			// 查询失败
			return fmt.Errorf("find: %w", err)
		} else if len(rows) != len(ids) {
			// 数量对不上
			return ErrNotFound
		}
	}

	return nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
