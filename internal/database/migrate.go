package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Sudharson1234/emotionv2/internal/model"
)

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Chat{},
		&model.GlobalChat{},
		&model.UserSession{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	return nil
}
