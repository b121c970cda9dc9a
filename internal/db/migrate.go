package db

import (
	"fmt"

	"hostpanel/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(gdb *gorm.DB) error {
	models := []interface{}{
		&model.User{},
		&model.Component{},
		&model.SyncLog{},
		&model.AdminActionLog{},
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Infof("database migration completed (%d tables)", len(models))
	return nil
}
