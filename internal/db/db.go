package db

import (
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yusufstudio18-creator-1/yusuf-market/internal/models"
)

// Open открывает sqlite-файл по пути и создаёт схему, если её ещё нет.
func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	if err := gdb.AutoMigrate(&models.Seller{}, &models.Product{}); err != nil {
		return nil, errors.Wrap(err, "automigrate")
	}
	return gdb, nil
}
