package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"modella_backend/internal/logger"
	"modella_backend/internal/models"
)

// ConnectPostgres открывает подключение к хранилищу пользователей
// и прогоняет миграции. TranslateError нужен, чтобы нарушение
// уникального индекса приходило как gorm.ErrDuplicatedKey, а не
// сырой *pgconn.PgError.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}

	logger.Info("postgres connected, migrations applied")
	return db, nil
}
