package repository

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

var _ backup.Store = (*Repository)(nil)

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

	repo, err := New(postgres.Open(dsn), logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := repo.DB.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return repo, nil
}

// New opens a repository on any gorm dialector. Driver errors are translated so unique
// violations surface as gorm.ErrDuplicatedKey.
func New(dialector gorm.Dialector, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &Repository{DB: db, Logger: logger}, nil
}

func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(&model.User{}, &model.Brand{}, &model.Bottle{}, &model.Tasting{}, &model.WishlistItem{})
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", backup.ErrConflict, err)
	}

	return err
}
