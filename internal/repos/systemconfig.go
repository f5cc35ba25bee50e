package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type SystemConfigRepo interface {
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.SystemConfig, error)
	GetByKey(ctx context.Context, tx *gorm.DB, key string) (*types.SystemConfig, error)
	Create(ctx context.Context, tx *gorm.DB, entry *types.SystemConfig) (*types.SystemConfig, error)
	Update(ctx context.Context, tx *gorm.DB, key string, updates map[string]interface{}) error
}

type systemConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSystemConfigRepo(db *gorm.DB, baseLog *logger.Logger) SystemConfigRepo {
	return &systemConfigRepo{db: db, log: baseLog.With("repo", "SystemConfigRepo")}
}

func (r *systemConfigRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.SystemConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SystemConfig
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *systemConfigRepo) GetByKey(ctx context.Context, tx *gorm.DB, key string) (*types.SystemConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var entry types.SystemConfig
	if err := transaction.WithContext(ctx).
		Where("config_key = ?", key).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *systemConfigRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.SystemConfig) (*types.SystemConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *systemConfigRepo) Update(ctx context.Context, tx *gorm.DB, key string, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.SystemConfig{}).
		Where("config_key = ?", key).
		Updates(updates).Error
}
