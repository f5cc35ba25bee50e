package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type HeatCenterRepo interface {
	Create(ctx context.Context, tx *gorm.DB, center *types.HeatCenter) (*types.HeatCenter, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.HeatCenter, error)
	List(ctx context.Context, tx *gorm.DB, activeOnly bool, skip, limit int) ([]*types.HeatCenter, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.HeatCenter, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB, activeOnly bool) (int64, error)
	CapacityTotals(ctx context.Context, tx *gorm.DB) (totalCapacity, currentOutput float64, err error)
}

type heatCenterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHeatCenterRepo(db *gorm.DB, baseLog *logger.Logger) HeatCenterRepo {
	return &heatCenterRepo{db: db, log: baseLog.With("repo", "HeatCenterRepo")}
}

func (r *heatCenterRepo) Create(ctx context.Context, tx *gorm.DB, center *types.HeatCenter) (*types.HeatCenter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(center).Error; err != nil {
		return nil, err
	}
	return center, nil
}

func (r *heatCenterRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.HeatCenter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var center types.HeatCenter
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *heatCenterRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool, skip, limit int) ([]*types.HeatCenter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.HeatCenter{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var results []*types.HeatCenter
	if err := query.Offset(skip).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *heatCenterRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.HeatCenter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.HeatCenter{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, transaction, id)
}

func (r *heatCenterRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.HeatCenter{}).Error
}

func (r *heatCenterRepo) Count(ctx context.Context, tx *gorm.DB, activeOnly bool) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.HeatCenter{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *heatCenterRepo) CapacityTotals(ctx context.Context, tx *gorm.DB) (float64, float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var sums struct {
		TotalCapacity float64
		CurrentOutput float64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.HeatCenter{}).
		Select("COALESCE(SUM(max_capacity_mw), 0) AS total_capacity, COALESCE(SUM(current_output_mw), 0) AS current_output").
		Scan(&sums).Error; err != nil {
		return 0, 0, err
	}
	return sums.TotalCapacity, sums.CurrentOutput, nil
}
