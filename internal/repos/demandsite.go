package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type DemandSiteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, site *types.DemandSite) (*types.DemandSite, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DemandSite, error)
	List(ctx context.Context, tx *gorm.DB, connectedOnly bool, siteType string, skip, limit int) ([]*types.DemandSite, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.DemandSite, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB, connectedOnly bool) (int64, error)
	DemandTotals(ctx context.Context, tx *gorm.DB) (peakDemand, currentDemand float64, err error)
}

type demandSiteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDemandSiteRepo(db *gorm.DB, baseLog *logger.Logger) DemandSiteRepo {
	return &demandSiteRepo{db: db, log: baseLog.With("repo", "DemandSiteRepo")}
}

func (r *demandSiteRepo) Create(ctx context.Context, tx *gorm.DB, site *types.DemandSite) (*types.DemandSite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(site).Error; err != nil {
		return nil, err
	}
	return site, nil
}

func (r *demandSiteRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DemandSite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var site types.DemandSite
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *demandSiteRepo) List(ctx context.Context, tx *gorm.DB, connectedOnly bool, siteType string, skip, limit int) ([]*types.DemandSite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.DemandSite{})
	if connectedOnly {
		query = query.Where("is_connected = ?", true)
	}
	if siteType != "" {
		query = query.Where("site_type = ?", siteType)
	}
	var results []*types.DemandSite
	if err := query.Offset(skip).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *demandSiteRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.DemandSite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.DemandSite{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, transaction, id)
}

func (r *demandSiteRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.DemandSite{}).Error
}

func (r *demandSiteRepo) Count(ctx context.Context, tx *gorm.DB, connectedOnly bool) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.DemandSite{})
	if connectedOnly {
		query = query.Where("is_connected = ?", true)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *demandSiteRepo) DemandTotals(ctx context.Context, tx *gorm.DB) (float64, float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var sums struct {
		PeakDemand    float64
		CurrentDemand float64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.DemandSite{}).
		Select("COALESCE(SUM(peak_demand_mw), 0) AS peak_demand, COALESCE(SUM(current_demand_mw), 0) AS current_demand").
		Scan(&sums).Error; err != nil {
		return 0, 0, err
	}
	return sums.PeakDemand, sums.CurrentDemand, nil
}
