package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

// RouteFilter holds the optional list filters; nil fields are skipped and
// set fields are ANDed together.
type RouteFilter struct {
	Status       *types.RouteStatus
	HeatCenterID *uuid.UUID
	DemandSiteID *uuid.UUID
}

type RouteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, route *types.Route) (*types.Route, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Route, error)
	List(ctx context.Context, tx *gorm.DB, filter RouteFilter, skip, limit int) ([]*types.Route, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	PairExists(ctx context.Context, tx *gorm.DB, heatCenterID, demandSiteID uuid.UUID) (bool, error)
	CountByHeatCenter(ctx context.Context, tx *gorm.DB, heatCenterID uuid.UUID) (int64, error)
	CountByDemandSite(ctx context.Context, tx *gorm.DB, demandSiteID uuid.UUID) (int64, error)
	ListByHeatCenter(ctx context.Context, tx *gorm.DB, heatCenterID uuid.UUID) ([]*types.Route, error)
	ListByDemandSite(ctx context.Context, tx *gorm.DB, demandSiteID uuid.UUID) ([]*types.Route, error)
	Count(ctx context.Context, tx *gorm.DB, status *types.RouteStatus) (int64, error)
	TotalDistance(ctx context.Context, tx *gorm.DB) (float64, error)
}

type routeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRouteRepo(db *gorm.DB, baseLog *logger.Logger) RouteRepo {
	return &routeRepo{db: db, log: baseLog.With("repo", "RouteRepo")}
}

func (r *routeRepo) Create(ctx context.Context, tx *gorm.DB, route *types.Route) (*types.Route, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(route).Error; err != nil {
		return nil, err
	}
	return route, nil
}

func (r *routeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Route, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var route types.Route
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeRepo) List(ctx context.Context, tx *gorm.DB, filter RouteFilter, skip, limit int) ([]*types.Route, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.Route{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.HeatCenterID != nil {
		query = query.Where("heat_center_id = ?", *filter.HeatCenterID)
	}
	if filter.DemandSiteID != nil {
		query = query.Where("demand_site_id = ?", *filter.DemandSiteID)
	}
	var results []*types.Route
	if err := query.Offset(skip).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *routeRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Route{}).Error
}

func (r *routeRepo) PairExists(ctx context.Context, tx *gorm.DB, heatCenterID, demandSiteID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Route{}).
		Where("heat_center_id = ? AND demand_site_id = ?", heatCenterID, demandSiteID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *routeRepo) CountByHeatCenter(ctx context.Context, tx *gorm.DB, heatCenterID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Route{}).
		Where("heat_center_id = ?", heatCenterID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *routeRepo) CountByDemandSite(ctx context.Context, tx *gorm.DB, demandSiteID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Route{}).
		Where("demand_site_id = ?", demandSiteID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *routeRepo) ListByHeatCenter(ctx context.Context, tx *gorm.DB, heatCenterID uuid.UUID) ([]*types.Route, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Route
	if err := transaction.WithContext(ctx).
		Where("heat_center_id = ?", heatCenterID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *routeRepo) ListByDemandSite(ctx context.Context, tx *gorm.DB, demandSiteID uuid.UUID) ([]*types.Route, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Route
	if err := transaction.WithContext(ctx).
		Where("demand_site_id = ?", demandSiteID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *routeRepo) Count(ctx context.Context, tx *gorm.DB, status *types.RouteStatus) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.Route{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *routeRepo) TotalDistance(ctx context.Context, tx *gorm.DB) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var sums struct {
		TotalDistance float64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Route{}).
		Select("COALESCE(SUM(distance_km), 0) AS total_distance").
		Scan(&sums).Error; err != nil {
		return 0, err
	}
	return sums.TotalDistance, nil
}
