package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

func createHeatCenter(t *testing.T, env *testEnv, req types.HeatCenterCreate) *types.HeatCenter {
	t.Helper()
	center, err := env.heatCenters.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create heat center: %v", err)
	}
	return center
}

func createDemandSite(t *testing.T, env *testEnv, req types.DemandSiteCreate) *types.DemandSite {
	t.Helper()
	site, err := env.demandSites.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create demand site: %v", err)
	}
	return site
}

func minimalHeatCenter(name string) types.HeatCenterCreate {
	return types.HeatCenterCreate{
		Name:          name,
		LocationLat:   floatPtr(59.33),
		LocationLng:   floatPtr(18.07),
		MaxCapacityMW: floatPtr(50),
	}
}

func minimalDemandSite(name string) types.DemandSiteCreate {
	return types.DemandSiteCreate{
		Name:         name,
		LocationLat:  floatPtr(59.31),
		LocationLng:  floatPtr(18.05),
		PeakDemandMW: floatPtr(12),
	}
}

func TestHeatCenterCreate_AppliesDefaults(t *testing.T) {
	env := newTestEnv(t)

	center := createHeatCenter(t, env, minimalHeatCenter("Plant A"))

	if center.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if center.CurrentOutputMW != 0 {
		t.Fatalf("expected current output default 0, got %v", center.CurrentOutputMW)
	}
	if center.EfficiencyPercent != 85.0 {
		t.Fatalf("expected efficiency default 85.0, got %v", center.EfficiencyPercent)
	}
	if !center.IsActive {
		t.Fatalf("expected is_active default true")
	}
}

func TestHeatCenterCreate_ExplicitValuesOverrideDefaults(t *testing.T) {
	env := newTestEnv(t)

	req := minimalHeatCenter("Plant B")
	req.CurrentOutputMW = floatPtr(33.5)
	req.EfficiencyPercent = floatPtr(92.1)
	req.IsActive = boolPtr(false)

	center := createHeatCenter(t, env, req)
	if center.CurrentOutputMW != 33.5 || center.EfficiencyPercent != 92.1 || center.IsActive {
		t.Fatalf("overrides not applied: %+v", center)
	}
}

func TestHeatCenterGet_UnknownIDReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.heatCenters.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHeatCenterUpdate_OnlyTouchesProvidedFields(t *testing.T) {
	env := newTestEnv(t)
	center := createHeatCenter(t, env, minimalHeatCenter("Plant C"))

	updated, err := env.heatCenters.Update(context.Background(), center.ID, map[string]json.RawMessage{
		"name":              json.RawMessage(`"Plant C Renamed"`),
		"current_output_mw": json.RawMessage(`41.5`),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Plant C Renamed" {
		t.Fatalf("expected renamed, got %q", updated.Name)
	}
	if updated.CurrentOutputMW != 41.5 {
		t.Fatalf("expected output 41.5, got %v", updated.CurrentOutputMW)
	}
	if updated.MaxCapacityMW != 50 || updated.EfficiencyPercent != 85.0 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestHeatCenterUpdate_AdvancesUpdatedAtAndKeepsCreatedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	center := createHeatCenter(t, env, minimalHeatCenter("Plant T"))

	time.Sleep(20 * time.Millisecond)

	updated, err := env.heatCenters.Update(ctx, center.ID, map[string]json.RawMessage{
		"current_output_mw": json.RawMessage(`12.5`),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(center.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", center.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(center.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %v -> %v", center.UpdatedAt, updated.UpdatedAt)
	}
}

func TestHeatCenterUpdate_IgnoresUnknownAndServerManagedKeys(t *testing.T) {
	env := newTestEnv(t)
	center := createHeatCenter(t, env, minimalHeatCenter("Plant D"))

	updated, err := env.heatCenters.Update(context.Background(), center.ID, map[string]json.RawMessage{
		"id":          json.RawMessage(`"` + uuid.NewString() + `"`),
		"bogus_field": json.RawMessage(`123`),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != center.ID {
		t.Fatalf("id changed")
	}
}

func TestHeatCenterUpdate_NullName_Rejected(t *testing.T) {
	env := newTestEnv(t)
	center := createHeatCenter(t, env, minimalHeatCenter("Plant E"))

	_, err := env.heatCenters.Update(context.Background(), center.ID, map[string]json.RawMessage{
		"name": json.RawMessage(`null`),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestHeatCenterUpdate_NullClearsNullableTimestamp(t *testing.T) {
	env := newTestEnv(t)
	center := createHeatCenter(t, env, minimalHeatCenter("Plant F"))

	updated, err := env.heatCenters.Update(context.Background(), center.ID, map[string]json.RawMessage{
		"commissioning_date": json.RawMessage(`"2020-09-10T00:00:00Z"`),
	})
	if err != nil {
		t.Fatalf("set date: %v", err)
	}
	if updated.CommissioningDate == nil {
		t.Fatalf("expected commissioning date set")
	}

	updated, err = env.heatCenters.Update(context.Background(), center.ID, map[string]json.RawMessage{
		"commissioning_date": json.RawMessage(`null`),
	})
	if err != nil {
		t.Fatalf("clear date: %v", err)
	}
	if updated.CommissioningDate != nil {
		t.Fatalf("expected commissioning date cleared, got %v", updated.CommissioningDate)
	}
}

func TestHeatCenterUpdate_UnknownIDReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.heatCenters.Update(context.Background(), uuid.New(), map[string]json.RawMessage{
		"name": json.RawMessage(`"x"`),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHeatCenterDelete_BlockedWhileRoutesExist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	center := createHeatCenter(t, env, minimalHeatCenter("Plant G"))
	site := createDemandSite(t, env, minimalDemandSite("Site G"))

	route, err := env.routes.Create(ctx, types.RouteCreate{
		HeatCenterID:      center.ID,
		DemandSiteID:      site.ID,
		DistanceKM:        floatPtr(1.5),
		MaxFlowCapacityMW: floatPtr(10),
	})
	if err != nil {
		t.Fatalf("create route: %v", err)
	}

	if err := env.heatCenters.Delete(ctx, center.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if err := env.routes.Delete(ctx, route.ID); err != nil {
		t.Fatalf("delete route: %v", err)
	}
	if err := env.heatCenters.Delete(ctx, center.ID); err != nil {
		t.Fatalf("expected delete to succeed after routes removed, got %v", err)
	}
	if _, err := env.heatCenters.Get(ctx, center.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected center gone, got %v", err)
	}
}

func TestHeatCenterList_FiltersActiveOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	createHeatCenter(t, env, minimalHeatCenter("Active Plant"))
	inactive := minimalHeatCenter("Idle Plant")
	inactive.IsActive = boolPtr(false)
	createHeatCenter(t, env, inactive)

	all, err := env.heatCenters.List(ctx, false, 0, DefaultListLimit)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 centers, got %d", len(all))
	}

	active, err := env.heatCenters.List(ctx, true, 0, DefaultListLimit)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Active Plant" {
		t.Fatalf("unexpected active list: %+v", active)
	}
}

func TestHeatCenterList_RejectsBadWindow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.heatCenters.List(ctx, false, -1, 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative skip: expected ErrValidation, got %v", err)
	}
	if _, err := env.heatCenters.List(ctx, false, 0, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero limit: expected ErrValidation, got %v", err)
	}
}
