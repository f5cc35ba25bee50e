package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/handlers"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	handle, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = handle.AutoMigrate(
		&types.HeatCenter{},
		&types.DemandSite{},
		&types.Route{},
		&types.SystemConfig{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	heatCenterRepo := repos.NewHeatCenterRepo(handle, log)
	demandSiteRepo := repos.NewDemandSiteRepo(handle, log)
	routeRepo := repos.NewRouteRepo(handle, log)
	configRepo := repos.NewSystemConfigRepo(handle, log)

	heatCenterService := services.NewHeatCenterService(handle, log, heatCenterRepo, routeRepo)
	demandSiteService := services.NewDemandSiteService(handle, log, demandSiteRepo, routeRepo)
	routeService := services.NewRouteService(handle, log, routeRepo, heatCenterRepo, demandSiteRepo)
	analyticsService := services.NewAnalyticsService(handle, log, heatCenterRepo, demandSiteRepo, routeRepo, heatCenterService, demandSiteService)
	configService := services.NewConfigService(handle, log, configRepo)

	return NewRouter(RouterConfig{
		HeatCenterHandler: handlers.NewHeatCenterHandler(log, heatCenterService),
		DemandSiteHandler: handlers.NewDemandSiteHandler(log, demandSiteService),
		RouteHandler:      handlers.NewRouteHandler(log, routeService),
		AnalyticsHandler:  handlers.NewAnalyticsHandler(log, analyticsService),
		ConfigHandler:     handlers.NewConfigHandler(log, configService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "healthy" {
		t.Fatalf("expected healthy status, got %#v", body)
	}
	if body["version"] != handlers.APIVersion {
		t.Fatalf("expected version %q, got %#v", handlers.APIVersion, body["version"])
	}
}

func TestHeatCenterLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/heat-centers", map[string]any{
		"name":            "Plant A",
		"location_lat":    59.33,
		"location_lng":    18.07,
		"max_capacity_mw": 45.0,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("expected generated id in response: %#v", created)
	}
	if created["efficiency_percent"] != 85.0 {
		t.Fatalf("expected default efficiency in response, got %#v", created["efficiency_percent"])
	}

	rec = doJSON(t, router, http.MethodGet, "/heat-centers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 center, got %d", len(list))
	}

	rec = doJSON(t, router, http.MethodPut, "/heat-centers/"+id, map[string]any{
		"current_output_mw": 32.5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody(t, rec)
	if updated["current_output_mw"] != 32.5 {
		t.Fatalf("expected updated output, got %#v", updated["current_output_mw"])
	}
	if updated["name"] != "Plant A" {
		t.Fatalf("untouched field changed: %#v", updated["name"])
	}

	rec = doJSON(t, router, http.MethodDelete, "/heat-centers/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "Heat center deleted successfully" {
		t.Fatalf("unexpected delete message: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/heat-centers/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestHeatCenterCreate_MissingRequiredFieldIs400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/heat-centers", map[string]any{
		"location_lat": 59.33,
		"location_lng": 18.07,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope handlers.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed code, got %q", envelope.Error.Code)
	}
}

func TestHeatCenterGet_MalformedIDIs400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/heat-centers/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouteDuplicatePairIs400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/heat-centers", map[string]any{
		"name": "Plant", "location_lat": 1.0, "location_lng": 2.0, "max_capacity_mw": 10.0,
	})
	centerID := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/demand-sites", map[string]any{
		"name": "Site", "location_lat": 1.0, "location_lng": 2.0, "peak_demand_mw": 5.0,
	})
	siteID := decodeBody(t, rec)["id"].(string)

	payload := map[string]any{
		"heat_center_id":       centerID,
		"demand_site_id":       siteID,
		"distance_km":          1.2,
		"max_flow_capacity_mw": 8.0,
	}
	rec = doJSON(t, router, http.MethodPost, "/routes", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first route: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/routes", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate route: expected 400, got %d", rec.Code)
	}

	// The existing route also blocks deleting either endpoint.
	rec = doJSON(t, router, http.MethodDelete, "/heat-centers/"+centerID, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("delete connected center: expected 400, got %d", rec.Code)
	}
}

func TestAnalyticsOverviewEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/heat-centers", map[string]any{
		"name": "Plant", "location_lat": 1.0, "location_lng": 2.0,
		"max_capacity_mw": 100.0, "current_output_mw": 50.0,
	})

	rec := doJSON(t, router, http.MethodGet, "/analytics/overview", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	capacity, ok := body["capacity"].(map[string]any)
	if !ok {
		t.Fatalf("missing capacity section: %#v", body)
	}
	if capacity["capacity_utilization_percent"] != 50.0 {
		t.Fatalf("expected 50%% utilization, got %#v", capacity["capacity_utilization_percent"])
	}
}

func TestConfigEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/config", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	mapCfg, ok := body["map_config"].(map[string]any)
	if !ok {
		t.Fatalf("missing map_config: %#v", body)
	}
	if mapCfg["route_color"] != "#ff4444" {
		t.Fatalf("expected default route color, got %#v", mapCfg["route_color"])
	}

	rec = doJSON(t, router, http.MethodPost, "/config?config_key=default_zoom&config_value=13&config_type=integer", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["message"] != "Configuration 'default_zoom' updated successfully" {
		t.Fatalf("unexpected message: %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/config", nil)
	body = decodeBody(t, rec)
	mapCfg = body["map_config"].(map[string]any)
	if mapCfg["default_zoom"] != 13.0 {
		t.Fatalf("expected stored zoom 13, got %#v", mapCfg["default_zoom"])
	}
	if _, present := mapCfg["route_color"]; present {
		t.Fatalf("defaults should not merge with stored entries: %#v", mapCfg)
	}
}
