package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/db"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/utils"
)

// fixtures is the seed dataset. Routes reference heat centers and demand
// sites by their position in the respective lists, so a YAML override file
// can describe a whole network without knowing generated IDs.
type fixtures struct {
	HeatCenters []heatCenterFixture `yaml:"heat_centers"`
	DemandSites []demandSiteFixture `yaml:"demand_sites"`
	Routes      []routeFixture      `yaml:"routes"`
}

type heatCenterFixture struct {
	Name              string  `yaml:"name"`
	LocationLat       float64 `yaml:"location_lat"`
	LocationLng       float64 `yaml:"location_lng"`
	Address           string  `yaml:"address"`
	MaxCapacityMW     float64 `yaml:"max_capacity_mw"`
	CurrentOutputMW   float64 `yaml:"current_output_mw"`
	EfficiencyPercent float64 `yaml:"efficiency_percent"`
	FuelType          string  `yaml:"fuel_type"`
	CommissioningDate string  `yaml:"commissioning_date"`
	MaintenanceAgeDay int     `yaml:"last_maintenance_days_ago"`
	Description       string  `yaml:"description"`
}

type demandSiteFixture struct {
	Name                 string   `yaml:"name"`
	LocationLat          float64  `yaml:"location_lat"`
	LocationLng          float64  `yaml:"location_lng"`
	Address              string   `yaml:"address"`
	SiteType             string   `yaml:"site_type"`
	PeakDemandMW         float64  `yaml:"peak_demand_mw"`
	CurrentDemandMW      float64  `yaml:"current_demand_mw"`
	AnnualConsumptionMWH *float64 `yaml:"annual_consumption_mwh"`
	IsConnected          bool     `yaml:"is_connected"`
	ConnectionDate       string   `yaml:"connection_date"`
	PriorityLevel        int      `yaml:"priority_level"`
	FloorAreaSqm         *float64 `yaml:"floor_area_sqm"`
	BuildingAgeYears     *int     `yaml:"building_age_years"`
	InsulationRating     string   `yaml:"insulation_rating"`
	Description          string   `yaml:"description"`
}

type routeFixture struct {
	HeatCenter            int      `yaml:"heat_center"`
	DemandSite            int      `yaml:"demand_site"`
	DistanceKM            float64  `yaml:"distance_km"`
	PipeDiameterMM        *int     `yaml:"pipe_diameter_mm"`
	MaxFlowCapacityMW     float64  `yaml:"max_flow_capacity_mw"`
	CurrentFlowMW         float64  `yaml:"current_flow_mw"`
	SupplyTempCelsius     float64  `yaml:"supply_temp_celsius"`
	ReturnTempCelsius     float64  `yaml:"return_temp_celsius"`
	PressureBar           float64  `yaml:"pressure_bar"`
	HeatLossPercent       float64  `yaml:"heat_loss_percent"`
	InstallationYear      *int     `yaml:"installation_year"`
	PipeMaterial          string   `yaml:"pipe_material"`
	InsulationType        string   `yaml:"insulation_type"`
	Status                string   `yaml:"status"`
	MaintenanceDueDays    int      `yaml:"maintenance_due_days"`
	ConstructionCost      *float64 `yaml:"construction_cost"`
	AnnualMaintenanceCost *float64 `yaml:"annual_maintenance_cost"`
}

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbCfg := db.Config{
		Driver:     utils.GetEnv("DATABASE_DRIVER", "sqlite", log),
		Host:       utils.GetEnv("DATABASE_HOST", "localhost", log),
		Port:       utils.GetEnv("DATABASE_PORT", "5432", log),
		User:       utils.GetEnv("DATABASE_USER", "postgres", log),
		Password:   utils.GetEnv("DATABASE_PASSWORD", "postgres", log),
		Name:       utils.GetEnv("DATABASE_NAME", "district_heating", log),
		SqlitePath: utils.GetEnv("DATABASE_SQLITE_PATH", "district_heating.db", log),
	}
	dbService, err := db.New(dbCfg, log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}

	fx := defaultFixtures()
	if path := os.Getenv("SEED_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Error("Failed to read seed file", "error", err, "path", path)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(raw, &fx); err != nil {
			log.Error("Failed to parse seed file", "error", err, "path", path)
			os.Exit(1)
		}
		log.Info("Loaded seed fixtures from file", "path", path)
	}

	if err := seed(context.Background(), dbService.DB(), log, fx); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("Database seeded successfully",
		"heat_centers", len(fx.HeatCenters),
		"demand_sites", len(fx.DemandSites),
		"routes", len(fx.Routes),
	)
}

// seed loads in three stages, like the original loader: clear, then the two
// independent entity batches, then routes. Heat centers and demand sites have
// no dependency on each other, so their build+insert pipelines run
// concurrently on separate connections.
func seed(ctx context.Context, handle *gorm.DB, log *logger.Logger, fx fixtures) error {
	// Routes go first so the FK targets can be cleared after.
	for _, model := range []interface{}{&types.Route{}, &types.DemandSite{}, &types.HeatCenter{}} {
		if err := handle.WithContext(ctx).Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	centers := make([]*types.HeatCenter, len(fx.HeatCenters))
	sites := make([]*types.DemandSite, len(fx.DemandSites))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i, f := range fx.HeatCenters {
			center, err := buildHeatCenter(f)
			if err != nil {
				return err
			}
			centers[i] = center
		}
		if len(centers) == 0 {
			return nil
		}
		if err := handle.WithContext(gctx).Create(centers).Error; err != nil {
			return fmt.Errorf("insert heat centers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		for i, f := range fx.DemandSites {
			site, err := buildDemandSite(f)
			if err != nil {
				return err
			}
			sites[i] = site
		}
		if len(sites) == 0 {
			return nil
		}
		if err := handle.WithContext(gctx).Create(sites).Error; err != nil {
			return fmt.Errorf("insert demand sites: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, f := range fx.Routes {
		if f.HeatCenter < 0 || f.HeatCenter >= len(centers) {
			return fmt.Errorf("route references heat center index %d out of range", f.HeatCenter)
		}
		if f.DemandSite < 0 || f.DemandSite >= len(sites) {
			return fmt.Errorf("route references demand site index %d out of range", f.DemandSite)
		}
		route, err := buildRoute(f, centers[f.HeatCenter].ID, sites[f.DemandSite].ID)
		if err != nil {
			return err
		}
		if err := handle.WithContext(ctx).Create(route).Error; err != nil {
			return fmt.Errorf("insert route: %w", err)
		}
	}
	return nil
}

func buildHeatCenter(f heatCenterFixture) (*types.HeatCenter, error) {
	commissioned, err := parseDate(f.CommissioningDate)
	if err != nil {
		return nil, fmt.Errorf("heat center %q: %w", f.Name, err)
	}
	lastMaintenance := daysAgo(f.MaintenanceAgeDay)
	return &types.HeatCenter{
		ID:                uuid.New(),
		Name:              f.Name,
		LocationLat:       f.LocationLat,
		LocationLng:       f.LocationLng,
		Address:           f.Address,
		MaxCapacityMW:     f.MaxCapacityMW,
		CurrentOutputMW:   f.CurrentOutputMW,
		EfficiencyPercent: f.EfficiencyPercent,
		FuelType:          f.FuelType,
		IsActive:          true,
		CommissioningDate: commissioned,
		LastMaintenance:   lastMaintenance,
		Description:       f.Description,
	}, nil
}

func buildDemandSite(f demandSiteFixture) (*types.DemandSite, error) {
	connected, err := parseDate(f.ConnectionDate)
	if err != nil {
		return nil, fmt.Errorf("demand site %q: %w", f.Name, err)
	}
	return &types.DemandSite{
		ID:                   uuid.New(),
		Name:                 f.Name,
		LocationLat:          f.LocationLat,
		LocationLng:          f.LocationLng,
		Address:              f.Address,
		SiteType:             f.SiteType,
		PeakDemandMW:         f.PeakDemandMW,
		CurrentDemandMW:      f.CurrentDemandMW,
		AnnualConsumptionMWH: f.AnnualConsumptionMWH,
		IsConnected:          f.IsConnected,
		ConnectionDate:       connected,
		PriorityLevel:        f.PriorityLevel,
		FloorAreaSqm:         f.FloorAreaSqm,
		BuildingAgeYears:     f.BuildingAgeYears,
		InsulationRating:     f.InsulationRating,
		Description:          f.Description,
	}, nil
}

func buildRoute(f routeFixture, heatCenterID, demandSiteID uuid.UUID) (*types.Route, error) {
	status := types.RouteStatus(f.Status)
	if f.Status == "" {
		status = types.RouteStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("route has unknown status %q", f.Status)
	}
	var due *time.Time
	if f.MaintenanceDueDays > 0 {
		t := time.Now().AddDate(0, 0, f.MaintenanceDueDays)
		due = &t
	}
	return &types.Route{
		ID:                    uuid.New(),
		HeatCenterID:          heatCenterID,
		DemandSiteID:          demandSiteID,
		DistanceKM:            f.DistanceKM,
		PipeDiameterMM:        f.PipeDiameterMM,
		MaxFlowCapacityMW:     f.MaxFlowCapacityMW,
		CurrentFlowMW:         f.CurrentFlowMW,
		SupplyTempCelsius:     f.SupplyTempCelsius,
		ReturnTempCelsius:     f.ReturnTempCelsius,
		PressureBar:           f.PressureBar,
		HeatLossPercent:       f.HeatLossPercent,
		InstallationYear:      f.InstallationYear,
		PipeMaterial:          f.PipeMaterial,
		InsulationType:        f.InsulationType,
		Status:                status,
		IsBidirectional:       false,
		MaintenanceDue:        due,
		ConstructionCost:      f.ConstructionCost,
		AnnualMaintenanceCost: f.AnnualMaintenanceCost,
	}, nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return &t, nil
}

func daysAgo(days int) *time.Time {
	if days <= 0 {
		return nil
	}
	t := time.Now().AddDate(0, 0, -days)
	return &t
}

func defaultFixtures() fixtures {
	fp := func(v float64) *float64 { return &v }
	ip := func(v int) *int { return &v }
	return fixtures{
		HeatCenters: []heatCenterFixture{
			{
				Name:              "Digital Realty Heat Center - 365 Main",
				LocationLat:       37.7879,
				LocationLng:       -122.3972,
				Address:           "365 Main Street, San Francisco, CA 94105",
				MaxCapacityMW:     45.0,
				CurrentOutputMW:   32.5,
				EfficiencyPercent: 88.5,
				FuelType:          "Natural Gas",
				CommissioningDate: "2001-06-15",
				MaintenanceAgeDay: 30,
				Description:       "Premier district heating facility in downtown San Francisco with high-efficiency cogeneration system.",
			},
			{
				Name:              "Digital Realty Heat Center - 200 Paul",
				LocationLat:       37.7529,
				LocationLng:       -122.3890,
				Address:           "200 Paul Avenue, San Francisco, CA 94124",
				MaxCapacityMW:     75.0,
				CurrentOutputMW:   58.2,
				EfficiencyPercent: 91.2,
				FuelType:          "Biomass",
				CommissioningDate: "2000-03-20",
				MaintenanceAgeDay: 15,
				Description:       "Large-scale biomass heating facility serving industrial and residential areas.",
			},
			{
				Name:              "Fortress Green Heat Center",
				LocationLat:       37.7749,
				LocationLng:       -122.4094,
				Address:           "274 Brannan Street, San Francisco, CA 94107",
				MaxCapacityMW:     35.0,
				CurrentOutputMW:   28.7,
				EfficiencyPercent: 94.1,
				FuelType:          "Geothermal",
				CommissioningDate: "2020-09-10",
				MaintenanceAgeDay: 7,
				Description:       "Modern geothermal heating system with advanced heat pump technology.",
			},
			{
				Name:              "Colocation Heat Hub - Paul Ave",
				LocationLat:       37.7530,
				LocationLng:       -122.3885,
				Address:           "200 Paul Ave, San Francisco, CA 94124",
				MaxCapacityMW:     25.0,
				CurrentOutputMW:   19.8,
				EfficiencyPercent: 86.7,
				FuelType:          "Solar Thermal",
				CommissioningDate: "2015-11-05",
				MaintenanceAgeDay: 45,
				Description:       "Solar thermal heating system with backup natural gas boilers.",
			},
		},
		DemandSites: []demandSiteFixture{
			{
				Name:                 "Marriott Downtown Hotel",
				LocationLat:          37.7851,
				LocationLng:          -122.4020,
				Address:              "55 4th Street, San Francisco, CA 94103",
				SiteType:             "Hotel",
				PeakDemandMW:         8.5,
				CurrentDemandMW:      6.2,
				AnnualConsumptionMWH: fp(45600),
				IsConnected:          true,
				ConnectionDate:       "2018-04-12",
				PriorityLevel:        2,
				FloorAreaSqm:         fp(35000),
				BuildingAgeYears:     ip(15),
				InsulationRating:     "B+",
				Description:          "Large downtown hotel with 500 rooms requiring consistent heating and hot water.",
			},
			{
				Name:                 "SOMA Residential Complex",
				LocationLat:          37.7749,
				LocationLng:          -122.4194,
				Address:              "123 Folsom Street, San Francisco, CA 94107",
				SiteType:             "Residential",
				PeakDemandMW:         12.3,
				CurrentDemandMW:      8.9,
				AnnualConsumptionMWH: fp(67800),
				IsConnected:          true,
				ConnectionDate:       "2019-08-22",
				PriorityLevel:        1,
				FloorAreaSqm:         fp(48000),
				BuildingAgeYears:     ip(8),
				InsulationRating:     "A",
				Description:          "Modern residential complex with 200 units and energy-efficient design.",
			},
			{
				Name:                 "Financial District Office Tower",
				LocationLat:          37.7946,
				LocationLng:          -122.3999,
				Address:              "101 California Street, San Francisco, CA 94111",
				SiteType:             "Commercial",
				PeakDemandMW:         15.7,
				CurrentDemandMW:      11.4,
				AnnualConsumptionMWH: fp(89200),
				IsConnected:          true,
				ConnectionDate:       "2017-02-08",
				PriorityLevel:        2,
				FloorAreaSqm:         fp(62000),
				BuildingAgeYears:     ip(25),
				InsulationRating:     "B",
				Description:          "High-rise office building with modern HVAC systems and high heating demands.",
			},
			{
				Name:                 "Mission Bay Hospital",
				LocationLat:          37.7665,
				LocationLng:          -122.3927,
				Address:              "1825 4th Street, San Francisco, CA 94158",
				SiteType:             "Healthcare",
				PeakDemandMW:         22.1,
				CurrentDemandMW:      18.5,
				AnnualConsumptionMWH: fp(125400),
				IsConnected:          false,
				PriorityLevel:        1,
				FloorAreaSqm:         fp(85000),
				BuildingAgeYears:     ip(12),
				InsulationRating:     "A-",
				Description:          "Major medical facility requiring reliable heating for patient care and sterilization.",
			},
			{
				Name:                 "Bayview Industrial Park",
				LocationLat:          37.7380,
				LocationLng:          -122.3916,
				Address:              "2000 3rd Street, San Francisco, CA 94124",
				SiteType:             "Industrial",
				PeakDemandMW:         28.9,
				CurrentDemandMW:      21.7,
				AnnualConsumptionMWH: fp(156800),
				IsConnected:          false,
				PriorityLevel:        3,
				FloorAreaSqm:         fp(120000),
				BuildingAgeYears:     ip(35),
				InsulationRating:     "C+",
				Description:          "Large industrial facility with manufacturing processes requiring process heating.",
			},
		},
		Routes: []routeFixture{
			{
				HeatCenter:            0,
				DemandSite:            0,
				DistanceKM:            0.8,
				PipeDiameterMM:        ip(300),
				MaxFlowCapacityMW:     10.0,
				CurrentFlowMW:         6.2,
				SupplyTempCelsius:     85.0,
				ReturnTempCelsius:     45.0,
				PressureBar:           18.0,
				HeatLossPercent:       1.8,
				InstallationYear:      ip(2018),
				PipeMaterial:          "Pre-insulated steel",
				InsulationType:        "Polyurethane foam",
				Status:                "active",
				MaintenanceDueDays:    180,
				ConstructionCost:      fp(450000),
				AnnualMaintenanceCost: fp(12000),
			},
			{
				HeatCenter:            2,
				DemandSite:            1,
				DistanceKM:            1.2,
				PipeDiameterMM:        ip(400),
				MaxFlowCapacityMW:     15.0,
				CurrentFlowMW:         8.9,
				SupplyTempCelsius:     80.0,
				ReturnTempCelsius:     40.0,
				PressureBar:           16.0,
				HeatLossPercent:       2.1,
				InstallationYear:      ip(2019),
				PipeMaterial:          "Pre-insulated steel",
				InsulationType:        "Mineral wool",
				Status:                "active",
				MaintenanceDueDays:    90,
				ConstructionCost:      fp(680000),
				AnnualMaintenanceCost: fp(18500),
			},
			{
				HeatCenter:            1,
				DemandSite:            2,
				DistanceKM:            2.1,
				PipeDiameterMM:        ip(450),
				MaxFlowCapacityMW:     20.0,
				CurrentFlowMW:         11.4,
				SupplyTempCelsius:     90.0,
				ReturnTempCelsius:     50.0,
				PressureBar:           20.0,
				HeatLossPercent:       3.2,
				InstallationYear:      ip(2017),
				PipeMaterial:          "Pre-insulated steel",
				InsulationType:        "Polyurethane foam",
				Status:                "active",
				MaintenanceDueDays:    45,
				ConstructionCost:      fp(1200000),
				AnnualMaintenanceCost: fp(28000),
			},
		},
	}
}
