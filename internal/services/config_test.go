package services

import (
	"context"
	"reflect"
	"testing"
)

func TestConfigGetActive_EmptyStoreReturnsDefaults(t *testing.T) {
	env := newTestEnv(t)

	cfg, err := env.config.GetActive(context.Background())
	if err != nil {
		t.Fatalf("get active: %v", err)
	}

	want := map[string]interface{}{
		"default_zoom":     10,
		"center_lat":       59.3293,
		"center_lng":       18.0686,
		"heat_center_icon": "power-plant",
		"demand_site_icon": "building",
		"route_color":      "#ff4444",
		"route_width":      3,
		"max_zoom":         18,
		"min_zoom":         5,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("defaults mismatch:\n got %#v\nwant %#v", cfg, want)
	}
}

func TestConfigGetActive_CoercesByTypeTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	entries := []struct {
		key, value, configType string
	}{
		{"default_zoom", "12", "integer"},
		{"center_lat", "48.8566", "float"},
		{"cluster_markers", "yes", "boolean"},
		{"show_legend", "nope", "boolean"},
		{"theme", "dark", "string"},
		{"layer_order", `["routes","sites"]`, "json"},
	}
	for _, e := range entries {
		if err := env.config.Set(ctx, e.key, e.value, e.configType, ""); err != nil {
			t.Fatalf("set %s: %v", e.key, err)
		}
	}

	cfg, err := env.config.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if len(cfg) != len(entries) {
		t.Fatalf("expected %d entries (no defaults once store is populated), got %d", len(entries), len(cfg))
	}
	if cfg["default_zoom"] != 12 {
		t.Fatalf("expected integer 12, got %#v", cfg["default_zoom"])
	}
	if cfg["center_lat"] != 48.8566 {
		t.Fatalf("expected float 48.8566, got %#v", cfg["center_lat"])
	}
	if cfg["cluster_markers"] != true {
		t.Fatalf("expected boolean true for %q, got %#v", "yes", cfg["cluster_markers"])
	}
	if cfg["show_legend"] != false {
		t.Fatalf("expected boolean false for unrecognized value, got %#v", cfg["show_legend"])
	}
	if cfg["theme"] != "dark" {
		t.Fatalf("expected string passthrough, got %#v", cfg["theme"])
	}
	if !reflect.DeepEqual(cfg["layer_order"], []interface{}{"routes", "sites"}) {
		t.Fatalf("expected decoded json array, got %#v", cfg["layer_order"])
	}
}

func TestConfigGetActive_MalformedJSONFailsWholeRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.config.Set(ctx, "theme", "dark", "string", ""); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := env.config.Set(ctx, "layer_order", "{not json", "json", ""); err != nil {
		t.Fatalf("set layer_order: %v", err)
	}

	if _, err := env.config.GetActive(ctx); err == nil {
		t.Fatalf("expected read to fail on malformed json entry")
	}
}

func TestConfigSet_UpsertsExistingKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.config.Set(ctx, "default_zoom", "10", "integer", "Initial zoom level"); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := env.config.Set(ctx, "default_zoom", "14", "integer", ""); err != nil {
		t.Fatalf("second set: %v", err)
	}

	cfg, err := env.config.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if cfg["default_zoom"] != 14 {
		t.Fatalf("expected overwritten value 14, got %#v", cfg["default_zoom"])
	}
}

func TestConfigSet_ValueTypeCanChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.config.Set(ctx, "route_width", "3", "integer", ""); err != nil {
		t.Fatalf("set integer: %v", err)
	}
	if err := env.config.Set(ctx, "route_width", "3.5", "float", ""); err != nil {
		t.Fatalf("retype to float: %v", err)
	}

	cfg, err := env.config.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if cfg["route_width"] != 3.5 {
		t.Fatalf("expected retyped float 3.5, got %#v", cfg["route_width"])
	}
}

func TestConfigSet_RejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.config.Set(ctx, "", "x", "string", ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if err := env.config.Set(ctx, "theme", "dark", "color", ""); err == nil {
		t.Fatalf("expected error for unknown config type")
	}
}
