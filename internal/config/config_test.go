package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
	if cfg.APIOrigin != "https://api.dictionaryapi.dev" {
		t.Errorf("APIOrigin = %q", cfg.APIOrigin)
	}
	if cfg.LookupTTL != time.Hour {
		t.Errorf("LookupTTL = %v", cfg.LookupTTL)
	}
	if cfg.LookupMaxEntries != 50 {
		t.Errorf("LookupMaxEntries = %d", cfg.LookupMaxEntries)
	}
	if cfg.CacheVersion != "v1" {
		t.Errorf("CacheVersion = %q", cfg.CacheVersion)
	}
	if !cfg.IsDev() {
		t.Error("expected default env to be development")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOOKUP_CACHE_TTL", "30m")
	t.Setenv("LOOKUP_CACHE_MAX_ENTRIES", "10")
	t.Setenv("CACHE_VERSION", "v7")

	cfg := Load()
	if cfg.IsDev() {
		t.Error("expected production env")
	}
	if cfg.LookupTTL != 30*time.Minute {
		t.Errorf("LookupTTL = %v", cfg.LookupTTL)
	}
	if cfg.LookupMaxEntries != 10 {
		t.Errorf("LookupMaxEntries = %d", cfg.LookupMaxEntries)
	}
	if cfg.CacheVersion != "v7" {
		t.Errorf("CacheVersion = %q", cfg.CacheVersion)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOOKUP_CACHE_TTL", "not-a-duration")
	t.Setenv("LOOKUP_CACHE_MAX_ENTRIES", "-3")

	cfg := Load()
	if cfg.LookupTTL != time.Hour {
		t.Errorf("LookupTTL = %v, want fallback", cfg.LookupTTL)
	}
	if cfg.LookupMaxEntries != 50 {
		t.Errorf("LookupMaxEntries = %d, want fallback", cfg.LookupMaxEntries)
	}
}

func TestLoadPrecacheConfig_MissingFileIsOptional(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadPrecacheConfig()
	if err != nil {
		t.Fatalf("LoadPrecacheConfig: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for missing file, got %+v", cfg)
	}
}

func TestLoadPrecacheConfig_ParsesManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: v3
assets:
  - /
  - /static/css/style.css
  - https://fonts.gstatic.com/s/inter/inter.woff2
offline_fallback: /static/offline.html
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadPrecacheConfig()
	if err != nil {
		t.Fatalf("LoadPrecacheConfig: %v", err)
	}
	if cfg.Version != "v3" {
		t.Errorf("Version = %q", cfg.Version)
	}
	if len(cfg.Assets) != 3 {
		t.Fatalf("Assets = %v", cfg.Assets)
	}

	assets, fallback := cfg.ResolveAssets("http://localhost:3000")
	if assets[0] != "http://localhost:3000/" {
		t.Errorf("assets[0] = %q", assets[0])
	}
	if assets[2] != "https://fonts.gstatic.com/s/inter/inter.woff2" {
		t.Errorf("absolute asset must pass through, got %q", assets[2])
	}
	if fallback != "http://localhost:3000/static/offline.html" {
		t.Errorf("fallback = %q", fallback)
	}
}

func TestResolveAssets_NilConfig(t *testing.T) {
	var cfg *PrecacheConfig
	assets, fallback := cfg.ResolveAssets("http://localhost:3000")
	if assets != nil || fallback != "" {
		t.Errorf("nil config should resolve to nothing, got %v %q", assets, fallback)
	}
}
