package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// PrecacheConfig represents the structure of the config.yaml file: the
// static-asset manifest the offline installer fetches at startup.
// A list with relative entries is easier to manage in YAML than env vars.
type PrecacheConfig struct {
	// Version overrides CACHE_VERSION when set.
	Version string `yaml:"version,omitempty"`
	// Assets are the URLs to precache. Entries starting with "/" are
	// resolved against the server's own BaseURL.
	Assets []string `yaml:"assets"`
	// OfflineFallback is the asset served when a static fetch fails
	// offline. Must also appear in Assets.
	OfflineFallback string `yaml:"offline_fallback,omitempty"`
}

// LoadPrecacheConfig loads the YAML precache manifest.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadPrecacheConfig() (*PrecacheConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg PrecacheConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveAssets returns the manifest with site-relative entries resolved
// against baseURL, and the resolved offline fallback URL.
func (c *PrecacheConfig) ResolveAssets(baseURL string) (assets []string, fallback string) {
	if c == nil {
		return nil, ""
	}
	resolve := func(asset string) string {
		if len(asset) > 0 && asset[0] == '/' {
			return baseURL + asset
		}
		return asset
	}
	for _, asset := range c.Assets {
		assets = append(assets, resolve(asset))
	}
	if c.OfflineFallback != "" {
		fallback = resolve(c.OfflineFallback)
	}
	return assets, fallback
}
