package envconfig

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

var catalogSources = []string{"embedded", "file", "mongo"}

type catalogEnv struct {
	Source        string        `env:"CATALOG_SOURCE" envDefault:"embedded"`
	File          string        `env:"CATALOG_FILE"`
	FeaturedCount int           `env:"CATALOG_FEATURED_COUNT" envDefault:"3"`
	LoadTimeout   time.Duration `env:"CATALOG_LOAD_TIMEOUT" envDefault:"10s"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if !slices.Contains(catalogSources, raw.Source) {
		return nil, fmt.Errorf("CATALOG_SOURCE %q: want one of %v", raw.Source, catalogSources)
	}
	if raw.Source == "file" && raw.File == "" {
		return nil, fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=file")
	}
	if raw.FeaturedCount < 0 {
		return nil, fmt.Errorf("CATALOG_FEATURED_COUNT %d: must not be negative", raw.FeaturedCount)
	}

	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Source() string             { return cfg.raw.Source }
func (cfg *catalog) File() string               { return cfg.raw.File }
func (cfg *catalog) FeaturedCount() int         { return cfg.raw.FeaturedCount }
func (cfg *catalog) LoadTimeout() time.Duration { return cfg.raw.LoadTimeout }
