package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type searchEnv struct {
	ResultLimit int `env:"SEARCH_RESULT_LIMIT" envDefault:"10"`
	CacheSize   int `env:"SEARCH_CACHE_SIZE" envDefault:"1000"`
}

type search struct {
	raw searchEnv
}

func NewSearchConfig() (*search, error) {
	var raw searchEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.ResultLimit <= 0 || raw.CacheSize <= 0 {
		return nil, fmt.Errorf("SEARCH_RESULT_LIMIT and SEARCH_CACHE_SIZE must be positive")
	}
	return &search{raw: raw}, nil
}

func (cfg *search) ResultLimit() int { return cfg.raw.ResultLimit }
func (cfg *search) CacheSize() int   { return cfg.raw.CacheSize }
