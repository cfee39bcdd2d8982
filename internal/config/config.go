package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/knowledge-archive/internal/config/env"
)

var cfg *config

type config struct {
	Server  Server
	Logger  Logger
	Catalog Catalog
	Search  Search
	Mongo   Database
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	c, err := loadOffline(op)
	if err != nil {
		return err
	}

	c.Server = serverCfg
	c.Logger = loggerCfg
	cfg = c

	return nil
}

// LoadOffline reads only what the command line tools need: no listen address,
// and the logger falls back to defaults.
func LoadOffline() error {
	const op = "config.LoadOffline"

	c, err := loadOffline(op)
	if err != nil {
		return err
	}

	loggerCfg, err := envconfig.NewLoggerConfigWithDefaults()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}
	c.Logger = loggerCfg
	cfg = c

	return nil
}

func loadOffline(op string) (*config, error) {
	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Catalog: %w", op, err)
	}

	searchCfg, err := envconfig.NewSearchConfig()
	if err != nil {
		return nil, fmt.Errorf("%s Search: %w", op, err)
	}

	c := &config{
		Catalog: catalogCfg,
		Search:  searchCfg,
	}

	if catalogCfg.Source() == SourceMongo {
		mongoCfg, err := envconfig.NewMongoConfig()
		if err != nil {
			return nil, fmt.Errorf("%s Mongo: %w", op, err)
		}
		c.Mongo = mongoCfg
	}

	return c, nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
