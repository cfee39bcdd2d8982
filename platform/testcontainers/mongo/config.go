package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/knowledge-archive/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	ImageName      string
	Database       string
	Username       string
	Password       string
	AuthDB         string
	StartupTimeout time.Duration
	Logger         Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName:      "mongo:8.0",
		Database:       "archive_test",
		Username:       "root",
		Password:       "root",
		AuthDB:         "admin",
		StartupTimeout: time.Minute,
		Logger:         &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *Config) URI() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s/%s?authSource=%s",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.AuthDB,
	)
}
