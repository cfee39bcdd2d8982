package config

import "time"

// Dataset sources accepted by CATALOG_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMongo    = "mongo"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Catalog interface {
	Source() string
	File() string
	FeaturedCount() int
	LoadTimeout() time.Duration
}

type Search interface {
	ResultLimit() int
	CacheSize() int
}

type Database interface {
	DatabaseName() string
	CarsCollection() string
	PartsCollection() string
	Bootstrap() bool
	DSN() string
}
