package mongo

import "time"

// Option tweaks the container before it starts.
type Option func(*Config)

// WithImageName pins the mongo image, e.g. "mongo:8.0".
func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

// WithDatabase names the database returned by Container.Database.
func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

// WithAuth sets the root credentials of the container.
func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username, c.Password = username, password
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func WithStartupTimeout(d time.Duration) Option {
	return func(c *Config) { c.StartupTimeout = d }
}
