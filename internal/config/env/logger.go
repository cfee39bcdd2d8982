package envconfig

import "github.com/caarlos0/env/v11"

type loggerEnv struct {
	Level  string `env:"LOGGER_LEVEL,required"`
	AsJSON bool   `env:"LOGGER_AS_JSON,required"`
}

type loggerDefaultsEnv struct {
	Level  string `env:"LOGGER_LEVEL" envDefault:"warn"`
	AsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"false"`
}

type logger struct {
	raw loggerEnv
}

func NewLoggerConfig() (*logger, error) {
	var raw loggerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &logger{raw: raw}, nil
}

// NewLoggerConfigWithDefaults is NewLoggerConfig for the CLI tools: missing
// variables mean warn level and console output.
func NewLoggerConfigWithDefaults() (*logger, error) {
	var raw loggerDefaultsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &logger{raw: loggerEnv(raw)}, nil
}

func (cfg *logger) Level() string { return cfg.raw.Level }
func (cfg *logger) AsJSON() bool  { return cfg.raw.AsJSON }
