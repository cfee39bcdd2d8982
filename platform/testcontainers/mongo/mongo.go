package mongo

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/knowledge-archive/platform/logger"
)

const (
	mongoPort = "27017"

	mongoEnvUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	mongoEnvPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
)

type Container struct {
	container testcontainers.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := startContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	success := false
	defer func() {
		if !success {
			if err := container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(err))
			}
		}
	}()

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("mongo container host: %w", err)
	}
	port, err := container.MappedPort(ctx, mongoPort+"/tcp")
	if err != nil {
		return nil, fmt.Errorf("mongo container mapped port: %w", err)
	}
	cfg.Host, cfg.Port = host, port.Port()

	client, err := connect(ctx, cfg.URI())
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Mongo container started", logger.String("host", cfg.Host), logger.String("port", cfg.Port))
	success = true

	return &Container{
		container: container,
		client:    client,
		cfg:       cfg,
	}, nil
}

func (c *Container) Client() *mongo.Client {
	return c.client
}

func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", logger.ErrorF(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Mongo container terminated")

	return nil
}

func startContainer(ctx context.Context, cfg *Config) (testcontainers.Container, error) {
	req := testcontainers.ContainerRequest{
		Image: cfg.ImageName,
		Env: map[string]string{
			mongoEnvUsernameKey:     cfg.Username,
			mongoEnvPasswordKey:     cfg.Password,
			"MONGO_INITDB_DATABASE": cfg.Database,
		},
		ExposedPorts: []string{mongoPort + "/tcp"},
		WaitingFor:   wait.ForListeningPort(mongoPort + "/tcp").WithStartupTimeout(cfg.StartupTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start mongo container: %w", err)
	}

	return container, nil
}

func connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
