package app

import (
	"context"

	"github.com/you-humble/knowledge-archive/internal/config"
	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/platform/closer"
	"github.com/you-humble/knowledge-archive/platform/logger"
)

// tools runs catalog queries for the command line, without an HTTP server.
type tools struct {
	di *di
}

func NewTools(_ context.Context) (*tools, error) {
	if err := config.LoadOffline(); err != nil {
		return nil, err
	}
	if err := logger.Init(config.C().Logger.Level(), config.C().Logger.AsJSON()); err != nil {
		return nil, err
	}
	closer.SetLogger(logger.L())

	return &tools{di: NewDI()}, nil
}

func (t *tools) StaticRoutes(ctx context.Context) []string {
	return t.di.NavigationService(ctx).StaticRoutes()
}

func (t *tools) Breadcrumb(ctx context.Context, path string) model.Breadcrumb {
	return t.di.BreadcrumbService(ctx).ResolvePath(path)
}

func (t *tools) Search(ctx context.Context, path, term string) ([]model.SearchItem, error) {
	return t.di.SearchService(ctx).Search(ctx, path, term)
}

func (t *tools) Close(ctx context.Context) error {
	return closer.CloseAll(ctx)
}
