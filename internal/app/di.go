package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/knowledge-archive/internal/config"
	"github.com/you-humble/knowledge-archive/internal/model"
	catalogrepo "github.com/you-humble/knowledge-archive/internal/repository/catalog"
	"github.com/you-humble/knowledge-archive/internal/repository/dataset"
	mongorepo "github.com/you-humble/knowledge-archive/internal/repository/mongo"
	breadcrumbsvc "github.com/you-humble/knowledge-archive/internal/service/breadcrumb"
	catalogsvc "github.com/you-humble/knowledge-archive/internal/service/catalog"
	navigationsvc "github.com/you-humble/knowledge-archive/internal/service/navigation"
	searchsvc "github.com/you-humble/knowledge-archive/internal/service/search"
	thttp "github.com/you-humble/knowledge-archive/internal/transport/http/catalog/v1"
	"github.com/you-humble/knowledge-archive/platform/closer"
	"github.com/you-humble/knowledge-archive/platform/logger"
)

type CatalogRepository interface {
	Dataset(ctx context.Context) (model.Dataset, error)
	mongorepo.BatchCreator
}

type SearchService interface {
	thttp.SearchService
	Close() error
}

type CatalogHandler interface {
	Router() chi.Router
}

type di struct {
	mongo      *mongo.Client
	repository CatalogRepository

	dataset *model.Dataset
	store   *catalogrepo.Store

	catalog    navigationsvc.CatalogQuerier
	breadcrumb thttp.BreadcrumbService
	navigation thttp.NavigationService
	search     SearchService

	handler CatalogHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) CatalogRepository(ctx context.Context) CatalogRepository {
	if d.repository == nil {
		cfg := config.C().Mongo
		db := d.MongoDB(ctx).Database(cfg.DatabaseName())

		cars := db.Collection(cfg.CarsCollection())
		parts := db.Collection(cfg.PartsCollection())

		if err := mongorepo.EnsureIndexes(ctx, cars, parts); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}

		d.repository = mongorepo.NewCatalogRepository(cars, parts)
	}

	return d.repository
}

// Dataset reads the configured source once. Everything downstream works on
// the in-memory copy.
func (d *di) Dataset(ctx context.Context) model.Dataset {
	if d.dataset == nil {
		cfg := config.C().Catalog

		ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout())
		defer cancel()

		ds, err := d.loadDataset(ctx, cfg.Source())
		if err != nil {
			panic(fmt.Sprintf("failed to load %s dataset: %v\n", cfg.Source(), err))
		}

		logger.Info(ctx, "📚 catalog loaded",
			logger.String("source", cfg.Source()),
			logger.Int("cars", len(ds.Cars)),
			logger.Int("parts", len(ds.Parts)),
		)

		d.dataset = &ds
	}

	return *d.dataset
}

func (d *di) loadDataset(ctx context.Context, source string) (model.Dataset, error) {
	switch source {
	case config.SourceFile:
		return dataset.LoadFile(config.C().Catalog.File())
	case config.SourceMongo:
		repo := d.CatalogRepository(ctx)

		if config.C().Mongo.Bootstrap() {
			embedded, err := dataset.Embedded()
			if err != nil {
				return model.Dataset{}, err
			}
			seeded, err := mongorepo.Bootstrap(ctx, repo, embedded)
			if err != nil {
				return model.Dataset{}, err
			}
			if seeded {
				logger.Info(ctx, "🌱 mongo catalog seeded from the embedded dataset")
			}
		}

		return repo.Dataset(ctx)
	default:
		return dataset.Embedded()
	}
}

func (d *di) Store(ctx context.Context) *catalogrepo.Store {
	if d.store == nil {
		store, err := catalogrepo.NewStore(d.Dataset(ctx))
		if err != nil {
			panic(fmt.Sprintf("failed to build catalog store: %v\n", err))
		}
		d.store = store
	}

	return d.store
}

func (d *di) CatalogService(ctx context.Context) navigationsvc.CatalogQuerier {
	if d.catalog == nil {
		d.catalog = catalogsvc.NewCatalogService(d.Store(ctx))
	}

	return d.catalog
}

func (d *di) BreadcrumbService(ctx context.Context) thttp.BreadcrumbService {
	if d.breadcrumb == nil {
		d.breadcrumb = breadcrumbsvc.NewBreadcrumbService(d.CatalogService(ctx))
	}

	return d.breadcrumb
}

func (d *di) NavigationService(ctx context.Context) thttp.NavigationService {
	if d.navigation == nil {
		d.navigation = navigationsvc.NewNavigationService(
			d.CatalogService(ctx),
			config.C().Catalog.FeaturedCount(),
		)
	}

	return d.navigation
}

func (d *di) SearchService(ctx context.Context) SearchService {
	if d.search == nil {
		cfg := config.C().Search

		search, err := searchsvc.NewSearchService(ctx,
			d.CatalogService(ctx),
			cfg.ResultLimit(),
			cfg.CacheSize(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to build search index: %v\n", err))
		}
		closer.AddNamed("Search Index",
			func(context.Context) error {
				return search.Close()
			})

		d.search = search
	}

	return d.search
}

func (d *di) CatalogHandler(ctx context.Context) CatalogHandler {
	if d.handler == nil {
		d.handler = thttp.NewCatalogHandler(
			d.CatalogService(ctx),
			d.BreadcrumbService(ctx),
			d.NavigationService(ctx),
			d.SearchService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
