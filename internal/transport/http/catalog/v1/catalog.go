package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogv1 "github.com/you-humble/knowledge-archive/internal/api/catalog/v1"
	"github.com/you-humble/knowledge-archive/internal/converter"
	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/internal/slug"
)

const (
	// APIPrefix is where Router is mounted.
	APIPrefix = "/api/v1"

	defaultFeaturedCount = 3
)

type CatalogService interface {
	Cars() []*model.Car
	Parts(carName string) []*model.Part
	PartByID(id string) (*model.Part, bool)
	PartsByDepartment(f model.DepartmentFilter) []*model.Part
	FeaturedParts(count int, carName string) ([]*model.Part, bool)
}

type BreadcrumbService interface {
	ResolvePath(path string) model.Breadcrumb
}

type NavigationService interface {
	CarPage(ctx context.Context, carSlug string) (*model.CarPage, error)
	CarPartsPage(ctx context.Context, carSlug string) (*model.CarPartsPage, error)
	DepartmentPage(ctx context.Context, carSlug, departmentSlug string) (*model.DepartmentPage, error)
	SubDepartmentPage(ctx context.Context, carSlug, departmentSlug, subDepartmentSlug string) (*model.SubDepartmentPage, error)
	PartPage(ctx context.Context, carSlug, partID string) (*model.PartPage, error)
	Sidebar(ctx context.Context, carSlug string) ([]model.NavItem, error)
	StaticRoutes() []string
}

type SearchService interface {
	Search(ctx context.Context, path, term string) ([]model.SearchItem, error)
}

type handler struct {
	catalog    CatalogService
	breadcrumb BreadcrumbService
	navigation NavigationService
	search     SearchService

	routes chi.Routes
}

func NewCatalogHandler(
	catalog CatalogService,
	breadcrumb BreadcrumbService,
	navigation NavigationService,
	search SearchService,
) *handler {
	return &handler{
		catalog:    catalog,
		breadcrumb: breadcrumb,
		navigation: navigation,
		search:     search,
	}
}

// Router returns the versioned API, meant to be mounted under APIPrefix.
func (h *handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/cars", h.ListCars)
	r.Get("/parts", h.ListParts)
	r.Get("/parts/{partID}", h.GetPart)
	r.Get("/departments/{department}/parts", h.ListDepartmentParts)
	r.Get("/featured", h.ListFeaturedParts)
	r.Get("/breadcrumbs", h.GetBreadcrumb)
	r.Get("/search", h.Search)
	r.Get("/navigation", h.GetNavigation)
	r.Get("/routes", h.ListStaticRoutes)
	r.Get("/slugs", h.GetSlug)
	r.Get("/docs/endpoints", h.ListEndpoints)

	r.Route("/pages/{car}", func(r chi.Router) {
		r.Get("/", h.GetCarPage)
		r.Get("/parts", h.GetCarPartsPage)
		r.Get("/parts/{partID}", h.GetPartPage)
		r.Get("/{department}", h.GetDepartmentPage)
		r.Get("/{department}/{subdepartment}", h.GetSubDepartmentPage)
	})

	h.routes = r
	return r
}

func (h *handler) ListCars(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, converter.CarsToAPI(h.catalog.Cars()))
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts := h.catalog.Parts(r.URL.Query().Get("car"))
	writeJSON(w, r, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "partID")

	p, ok := h.catalog.PartByID(id)
	if !ok {
		writeError(w, r, fmt.Errorf("part %q: %w", id, model.ErrPartNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) ListDepartmentParts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	parts := h.catalog.PartsByDepartment(model.DepartmentFilter{
		Department:    slug.Decode(chi.URLParam(r, "department")),
		SubDepartment: q.Get("sub"),
		CarName:       q.Get("car"),
	})

	writeJSON(w, r, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) ListFeaturedParts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count := defaultFeaturedCount
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("count %q: %w", raw, model.ErrInvalidArgument))
			return
		}
		count = n
	}

	carName := q.Get("car")
	parts, ok := h.catalog.FeaturedParts(count, carName)
	if !ok {
		writeError(w, r, fmt.Errorf("car %q: %w", carName, model.ErrCarNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) GetBreadcrumb(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	writeJSON(w, r, http.StatusOK, converter.BreadcrumbToAPI(path, h.breadcrumb.ResolvePath(path)))
}

func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	term := q.Get("q")

	items, err := h.search.Search(r.Context(), q.Get("path"), term)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.SearchItemsToAPI(term, items))
}

func (h *handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	items, err := h.navigation.Sidebar(r.Context(), r.URL.Query().Get("car"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.NavItemsToAPI(items))
}

func (h *handler) ListStaticRoutes(w http.ResponseWriter, r *http.Request) {
	routes := h.navigation.StaticRoutes()
	if routes == nil {
		routes = []string{}
	}
	writeJSON(w, r, http.StatusOK, catalogv1.Routes{Routes: routes})
}

// GetSlug converts ?name= to its slug or ?slug= to its display name.
func (h *handler) GetSlug(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch {
	case q.Has("name"):
		name := q.Get("name")
		writeJSON(w, r, http.StatusOK, catalogv1.Slug{Name: name, Slug: slug.Slugify(name)})
	case q.Has("slug"):
		s := q.Get("slug")
		writeJSON(w, r, http.StatusOK, catalogv1.Slug{Slug: s, DisplayName: slug.DisplayName(s)})
	default:
		writeError(w, r, fmt.Errorf("name or slug is required: %w", model.ErrInvalidArgument))
	}
}

func (h *handler) ListEndpoints(w http.ResponseWriter, r *http.Request) {
	endpoints := make([]catalogv1.Endpoint, 0)

	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		endpoints = append(endpoints, catalogv1.Endpoint{Method: method, Path: APIPrefix + route})
		return nil
	}
	if h.routes != nil {
		if err := chi.Walk(h.routes, walk); err != nil {
			writeError(w, r, err)
			return
		}
	}

	writeJSON(w, r, http.StatusOK, endpoints)
}

func (h *handler) GetCarPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.navigation.CarPage(r.Context(), chi.URLParam(r, "car"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, converter.CarPageToAPI(page))
}

func (h *handler) GetCarPartsPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.navigation.CarPartsPage(r.Context(), chi.URLParam(r, "car"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, converter.CarPartsPageToAPI(page))
}

func (h *handler) GetPartPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.navigation.PartPage(r.Context(), chi.URLParam(r, "car"), chi.URLParam(r, "partID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, converter.PartPageToAPI(page))
}

func (h *handler) GetDepartmentPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.navigation.DepartmentPage(r.Context(), chi.URLParam(r, "car"), chi.URLParam(r, "department"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, converter.DepartmentPageToAPI(page))
}

func (h *handler) GetSubDepartmentPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.navigation.SubDepartmentPage(r.Context(),
		chi.URLParam(r, "car"),
		chi.URLParam(r, "department"),
		chi.URLParam(r, "subdepartment"),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, converter.SubDepartmentPageToAPI(page))
}
