package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/maypok86/otter"

	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/internal/slug"
	"github.com/you-humble/knowledge-archive/platform/logger"
)

const (
	itemType    = "Part"
	unnamedPart = "Unnamed Part"
	unknownCar  = "unknown-car"
)

// First path segments that never name a car.
var nonCarSegments = []string{
	"parts", "mechanical", "electrical", "autonomous", "managerial", "api", "public", "_next",
}

type CatalogQuerier interface {
	Cars() []*model.Car
	Parts(carName string) []*model.Part
}

type service struct {
	cars    []*model.Car
	parts   map[string]*model.Part
	index   bleve.Index
	results otter.Cache[string, []model.SearchItem]
	limit   int
}

// NewSearchService indexes every part reachable from a car. The catalog is
// immutable, so neither the index nor cached results ever go stale.
func NewSearchService(ctx context.Context, catalog CatalogQuerier, limit, cacheSize int) (*service, error) {
	const op = "search.service.New"

	if limit <= 0 || cacheSize <= 0 {
		return nil, fmt.Errorf("%s: limit %d, cache size %d: %w", op, limit, cacheSize, model.ErrInvalidArgument)
	}

	all := catalog.Parts("")
	idx, err := newIndex(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	results, err := otter.MustBuilder[string, []model.SearchItem](cacheSize).Build()
	if err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("%s: build cache: %w", op, err)
	}

	parts := make(map[string]*model.Part, len(all))
	for _, p := range all {
		parts[p.ID] = p
	}

	return &service{
		cars:    catalog.Cars(),
		parts:   parts,
		index:   idx,
		results: results,
		limit:   limit,
	}, nil
}

// Search matches term against part names, category labels and the item type,
// case-insensitively. The first path segment scopes the search to a car unless
// it is a known non-car segment. A blank term yields no results.
func (s *service) Search(ctx context.Context, path, term string) ([]model.SearchItem, error) {
	const op = "search.service.Search"

	if strings.TrimSpace(term) == "" {
		return []model.SearchItem{}, nil
	}
	needle := strings.ToLower(term)

	segment, scoped := carSegment(path)
	key := segment + "\x00" + needle
	if cached, ok := s.results.Get(key); ok {
		return slices.Clone(cached), nil
	}

	var car *model.Car
	if scoped {
		car = s.carBySegment(segment)
		if car == nil {
			logger.Debug(ctx, "search scope did not resolve to a car", logger.String("segment", segment))
			s.results.Set(key, []model.SearchItem{})
			return []model.SearchItem{}, nil
		}
	}

	hits, err := s.candidates(ctx, needle, car)
	if err != nil {
		logger.Error(ctx, "search index query", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]model.SearchItem, 0, min(len(hits), s.limit))
	for _, p := range hits {
		var item model.SearchItem
		if car != nil {
			item = scopedItem(p, car.Name, segment)
		} else {
			item = s.globalItem(p)
		}

		if !matches(item, needle) {
			continue
		}
		out = append(out, item)
		if len(out) == s.limit {
			break
		}
	}

	s.results.Set(key, out)
	logger.Debug(ctx, "search",
		logger.String("term", term),
		logger.Bool("scoped", car != nil),
		logger.Int("results", len(out)),
	)

	return slices.Clone(out), nil
}

func (s *service) Close() error {
	s.results.Close()
	return s.index.Close()
}

// candidates returns parts whose indexed labels may contain needle, in
// store order.
func (s *service) candidates(ctx context.Context, needle string, car *model.Car) ([]*model.Part, error) {
	total, err := s.index.DocCount()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	pattern := "*" + needle + "*"
	fields := make([]query.Query, 0, 3)
	for _, f := range []string{fieldName, fieldCategory, fieldType} {
		q := bleve.NewWildcardQuery(pattern)
		q.SetField(f)
		fields = append(fields, q)
	}

	var q query.Query = bleve.NewDisjunctionQuery(fields...)
	if car != nil {
		byCar := bleve.NewTermQuery(car.ID)
		byCar.SetField(fieldCarIDs)
		q = bleve.NewConjunctionQuery(q, byCar)
	}

	req := bleve.NewSearchRequestOptions(q, int(total), 0, false)
	req.SortBy([]string{fieldPosition})

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Part, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if p, ok := s.parts[hit.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) carBySegment(segment string) *model.Car {
	want := slug.DisplayName(segment)
	for _, c := range s.cars {
		if strings.EqualFold(c.Name, want) {
			return c
		}
	}
	return nil
}

func (s *service) carByID(id string) *model.Car {
	for _, c := range s.cars {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// globalItem links the part under its first car.
func (s *service) globalItem(p *model.Part) model.SearchItem {
	carName, carPath := unknownCar, unknownCar
	if len(p.CarIDs) > 0 {
		if c := s.carByID(p.CarIDs[0]); c != nil {
			carName, carPath = c.Name, slug.Slugify(c.Name)
		}
	}

	return model.SearchItem{
		ID:       carName + "-part-" + p.ID,
		Name:     itemName(p),
		Category: itemCategory(p),
		Type:     itemType,
		Href:     "/" + carPath + "/parts/" + p.ID,
	}
}

func scopedItem(p *model.Part, carName, segment string) model.SearchItem {
	return model.SearchItem{
		ID:       carName + "-part-" + p.ID,
		Name:     itemName(p),
		Category: itemCategory(p),
		Type:     itemType,
		Href:     "/" + segment + "/parts/" + p.ID,
	}
}

// carSegment returns the first path segment when it may name a car.
func carSegment(path string) (string, bool) {
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if slices.Contains(nonCarSegments, seg) {
			return "", false
		}
		return seg, true
	}
	return "", false
}

func itemName(p *model.Part) string {
	if p.Name == "" {
		return unnamedPart
	}
	return p.Name
}

func itemCategory(p *model.Part) string {
	dept := p.Department
	if dept == "" {
		dept = "General"
	}
	if p.SubDepartment != "" {
		return dept + " > " + p.SubDepartment
	}
	return dept
}

func matches(item model.SearchItem, needle string) bool {
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Category), needle) ||
		strings.Contains(strings.ToLower(item.Type), needle)
}
