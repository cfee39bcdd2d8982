package service

import (
	"github.com/samber/lo"

	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/internal/slug"
)

// Departments tried in priority order when picking featured parts.
var featuredDepartments = []string{"Mechanical", "Electrical", "Autonomous"}

type CatalogStore interface {
	Cars() []*model.Car
	Parts() []*model.Part
	CarByName(name string) (*model.Car, bool)
	PartByID(id string) (*model.Part, bool)
}

// service answers catalog queries over an immutable store. None of its
// methods fail: unknown cars and parts come back as empty results or ok=false.
// Returned entities are shared with the store and must not be mutated.
type service struct {
	store CatalogStore
}

func NewCatalogService(store CatalogStore) *service {
	return &service{store: store}
}

func (s *service) Cars() []*model.Car {
	return s.store.Cars()
}

// Parts lists the parts of the named car, or of every car when carName is
// empty. The unscoped listing is de-duplicated by id in first-seen order and
// leaves out parts that no known car references.
func (s *service) Parts(carName string) []*model.Part {
	if carName != "" {
		car, ok := s.store.CarByName(carName)
		if !ok {
			return []*model.Part{}
		}
		return s.partsOf(car)
	}

	out := make([]*model.Part, 0)
	seen := make(map[string]struct{})
	for _, c := range s.store.Cars() {
		for _, p := range s.Parts(c.Name) {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func (s *service) PartByID(id string) (*model.Part, bool) {
	return s.store.PartByID(id)
}

// PartsByDepartment filters by department and sub-department, both compared
// case-insensitively. An empty SubDepartment selects direct parts only.
//
// A CarName that does not resolve widens the scope to the whole store instead
// of narrowing it to nothing. Callers that need strict scoping resolve the car
// first.
func (s *service) PartsByDepartment(f model.DepartmentFilter) []*model.Part {
	scope := s.store.Parts()
	if f.CarName != "" {
		if car, ok := s.store.CarByName(f.CarName); ok {
			scope = s.partsOf(car)
		}
	}

	preds := []model.PartPredicate{model.InDepartment(f.Department)}
	if f.SubDepartment != "" {
		preds = append(preds, model.InSubDepartment(f.SubDepartment))
	} else {
		preds = append(preds, model.Direct())
	}

	return filter(scope, model.All(preds...))
}

// FeaturedParts picks up to count parts of the named car: the first
// Mechanical, Electrical and Autonomous part, topped up with the car's other
// parts in store order. ok is false when the car is not given or unknown.
func (s *service) FeaturedParts(count int, carName string) ([]*model.Part, bool) {
	if carName == "" {
		return nil, false
	}
	car, ok := s.store.CarByName(carName)
	if !ok {
		return nil, false
	}
	if count <= 0 {
		return []*model.Part{}, true
	}

	parts := s.partsOf(car)
	featured := make([]*model.Part, 0, count)
	picked := make(map[string]struct{}, count)

	pick := func(p *model.Part) {
		featured = append(featured, p)
		picked[p.ID] = struct{}{}
	}

	for _, dept := range featuredDepartments {
		if len(featured) >= count {
			break
		}
		if p, found := lo.Find(parts, func(p *model.Part) bool { return p.Department == dept }); found {
			pick(p)
		}
	}

	for _, p := range parts {
		if len(featured) >= count {
			break
		}
		if _, dup := picked[p.ID]; !dup {
			pick(p)
		}
	}

	return featured, true
}

// Departments lists department names in first-seen order for the car's
// parts, or for all parts when carName is empty.
func (s *service) Departments(carName string) []string {
	return firstSeen(s.Parts(carName), func(p *model.Part) string { return p.Department })
}

// SubDepartments lists the sub-departments of department in first-seen order.
func (s *service) SubDepartments(department, carName string) []string {
	parts := filter(s.Parts(carName), model.All(model.InDepartment(department), isNested))
	return firstSeen(parts, func(p *model.Part) string { return p.SubDepartment })
}

func (s *service) partsOf(car *model.Car) []*model.Part {
	return filter(s.store.Parts(), model.ForCar(car.ID))
}

func isNested(p *model.Part) bool { return !p.Direct() }

func filter(parts []*model.Part, pred model.PartPredicate) []*model.Part {
	return lo.Filter(parts, func(p *model.Part, _ int) bool { return pred(p) })
}

// firstSeen collects the distinct values of field, compared by slug.Key,
// keeping the spelling of the first occurrence.
func firstSeen(parts []*model.Part, field func(*model.Part) string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range parts {
		v := field(p)
		k := slug.Key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
