package repository

import (
	"fmt"
	"slices"

	"github.com/you-humble/knowledge-archive/internal/model"
)

// Store is the immutable entity store. It is built once from a dataset and
// never mutated afterwards, so concurrent readers need no locking.
type Store struct {
	cars  []*model.Car
	parts []*model.Part

	carsByID   map[string]*model.Car
	carsByName map[string]*model.Car
	partsByID  map[string]*model.Part
}

// NewStore deep-copies ds and keeps its definition order.
// Duplicate ids are accepted; lookups resolve to the first in store order.
func NewStore(ds model.Dataset) (*Store, error) {
	const op = "repository.NewStore"

	s := &Store{
		cars:       make([]*model.Car, 0, len(ds.Cars)),
		parts:      make([]*model.Part, 0, len(ds.Parts)),
		carsByID:   make(map[string]*model.Car, len(ds.Cars)),
		carsByName: make(map[string]*model.Car, len(ds.Cars)),
		partsByID:  make(map[string]*model.Part, len(ds.Parts)),
	}

	for i, c := range ds.Cars {
		if c == nil {
			continue
		}
		if c.ID == "" {
			return nil, fmt.Errorf("%s: car #%d: empty id: %w", op, i, model.ErrInvalidDataset)
		}

		cp := c.Clone()
		s.cars = append(s.cars, cp)
		if _, ok := s.carsByID[cp.ID]; !ok {
			s.carsByID[cp.ID] = cp
		}
		if _, ok := s.carsByName[cp.Name]; !ok {
			s.carsByName[cp.Name] = cp
		}
	}

	for i, p := range ds.Parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%s: part #%d: empty id: %w", op, i, model.ErrInvalidDataset)
		}
		if p.Department == "" {
			return nil, fmt.Errorf("%s: part %q: empty department: %w", op, p.ID, model.ErrInvalidDataset)
		}

		cp := p.Clone()
		s.parts = append(s.parts, cp)
		if _, ok := s.partsByID[cp.ID]; !ok {
			s.partsByID[cp.ID] = cp
		}
	}

	return s, nil
}

// Cars returns every car in definition order.
func (s *Store) Cars() []*model.Car { return slices.Clone(s.cars) }

// Parts returns every part in definition order.
func (s *Store) Parts() []*model.Part { return slices.Clone(s.parts) }

// CarByName matches name exactly, case included.
func (s *Store) CarByName(name string) (*model.Car, bool) {
	c, ok := s.carsByName[name]
	return c, ok
}

func (s *Store) CarByID(id string) (*model.Car, bool) {
	c, ok := s.carsByID[id]
	return c, ok
}

func (s *Store) PartByID(id string) (*model.Part, bool) {
	p, ok := s.partsByID[id]
	return p, ok
}
