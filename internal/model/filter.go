package model

import "github.com/you-humble/knowledge-archive/internal/slug"

// PartPredicate selects parts. Predicates compose with All.
type PartPredicate func(p *Part) bool

// ForCar keeps parts linked to the car id.
func ForCar(carID string) PartPredicate {
	return func(p *Part) bool { return p.BelongsTo(carID) }
}

// InDepartment keeps parts whose department matches key case-insensitively.
func InDepartment(key string) PartPredicate {
	key = slug.Key(key)
	return func(p *Part) bool { return slug.Key(p.Department) == key }
}

// InSubDepartment keeps parts with a sub-department matching key
// case-insensitively. Direct parts never match.
func InSubDepartment(key string) PartPredicate {
	key = slug.Key(key)
	return func(p *Part) bool {
		return p.SubDepartment != "" && slug.Key(p.SubDepartment) == key
	}
}

// Direct keeps parts without a sub-department.
func Direct() PartPredicate {
	return func(p *Part) bool { return p.Direct() }
}

// All is the conjunction of preds. No predicates means everything matches.
func All(preds ...PartPredicate) PartPredicate {
	return func(p *Part) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// DepartmentFilter carries the arguments of a department listing.
// Empty strings mean "not given".
type DepartmentFilter struct {
	Department    string
	SubDepartment string
	CarName       string
}
