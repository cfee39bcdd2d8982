package model

import (
	"slices"

	"github.com/samber/lo"
)

type Part struct {
	// Stable identifier, unique across all parts.
	ID string
	// Cars this part belongs to. The first entry is the representative car.
	CarIDs []string
	// Top-level classification. Never empty.
	Department string
	// Second-level classification. Empty for direct department members.
	SubDepartment string

	Name             string
	ShortDescription string
	Description      string
	PartNumber       string
	ImageURL         string
	GalleryImages    []string
	// Attribute name to value. Order carries no meaning.
	Specifications map[string]string
	DesignFiles    []DesignFile
	Notes          string
}

type DesignFile struct {
	Name string
	URL  string
}

// Direct reports whether the part sits directly under its department.
func (p *Part) Direct() bool { return p.SubDepartment == "" }

// BelongsTo reports whether carID is among the part's cars.
func (p *Part) BelongsTo(carID string) bool { return slices.Contains(p.CarIDs, carID) }

// Clone returns a deep copy of the part.
func (p *Part) Clone() *Part {
	if p == nil {
		return nil
	}

	out := *p
	out.CarIDs = slices.Clone(p.CarIDs)
	out.GalleryImages = slices.Clone(p.GalleryImages)
	out.DesignFiles = slices.Clone(p.DesignFiles)
	if p.Specifications != nil {
		out.Specifications = lo.Assign(p.Specifications)
	}
	return &out
}

// Clone returns a copy of the car.
func (c *Car) Clone() *Car {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// Dataset is the raw material of the entity store, in definition order.
type Dataset struct {
	Cars  []*Car
	Parts []*Part
}
