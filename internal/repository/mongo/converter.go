package repository

import (
	"github.com/samber/lo"

	"github.com/you-humble/knowledge-archive/internal/model"
)

func CarEntityToModel(e *CarEntity) *model.Car {
	if e == nil {
		return nil
	}

	return &model.Car{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		ModelCode:        e.ModelCode,
		ImageURL:         e.ImageURL,
		ShortDescription: e.ShortDescription,
	}
}

func CarEntityFromModel(c *model.Car, position int) *CarEntity {
	if c == nil {
		return nil
	}

	return &CarEntity{
		ID:               c.ID,
		Position:         position,
		Name:             c.Name,
		Category:         c.Category,
		ModelCode:        c.ModelCode,
		ImageURL:         c.ImageURL,
		ShortDescription: c.ShortDescription,
	}
}

func PartEntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	out := &model.Part{
		ID:               e.ID,
		CarIDs:           e.CarIDs,
		Department:       e.Department,
		SubDepartment:    e.SubDepartment,
		Name:             e.Name,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		PartNumber:       e.PartNumber,
		ImageURL:         e.ImageURL,
		GalleryImages:    e.GalleryImages,
		Specifications:   e.Specifications,
		Notes:            e.Notes,
	}

	if len(e.DesignFiles) > 0 {
		out.DesignFiles = lo.Map(e.DesignFiles, func(f DesignFileEntity, _ int) model.DesignFile {
			return model.DesignFile{Name: f.Name, URL: f.URL}
		})
	}

	return out
}

func PartEntityFromModel(p *model.Part, position int) *PartEntity {
	if p == nil {
		return nil
	}

	out := &PartEntity{
		ID:               p.ID,
		Position:         position,
		CarIDs:           p.CarIDs,
		Name:             p.Name,
		Department:       p.Department,
		SubDepartment:    p.SubDepartment,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		PartNumber:       p.PartNumber,
		ImageURL:         p.ImageURL,
		GalleryImages:    p.GalleryImages,
		Specifications:   p.Specifications,
		Notes:            p.Notes,
	}

	if len(p.DesignFiles) > 0 {
		out.DesignFiles = lo.Map(p.DesignFiles, func(f model.DesignFile, _ int) DesignFileEntity {
			return DesignFileEntity{Name: f.Name, URL: f.URL}
		})
	}

	if out.CarIDs == nil {
		out.CarIDs = []string{}
	}

	return out
}
