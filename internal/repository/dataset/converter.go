package dataset

import (
	"github.com/samber/lo"

	"github.com/you-humble/knowledge-archive/internal/model"
)

func documentToModel(doc document) model.Dataset {
	return model.Dataset{
		Cars:  lo.Map(doc.Cars, func(e carEntity, _ int) *model.Car { return carToModel(e) }),
		Parts: lo.Map(doc.Parts, func(e partEntity, _ int) *model.Part { return partToModel(e) }),
	}
}

func documentFromModel(ds model.Dataset) document {
	return document{
		Cars:  lo.Map(lo.Compact(ds.Cars), func(c *model.Car, _ int) carEntity { return carFromModel(c) }),
		Parts: lo.Map(lo.Compact(ds.Parts), func(p *model.Part, _ int) partEntity { return partFromModel(p) }),
	}
}

func carToModel(e carEntity) *model.Car {
	return &model.Car{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		ModelCode:        e.ModelCode,
		ImageURL:         e.ImageURL,
		ShortDescription: e.ShortDescription,
	}
}

func carFromModel(c *model.Car) carEntity {
	return carEntity{
		ID:               c.ID,
		Name:             c.Name,
		Category:         c.Category,
		ModelCode:        c.ModelCode,
		ImageURL:         c.ImageURL,
		ShortDescription: c.ShortDescription,
	}
}

func partToModel(e partEntity) *model.Part {
	return &model.Part{
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
		DesignFiles: lo.Map(e.DesignFiles, func(f designFileEntity, _ int) model.DesignFile {
			return model.DesignFile{Name: f.Name, URL: f.URL}
		}),
		Notes: e.Notes,
	}
}

func partFromModel(p *model.Part) partEntity {
	return partEntity{
		ID:               p.ID,
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
		DesignFiles: lo.Map(p.DesignFiles, func(f model.DesignFile, _ int) designFileEntity {
			return designFileEntity{Name: f.Name, URL: f.URL}
		}),
		Notes: p.Notes,
	}
}
