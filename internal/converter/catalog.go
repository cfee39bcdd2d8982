package converter

import (
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/knowledge-archive/internal/api/catalog/v1"
	"github.com/you-humble/knowledge-archive/internal/model"
)

func CarToAPI(c *model.Car) catalogv1.Car {
	if c == nil {
		return catalogv1.Car{}
	}

	return catalogv1.Car{
		ID:               c.ID,
		Name:             c.Name,
		Category:         c.Category,
		ModelCode:        c.ModelCode,
		ImageURL:         c.ImageURL,
		ShortDescription: c.ShortDescription,
	}
}

func CarsToAPI(cars []*model.Car) []catalogv1.Car {
	return lo.Map(cars, func(c *model.Car, _ int) catalogv1.Car { return CarToAPI(c) })
}

func PartToAPI(p *model.Part) catalogv1.Part {
	if p == nil {
		return catalogv1.Part{}
	}

	out := catalogv1.Part{
		ID:               p.ID,
		CarIDs:           p.CarIDs,
		Department:       p.Department,
		SubDepartment:    p.SubDepartment,
		Name:             p.Name,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		PartNumber:       p.PartNumber,
		ImageURL:         p.ImageURL,
		GalleryImages:    p.GalleryImages,
		Specifications:   p.Specifications,
		Notes:            p.Notes,
	}

	if out.CarIDs == nil {
		out.CarIDs = []string{}
	}
	if len(p.DesignFiles) > 0 {
		out.DesignFiles = lo.Map(p.DesignFiles, func(f model.DesignFile, _ int) catalogv1.DesignFile {
			return catalogv1.DesignFile{Name: f.Name, URL: f.URL}
		})
	}

	return out
}

// PartsToAPI never returns nil so empty listings encode as [].
func PartsToAPI(parts []*model.Part) []catalogv1.Part {
	return lo.Map(parts, func(p *model.Part, _ int) catalogv1.Part { return PartToAPI(p) })
}

func BreadcrumbToAPI(path string, b model.Breadcrumb) catalogv1.Breadcrumb {
	return catalogv1.Breadcrumb{
		Path: path,
		Crumbs: lo.Map(b.Crumbs, func(c model.Crumb, _ int) catalogv1.Crumb {
			return catalogv1.Crumb{
				Label:     c.Label,
				Href:      c.Href,
				Terminal:  c.Terminal,
				Separator: c.Separator.String(),
			}
		}),
	}
}

func SearchItemsToAPI(term string, items []model.SearchItem) catalogv1.SearchResponse {
	return catalogv1.SearchResponse{
		Query: term,
		Items: lo.Map(items, func(i model.SearchItem, _ int) catalogv1.SearchItem {
			return catalogv1.SearchItem{
				ID:       i.ID,
				Name:     i.Name,
				Category: i.Category,
				Type:     i.Type,
				Href:     i.Href,
			}
		}),
	}
}

func NavItemsToAPI(items []model.NavItem) []catalogv1.NavItem {
	if len(items) == 0 {
		return nil
	}
	return lo.Map(items, func(n model.NavItem, _ int) catalogv1.NavItem {
		return catalogv1.NavItem{
			Title:    n.Title,
			Href:     n.Href,
			Slug:     n.Slug,
			Children: NavItemsToAPI(n.Children),
		}
	})
}

func CarPageToAPI(p *model.CarPage) catalogv1.CarPage {
	return catalogv1.CarPage{Car: CarToAPI(p.Car), Featured: PartsToAPI(p.Featured)}
}

func CarPartsPageToAPI(p *model.CarPartsPage) catalogv1.CarPartsPage {
	return catalogv1.CarPartsPage{Car: CarToAPI(p.Car), Parts: PartsToAPI(p.Parts)}
}

func DepartmentPageToAPI(p *model.DepartmentPage) catalogv1.DepartmentPage {
	return catalogv1.DepartmentPage{
		Car:        CarToAPI(p.Car),
		Department: p.DepartmentName,
		SubDepartments: lo.Map(p.SubDepartments, func(l model.SubDepartmentLink, _ int) catalogv1.SubDepartmentLink {
			return catalogv1.SubDepartmentLink{Name: l.Name, Href: l.Href}
		}),
		Parts: PartsToAPI(p.Parts),
	}
}

func SubDepartmentPageToAPI(p *model.SubDepartmentPage) catalogv1.SubDepartmentPage {
	return catalogv1.SubDepartmentPage{
		Car:           CarToAPI(p.Car),
		Department:    p.DepartmentName,
		SubDepartment: p.SubDepartmentName,
		Parts:         PartsToAPI(p.Parts),
	}
}

func PartPageToAPI(p *model.PartPage) catalogv1.PartPage {
	return catalogv1.PartPage{Car: CarToAPI(p.Car), Part: PartToAPI(p.Part)}
}
