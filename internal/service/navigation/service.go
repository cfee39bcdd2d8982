package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/internal/slug"
	"github.com/you-humble/knowledge-archive/platform/logger"
)

type CatalogQuerier interface {
	Cars() []*model.Car
	Parts(carName string) []*model.Part
	PartByID(id string) (*model.Part, bool)
	PartsByDepartment(f model.DepartmentFilter) []*model.Part
	FeaturedParts(count int, carName string) ([]*model.Part, bool)
	Departments(carName string) []string
	SubDepartments(department, carName string) []string
}

type service struct {
	catalog       CatalogQuerier
	featuredCount int
}

func NewNavigationService(catalog CatalogQuerier, featuredCount int) *service {
	return &service{catalog: catalog, featuredCount: featuredCount}
}

// CarBySlug finds the car whose name equals the slug's display form,
// ignoring case.
func (s *service) CarBySlug(ctx context.Context, carSlug string) (*model.Car, error) {
	const op = "navigation.service.CarBySlug"

	want := slug.DisplayName(carSlug)
	if want == "" {
		return nil, fmt.Errorf("%s: empty car slug: %w", op, model.ErrInvalidArgument)
	}

	car, ok := lo.Find(s.catalog.Cars(), func(c *model.Car) bool {
		return strings.EqualFold(c.Name, want)
	})
	if !ok {
		logger.Debug(ctx, "car slug did not resolve", logger.String("car_slug", carSlug))
		return nil, fmt.Errorf("%s: car %q: %w", op, carSlug, model.ErrCarNotFound)
	}
	return car, nil
}

func (s *service) CarPage(ctx context.Context, carSlug string) (*model.CarPage, error) {
	const op = "navigation.service.CarPage"

	car, err := s.CarBySlug(ctx, carSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	featured, _ := s.catalog.FeaturedParts(s.featuredCount, car.Name)
	if featured == nil {
		featured = []*model.Part{}
	}

	return &model.CarPage{Car: car, Featured: featured}, nil
}

func (s *service) CarPartsPage(ctx context.Context, carSlug string) (*model.CarPartsPage, error) {
	const op = "navigation.service.CarPartsPage"

	car, err := s.CarBySlug(ctx, carSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.CarPartsPage{Car: car, Parts: s.catalog.Parts(car.Name)}, nil
}

// DepartmentPage lists the sub-departments and the direct parts of a
// department within one car. Sub-department links keep the slugs as given.
func (s *service) DepartmentPage(ctx context.Context, carSlug, departmentSlug string) (*model.DepartmentPage, error) {
	const op = "navigation.service.DepartmentPage"

	car, err := s.CarBySlug(ctx, carSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts := s.catalog.Parts(car.Name)
	inDept := func(p *model.Part) bool { return slug.Matches(p.Department, departmentSlug) }

	// The record's spelling wins; a direct part is preferred, any part of the
	// department will do, and only an unknown department falls back to the slug.
	name := slug.DisplayName(departmentSlug)
	if p, ok := lo.Find(parts, func(p *model.Part) bool { return inDept(p) && p.Direct() }); ok {
		name = p.Department
	} else if p, ok := lo.Find(parts, inDept); ok {
		name = p.Department
	}
	key := name

	subs := s.catalog.SubDepartments(key, car.Name)
	links := lo.Map(subs, func(sub string, _ int) model.SubDepartmentLink {
		return model.SubDepartmentLink{
			Name: sub,
			Href: "/" + carSlug + "/" + departmentSlug + "/" + slug.Slugify(sub),
		}
	})

	return &model.DepartmentPage{
		Car:            car,
		DepartmentName: name,
		SubDepartments: links,
		Parts:          s.catalog.PartsByDepartment(model.DepartmentFilter{Department: key, CarName: car.Name}),
	}, nil
}

func (s *service) SubDepartmentPage(
	ctx context.Context,
	carSlug, departmentSlug, subDepartmentSlug string,
) (*model.SubDepartmentPage, error) {
	const op = "navigation.service.SubDepartmentPage"

	car, err := s.CarBySlug(ctx, carSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts := s.catalog.Parts(car.Name)

	deptName := slug.DisplayName(departmentSlug)
	if p, ok := lo.Find(parts, func(p *model.Part) bool { return slug.Matches(p.Department, departmentSlug) }); ok {
		deptName = p.Department
	}

	subName := slug.DisplayName(subDepartmentSlug)
	if p, ok := lo.Find(parts, func(p *model.Part) bool {
		return slug.Matches(p.Department, departmentSlug) && !p.Direct() && slug.Matches(p.SubDepartment, subDepartmentSlug)
	}); ok {
		subName = p.SubDepartment
	}

	return &model.SubDepartmentPage{
		Car:               car,
		DepartmentName:    deptName,
		SubDepartmentName: subName,
		Parts: s.catalog.PartsByDepartment(model.DepartmentFilter{
			Department:    deptName,
			SubDepartment: subName,
			CarName:       car.Name,
		}),
	}, nil
}

func (s *service) PartPage(ctx context.Context, carSlug, partID string) (*model.PartPage, error) {
	const op = "navigation.service.PartPage"

	car, err := s.CarBySlug(ctx, carSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	part, ok := s.catalog.PartByID(partID)
	if !ok {
		logger.Debug(ctx, "part not found", logger.String("part_id", partID))
		return nil, fmt.Errorf("%s: part %q: %w", op, partID, model.ErrPartNotFound)
	}

	return &model.PartPage{Car: car, Part: part}, nil
}

// Sidebar returns Home followed by the department tree. With a car slug the
// tree is scoped to that car and every href carries the car prefix.
func (s *service) Sidebar(ctx context.Context, carSlug string) ([]model.NavItem, error) {
	const op = "navigation.service.Sidebar"

	var carName, prefix string
	if carSlug != "" {
		car, err := s.CarBySlug(ctx, carSlug)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		carName, prefix = car.Name, "/"+slug.Slugify(car.Name)
	}

	items := []model.NavItem{{Title: "Home", Href: "/"}}
	if prefix != "" {
		items[0].Href = prefix
	}

	for _, dept := range s.catalog.Departments(carName) {
		deptSlug := slug.Slugify(dept)
		node := model.NavItem{
			Title: dept,
			Href:  prefix + "/" + deptSlug,
			Slug:  deptSlug,
		}
		for _, sub := range s.catalog.SubDepartments(dept, carName) {
			subSlug := slug.Slugify(sub)
			node.Children = append(node.Children, model.NavItem{
				Title: sub,
				Href:  node.Href + "/" + subSlug,
				Slug:  subSlug,
			})
		}
		items = append(items, node)
	}

	return items, nil
}

// StaticRoutes enumerates every page path the catalog can serve, car by car
// in definition order.
func (s *service) StaticRoutes() []string {
	var routes []string
	for _, car := range s.catalog.Cars() {
		carPath := "/" + slug.Slugify(car.Name)
		routes = append(routes, carPath, carPath+"/parts")

		for _, p := range s.catalog.Parts(car.Name) {
			routes = append(routes, carPath+"/parts/"+p.ID)
		}

		for _, dept := range s.catalog.Departments(car.Name) {
			deptPath := carPath + "/" + slug.Slugify(dept)
			routes = append(routes, deptPath)
			for _, sub := range s.catalog.SubDepartments(dept, car.Name) {
				routes = append(routes, deptPath+"/"+slug.Slugify(sub))
			}
		}
	}
	return lo.Uniq(routes)
}
