package http_test

import (
	"net/http"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/knowledge-archive/internal/api/catalog/v1"
)

var _ = Describe("Catalog API", func() {
	Context("cars and parts", func() {
		It("lists every car in definition order", func() {
			var cars []catalogv1.Car
			Expect(getJSON("/cars", &cars)).To(Equal(http.StatusOK))

			Expect(lo.Map(cars, func(c catalogv1.Car, _ int) string { return c.Name })).To(Equal([]string{
				"Falcon", "Terra Explorer", "CityHopper EV", "Stallion V8",
			}))
		})

		It("scopes parts to a car", func() {
			var parts []catalogv1.Part
			Expect(getJSON("/parts?car=Stallion%20V8", &parts)).To(Equal(http.StatusOK))

			Expect(parts).To(HaveLen(1))
			Expect(parts[0].ID).To(Equal("mech-hd-001"))
		})

		It("returns an empty list for an unknown car", func() {
			var parts []catalogv1.Part
			Expect(getJSON("/parts?car=NoSuchCar", &parts)).To(Equal(http.StatusOK))
			Expect(parts).To(BeEmpty())
		})

		It("returns a part by id", func() {
			var part catalogv1.Part
			Expect(getJSON("/parts/elec-hv-001", &part)).To(Equal(http.StatusOK))

			Expect(part.Name).To(Equal("Battery Pack HVB-800V"))
			Expect(part.Department).To(Equal("Electrical"))
			Expect(part.SubDepartment).To(Equal("High Voltage"))
		})

		It("answers 404 for a missing part", func() {
			var apiErr catalogv1.Error
			Expect(getJSON("/parts/"+gofakeit.UUID(), &apiErr)).To(Equal(http.StatusNotFound))
			Expect(apiErr.Code).To(Equal(http.StatusNotFound))
		})

		It("filters by department slug and sub-department", func() {
			var parts []catalogv1.Part
			status := getJSON("/departments/mechanical/parts?sub=Heat%20Dissipation&car=Falcon", &parts)
			Expect(status).To(Equal(http.StatusOK))

			Expect(lo.Map(parts, func(p catalogv1.Part, _ int) string { return p.ID })).To(Equal([]string{
				"mech-hd-001", "mech-hd-002",
			}))
		})
	})

	Context("featured parts", func() {
		It("returns the default count for a known car", func() {
			var parts []catalogv1.Part
			Expect(getJSON("/featured?car=Falcon", &parts)).To(Equal(http.StatusOK))
			Expect(parts).To(HaveLen(3))
		})

		It("answers 404 for an unknown car", func() {
			Expect(getJSON("/featured?car=NoSuchCar", nil)).To(Equal(http.StatusNotFound))
		})

		It("rejects a non-numeric count", func() {
			Expect(getJSON("/featured?car=Falcon&count=many", nil)).To(Equal(http.StatusBadRequest))
		})
	})

	Context("breadcrumbs", func() {
		It("uses the part record for part paths", func() {
			var b catalogv1.Breadcrumb
			Expect(getJSON("/breadcrumbs?path=/parts/mech-hd-001", &b)).To(Equal(http.StatusOK))

			Expect(b.Path).To(Equal("/parts/mech-hd-001"))
			Expect(lo.Map(b.Crumbs, func(c catalogv1.Crumb, _ int) string { return c.Label })).To(Equal([]string{
				"Home", "Mechanical", "Heat Dissipation", "Radiator X1000",
			}))
			Expect(b.Crumbs[3].Terminal).To(BeTrue())
			Expect(b.Crumbs[3].Href).To(BeEmpty())
		})

		It("returns a single terminal Home crumb for the root", func() {
			var b catalogv1.Breadcrumb
			Expect(getJSON("/breadcrumbs?path=/", &b)).To(Equal(http.StatusOK))

			Expect(b.Crumbs).To(HaveLen(1))
			Expect(b.Crumbs[0].Label).To(Equal("Home"))
			Expect(b.Crumbs[0].Terminal).To(BeTrue())
		})
	})

	Context("search", func() {
		It("links scoped results under the current car segment", func() {
			var res catalogv1.SearchResponse
			Expect(getJSON("/search?path=/falcon&q=radiator", &res)).To(Equal(http.StatusOK))

			Expect(res.Query).To(Equal("radiator"))
			Expect(res.Items).To(HaveLen(1))
			Expect(res.Items[0].Href).To(Equal("/falcon/parts/mech-hd-001"))
		})

		It("returns nothing for an empty term", func() {
			var res catalogv1.SearchResponse
			Expect(getJSON("/search?path=/falcon&q=", &res)).To(Equal(http.StatusOK))
			Expect(res.Items).To(BeEmpty())
		})
	})

	Context("navigation and pages", func() {
		It("builds the sidebar for a car", func() {
			var items []catalogv1.NavItem
			Expect(getJSON("/navigation?car=falcon", &items)).To(Equal(http.StatusOK))

			Expect(items).NotTo(BeEmpty())
			Expect(items[0].Title).To(Equal("Home"))
			Expect(items[0].Href).To(Equal("/falcon"))
		})

		It("enumerates static routes", func() {
			var routes catalogv1.Routes
			Expect(getJSON("/routes", &routes)).To(Equal(http.StatusOK))

			Expect(routes.Routes).To(ContainElements(
				"/falcon",
				"/falcon/parts/mech-hd-001",
				"/falcon/mechanical/heat-dissipation",
				"/stallion-v8/parts",
			))
		})

		It("renders a department page with sub-department links", func() {
			var page catalogv1.DepartmentPage
			Expect(getJSON("/pages/falcon/mechanical", &page)).To(Equal(http.StatusOK))

			Expect(page.Car.Name).To(Equal("Falcon"))
			Expect(page.SubDepartments).To(ContainElement(catalogv1.SubDepartmentLink{
				Name: "Heat Dissipation",
				Href: "/falcon/mechanical/heat-dissipation",
			}))
		})

		It("answers 404 for a part page of an unknown car", func() {
			Expect(getJSON("/pages/no-such-car/parts/mech-hd-001", nil)).To(Equal(http.StatusNotFound))
		})
	})

	Context("slugs and docs", func() {
		It("slugifies a name", func() {
			var s catalogv1.Slug
			Expect(getJSON("/slugs?name=Terra%20Explorer", &s)).To(Equal(http.StatusOK))
			Expect(s.Slug).To(Equal("terra-explorer"))
		})

		It("requires name or slug", func() {
			Expect(getJSON("/slugs", nil)).To(Equal(http.StatusBadRequest))
		})

		It("lists the mounted endpoints", func() {
			var endpoints []catalogv1.Endpoint
			Expect(getJSON("/docs/endpoints", &endpoints)).To(Equal(http.StatusOK))

			Expect(endpoints).To(ContainElement(catalogv1.Endpoint{Method: http.MethodGet, Path: "/api/v1/cars"}))
		})
	})
})
