package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/internal/service/mocks"
)

type fixture struct {
	cars  []*model.Car
	parts []*model.Part
}

func newFixture() fixture {
	part := func(id, dept, sub string, cars ...string) *model.Part {
		return &model.Part{
			ID:            id,
			CarIDs:        cars,
			Department:    dept,
			SubDepartment: sub,
			Name:          gofakeit.ProductName(),
		}
	}

	return fixture{
		cars: []*model.Car{
			{ID: "car-001", Name: "Falcon"},
			{ID: "car-002", Name: "Terra Explorer"},
			{ID: "car-003", Name: "Ghost"},
		},
		parts: []*model.Part{
			part("pm1", "Mechanical", "Heat Dissipation", "car-001", "car-002"),
			part("pm2", "Mechanical", "", "car-001"),
			part("pe1", "Electrical", "High Voltage", "car-001"),
			part("pa1", "Autonomous", "", "car-001"),
			part("pg1", "Managerial", "", "car-002"),
			part("pe2", "electrical", "high voltage", "car-002"),
			part("orphan", "Mechanical", "", "car-999"),
		},
	}
}

// expectStore answers every store call from f, however often it is made.
func expectStore(m *mocks.MockCatalogStore, f fixture) {
	m.On("Cars").Return(func() []*model.Car { return append([]*model.Car(nil), f.cars...) }).Maybe()
	m.On("Parts").Return(func() []*model.Part { return append([]*model.Part(nil), f.parts...) }).Maybe()
	m.On("CarByName", mock.Anything).Return(func(name string) (*model.Car, bool) {
		return lo.Find(f.cars, func(c *model.Car) bool { return c.Name == name })
	}).Maybe()
	m.On("PartByID", mock.Anything).Return(func(id string) (*model.Part, bool) {
		return lo.Find(f.parts, func(p *model.Part) bool { return p.ID == id })
	}).Maybe()
}

func ids(parts []*model.Part) []string {
	return lo.Map(parts, func(p *model.Part, _ int) string { return p.ID })
}

func TestServiceParts(t *testing.T) {
	t.Parallel()

	type deps struct {
		store *mocks.MockCatalogStore
	}

	type testCase struct {
		name    string
		carName string
		setup   func(d deps)
		assert  func(t *testing.T, res []*model.Part, d deps)
	}

	f := newFixture()

	tests := []testCase{
		{
			name:    "known car: its parts in store order",
			carName: "Falcon",
			setup:   func(d deps) { expectStore(d.store, f) },
			assert: func(t *testing.T, res []*model.Part, d deps) {
				assert.Equal(t, []string{"pm1", "pm2", "pe1", "pa1"}, ids(res))
			},
		},
		{
			name:    "unknown car: empty, store parts untouched",
			carName: "NoSuchCar",
			setup: func(d deps) {
				d.store.On("CarByName", "NoSuchCar").Return((*model.Car)(nil), false).Once()
			},
			assert: func(t *testing.T, res []*model.Part, d deps) {
				require.NotNil(t, res)
				assert.Empty(t, res)
				d.store.AssertNotCalled(t, "Parts")
			},
		},
		{
			name:    "car without parts",
			carName: "Ghost",
			setup:   func(d deps) { expectStore(d.store, f) },
			assert: func(t *testing.T, res []*model.Part, d deps) {
				require.NotNil(t, res)
				assert.Empty(t, res)
			},
		},
		{
			name:  "omitted car: union over cars, no duplicates, no orphans",
			setup: func(d deps) { expectStore(d.store, f) },
			assert: func(t *testing.T, res []*model.Part, d deps) {
				assert.Equal(t, []string{"pm1", "pm2", "pe1", "pa1", "pg1", "pe2"}, ids(res))
			},
		},
		{
			name: "omitted car with empty store",
			setup: func(d deps) {
				d.store.On("Cars").Return([]*model.Car{}).Once()
			},
			assert: func(t *testing.T, res []*model.Part, d deps) {
				require.NotNil(t, res)
				assert.Empty(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{store: mocks.NewMockCatalogStore(t)}
			tt.setup(d)

			svc := NewCatalogService(d.store)
			tt.assert(t, svc.Parts(tt.carName), d)
		})
	}
}

func TestServicePartsByDepartment(t *testing.T) {
	t.Parallel()

	f := newFixture()

	tests := []struct {
		name   string
		filter model.DepartmentFilter
		want   []string
	}{
		{
			name:   "direct parts only when sub-department omitted",
			filter: model.DepartmentFilter{Department: "mechanical", CarName: "Falcon"},
			want:   []string{"pm2"},
		},
		{
			name:   "sub-department compared case-insensitively",
			filter: model.DepartmentFilter{Department: "MECHANICAL", SubDepartment: "heat dissipation", CarName: "Falcon"},
			want:   []string{"pm1"},
		},
		{
			name:   "department spelling differs between parts",
			filter: model.DepartmentFilter{Department: "Electrical", SubDepartment: "High Voltage"},
			want:   []string{"pe1", "pe2"},
		},
		{
			name:   "car scope narrows the result",
			filter: model.DepartmentFilter{Department: "electrical", SubDepartment: "high voltage", CarName: "Terra Explorer"},
			want:   []string{"pe2"},
		},
		{
			name:   "omitted car scans the whole store, orphans included",
			filter: model.DepartmentFilter{Department: "Mechanical"},
			want:   []string{"pm2", "orphan"},
		},
		{
			name:   "unknown car widens to the whole store",
			filter: model.DepartmentFilter{Department: "Mechanical", CarName: "NoSuchCar"},
			want:   []string{"pm2", "orphan"},
		},
		{
			name:   "unknown department",
			filter: model.DepartmentFilter{Department: "Hydraulics", CarName: "Falcon"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockCatalogStore(t)
			expectStore(store, f)

			res := NewCatalogService(store).PartsByDepartment(tt.filter)
			assert.Equal(t, tt.want, ids(res))
		})
	}
}

func TestServiceFeaturedParts(t *testing.T) {
	t.Parallel()

	f := newFixture()

	tests := []struct {
		name    string
		count   int
		carName string
		wantOK  bool
		want    []string
	}{
		{name: "one per department", count: 3, carName: "Falcon", wantOK: true, want: []string{"pm1", "pe1", "pa1"}},
		{name: "backfill in store order", count: 4, carName: "Falcon", wantOK: true, want: []string{"pm1", "pe1", "pa1", "pm2"}},
		{name: "count larger than the car's parts", count: 10, carName: "Falcon", wantOK: true, want: []string{"pm1", "pe1", "pa1", "pm2"}},
		{name: "count below department picks", count: 2, carName: "Falcon", wantOK: true, want: []string{"pm1", "pe1"}},
		{name: "department match is exact", count: 3, carName: "Terra Explorer", wantOK: true, want: []string{"pm1", "pg1", "pe2"}},
		{name: "zero count", count: 0, carName: "Falcon", wantOK: true, want: []string{}},
		{name: "negative count", count: -1, carName: "Falcon", wantOK: true, want: []string{}},
		{name: "car without parts", count: 3, carName: "Ghost", wantOK: true, want: []string{}},
		{name: "unknown car", count: 3, carName: "NoSuchCar", wantOK: false},
		{name: "omitted car", count: 3, carName: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockCatalogStore(t)
			expectStore(store, f)

			res, ok := NewCatalogService(store).FeaturedParts(tt.count, tt.carName)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			assert.Equal(t, tt.want, ids(res))
		})
	}
}

func TestServiceHierarchy(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCatalogStore(t)
	expectStore(store, newFixture())
	svc := NewCatalogService(store)

	assert.Equal(t, []string{"Mechanical", "Electrical", "Autonomous", "Managerial"}, svc.Departments(""))
	assert.Equal(t, []string{"Mechanical", "Managerial", "electrical"}, svc.Departments("Terra Explorer"))
	assert.Empty(t, svc.Departments("NoSuchCar"))

	assert.Equal(t, []string{"High Voltage"}, svc.SubDepartments("electrical", ""))
	assert.Equal(t, []string{"Heat Dissipation"}, svc.SubDepartments("Mechanical", "Falcon"))
	assert.Empty(t, svc.SubDepartments("Autonomous", "Falcon"))
}

func TestServicePartByID(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCatalogStore(t)
	want := &model.Part{ID: gofakeit.UUID(), Department: "Mechanical"}
	store.On("PartByID", want.ID).Return(want, true).Once()
	store.On("PartByID", "does-not-exist").Return((*model.Part)(nil), false).Once()

	svc := NewCatalogService(store)

	got, ok := svc.PartByID(want.ID)
	require.True(t, ok)
	assert.Same(t, want, got)

	got, ok = svc.PartByID("does-not-exist")
	assert.False(t, ok)
	assert.Nil(t, got)
}
