package repository

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/knowledge-archive/internal/model"
)

func fakePart(id string, carIDs ...string) *model.Part {
	return &model.Part{
		ID:             id,
		CarIDs:         carIDs,
		Department:     gofakeit.RandomString([]string{"Mechanical", "Electrical", "Autonomous"}),
		Name:           gofakeit.ProductName(),
		PartNumber:     gofakeit.UUID(),
		Specifications: map[string]string{"Material": gofakeit.ProductMaterial()},
	}
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ds      model.Dataset
		wantErr string
	}{
		{
			name: "empty dataset",
			ds:   model.Dataset{},
		},
		{
			name:    "car without id",
			ds:      model.Dataset{Cars: []*model.Car{{Name: "Falcon"}}},
			wantErr: "car #0: empty id",
		},
		{
			name:    "part without id",
			ds:      model.Dataset{Parts: []*model.Part{{Department: "Mechanical"}}},
			wantErr: "part #0: empty id",
		},
		{
			name:    "part without department",
			ds:      model.Dataset{Parts: []*model.Part{{ID: "p-1"}}},
			wantErr: `part "p-1": empty department`,
		},
		{
			name: "nil entries are skipped",
			ds:   model.Dataset{Cars: []*model.Car{nil}, Parts: []*model.Part{nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewStore(tt.ds)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidDataset)
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, s.Cars())
			assert.Empty(t, s.Parts())
		})
	}
}

func TestStoreIsolation(t *testing.T) {
	t.Parallel()

	part := fakePart("p-1", "car-001")
	car := &model.Car{ID: "car-001", Name: "Falcon"}

	s, err := NewStore(model.Dataset{Cars: []*model.Car{car}, Parts: []*model.Part{part}})
	require.NoError(t, err)

	// source mutations do not leak in
	part.Name = "mutated"
	car.Name = "mutated"
	got, ok := s.PartByID("p-1")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", got.Name)
	_, ok = s.CarByName("Falcon")
	assert.True(t, ok)

	// returned slices are fresh
	parts := s.Parts()
	parts[0] = nil
	assert.NotNil(t, s.Parts()[0])
}

func TestStoreLookups(t *testing.T) {
	t.Parallel()

	first := fakePart("dup", "car-001")
	second := fakePart("dup", "car-002")

	s, err := NewStore(model.Dataset{
		Cars: []*model.Car{
			{ID: "car-001", Name: "Falcon"},
			{ID: "car-002", Name: "Falcon"},
		},
		Parts: []*model.Part{first, second},
	})
	require.NoError(t, err)

	p, ok := s.PartByID("dup")
	require.True(t, ok)
	assert.Equal(t, []string{"car-001"}, p.CarIDs)
	assert.Len(t, s.Parts(), 2)

	c, ok := s.CarByName("Falcon")
	require.True(t, ok)
	assert.Equal(t, "car-001", c.ID)

	_, ok = s.CarByName("falcon")
	assert.False(t, ok)

	c, ok = s.CarByID("car-002")
	require.True(t, ok)
	assert.Equal(t, "Falcon", c.Name)

	_, ok = s.PartByID("does-not-exist")
	assert.False(t, ok)
}
