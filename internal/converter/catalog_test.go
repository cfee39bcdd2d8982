package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogv1 "github.com/you-humble/knowledge-archive/internal/api/catalog/v1"
	"github.com/you-humble/knowledge-archive/internal/model"
)

func TestPartsToAPIEncodesEmptyAsArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []*model.Part
		want  string
	}{
		{name: "nil", parts: nil, want: "[]"},
		{name: "empty", parts: []*model.Part{}, want: "[]"},
		{
			name:  "orphan part keeps an empty car list",
			parts: []*model.Part{{ID: "p1", Department: "Mechanical", Name: "Bolt"}},
			want:  `[{"id":"p1","car_ids":[],"department":"Mechanical","name":"Bolt"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw, err := json.Marshal(PartsToAPI(tt.parts))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestBreadcrumbToAPI(t *testing.T) {
	t.Parallel()

	got := BreadcrumbToAPI("/electrical,autonomous", model.Breadcrumb{Crumbs: []model.Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Electrical", Href: "/electrical", Separator: model.SeparatorDefault},
		{Label: "Autonomous", Terminal: true, Separator: model.SeparatorPipe},
	}})

	assert.Equal(t, catalogv1.Breadcrumb{
		Path: "/electrical,autonomous",
		Crumbs: []catalogv1.Crumb{
			{Label: "Home", Href: "/", Separator: "none"},
			{Label: "Electrical", Href: "/electrical", Separator: "default"},
			{Label: "Autonomous", Terminal: true, Separator: "pipe"},
		},
	}, got)
}

func TestNavItemsToAPI(t *testing.T) {
	t.Parallel()

	got := NavItemsToAPI([]model.NavItem{
		{Title: "Home", Href: "/falcon"},
		{Title: "Mechanical", Href: "/falcon/mechanical", Slug: "mechanical", Children: []model.NavItem{
			{Title: "Chassis", Href: "/falcon/mechanical/chassis", Slug: "chassis"},
		}},
	})

	require.Len(t, got, 2)
	assert.Nil(t, got[0].Children)
	require.Len(t, got[1].Children, 1)
	assert.Equal(t, "/falcon/mechanical/chassis", got[1].Children[0].Href)
}
