package service

import (
	"strings"

	"github.com/you-humble/knowledge-archive/internal/model"
	"github.com/you-humble/knowledge-archive/internal/slug"
)

const (
	homeLabel     = "Home"
	partsSegment  = "parts"
	groupSplitter = ","
)

type PartFinder interface {
	PartByID(id string) (*model.Part, bool)
}

type service struct {
	parts PartFinder
}

func NewBreadcrumbService(parts PartFinder) *service {
	return &service{parts: parts}
}

// ResolvePath splits an URL path on "/" and resolves the non-empty segments.
func (s *service) ResolvePath(path string) model.Breadcrumb {
	segments := make([]string, 0, strings.Count(path, "/")+1)
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return s.Resolve(segments)
}

// Resolve builds the breadcrumb chain for path segments. The last crumb is
// always terminal.
func (s *service) Resolve(segments []string) model.Breadcrumb {
	if len(segments) == 0 {
		return model.Breadcrumb{Crumbs: []model.Crumb{{Label: homeLabel, Terminal: true}}}
	}

	if len(segments) == 2 && segments[0] == partsSegment {
		if p, ok := s.parts.PartByID(segments[1]); ok {
			return partTrail(p)
		}
	}

	crumbs := []model.Crumb{home()}
	last := len(segments) - 1
	for i, seg := range segments {
		if items := groupItems(seg); items != nil {
			crumbs = append(crumbs, groupCrumbs(items, i == last)...)
			continue
		}

		c := model.Crumb{
			Label:     slug.DisplayName(seg),
			Href:      "/" + strings.Join(segments[:i+1], "/"),
			Separator: model.SeparatorDefault,
		}
		if i == last {
			c.Href, c.Terminal = "", true
		}
		crumbs = append(crumbs, c)
	}

	// An empty trailing group leaves an earlier crumb last.
	if tail := &crumbs[len(crumbs)-1]; !tail.Terminal {
		tail.Href, tail.Terminal = "", true
	}

	return model.Breadcrumb{Crumbs: crumbs}
}

// partTrail is Home, department, sub-department when present, then the part.
// Labels are the record's own names.
func partTrail(p *model.Part) model.Breadcrumb {
	deptHref := "/" + slug.Slugify(p.Department)

	crumbs := []model.Crumb{
		home(),
		{Label: p.Department, Href: deptHref, Separator: model.SeparatorDefault},
	}
	if !p.Direct() {
		crumbs = append(crumbs, model.Crumb{
			Label:     p.SubDepartment,
			Href:      deptHref + "/" + slug.Slugify(p.SubDepartment),
			Separator: model.SeparatorDefault,
		})
	}
	crumbs = append(crumbs, model.Crumb{Label: p.Name, Terminal: true, Separator: model.SeparatorDefault})

	return model.Breadcrumb{Crumbs: crumbs}
}

// groupItems returns the trimmed, non-empty items of a comma-separated
// segment, or nil when the segment is not a group. A group of only commas
// yields an empty, non-nil slice.
func groupItems(segment string) []string {
	decoded := slug.Decode(segment)
	if !strings.Contains(decoded, groupSplitter) {
		return nil
	}

	items := []string{}
	for _, item := range strings.Split(decoded, groupSplitter) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func groupCrumbs(items []string, final bool) []model.Crumb {
	out := make([]model.Crumb, 0, len(items))
	for j, item := range items {
		c := model.Crumb{
			Label:     slug.DisplayName(item),
			Href:      "/" + slug.Slugify(item),
			Separator: model.SeparatorPipe,
		}
		if j == 0 {
			c.Separator = model.SeparatorDefault
		}
		if final && j == len(items)-1 {
			c.Href, c.Terminal = "", true
		}
		out = append(out, c)
	}
	return out
}

func home() model.Crumb {
	return model.Crumb{Label: homeLabel, Href: "/"}
}
