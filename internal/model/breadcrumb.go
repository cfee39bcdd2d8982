package model

// Separator is the glyph rendered before a crumb.
type Separator int

const (
	SeparatorNone Separator = iota
	SeparatorDefault
	SeparatorPipe
)

func (s Separator) String() string {
	switch s {
	case SeparatorDefault:
		return "default"
	case SeparatorPipe:
		return "pipe"
	default:
		return "none"
	}
}

type Crumb struct {
	Label string
	// Link target. Empty for the terminal crumb.
	Href      string
	Terminal  bool
	Separator Separator
}

type Breadcrumb struct {
	Crumbs []Crumb
}

// Labels returns the crumb labels in order.
func (b Breadcrumb) Labels() []string {
	out := make([]string, 0, len(b.Crumbs))
	for _, c := range b.Crumbs {
		out = append(out, c.Label)
	}
	return out
}
