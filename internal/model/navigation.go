package model

// SearchItem is one entry of the search dialog.
type SearchItem struct {
	ID       string
	Name     string
	Category string
	Type     string
	Href     string
}

type NavItem struct {
	Title    string
	Href     string
	Slug     string
	Children []NavItem
}

type CarPage struct {
	Car      *Car
	Featured []*Part
}

type CarPartsPage struct {
	Car   *Car
	Parts []*Part
}

type SubDepartmentLink struct {
	Name string
	Href string
}

type DepartmentPage struct {
	Car            *Car
	DepartmentName string
	SubDepartments []SubDepartmentLink
	Parts          []*Part
}

type SubDepartmentPage struct {
	Car               *Car
	DepartmentName    string
	SubDepartmentName string
	Parts             []*Part
}

type PartPage struct {
	Car  *Car
	Part *Part
}
