// Package catalogv1 holds the JSON payloads of the catalog HTTP API.
package catalogv1

type Car struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category,omitempty"`
	ModelCode        string `json:"model_code,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
}

type Part struct {
	ID               string            `json:"id"`
	CarIDs           []string          `json:"car_ids"`
	Department       string            `json:"department"`
	SubDepartment    string            `json:"sub_department,omitempty"`
	Name             string            `json:"name"`
	ShortDescription string            `json:"short_description,omitempty"`
	Description      string            `json:"description,omitempty"`
	PartNumber       string            `json:"part_number,omitempty"`
	ImageURL         string            `json:"image_url,omitempty"`
	GalleryImages    []string          `json:"gallery_images,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	DesignFiles      []DesignFile      `json:"design_files,omitempty"`
	Notes            string            `json:"notes,omitempty"`
}

type DesignFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Crumb struct {
	Label     string `json:"label"`
	Href      string `json:"href,omitempty"`
	Terminal  bool   `json:"terminal"`
	Separator string `json:"separator"`
}

type Breadcrumb struct {
	Path   string  `json:"path"`
	Crumbs []Crumb `json:"crumbs"`
}

type SearchItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Href     string `json:"href"`
}

type SearchResponse struct {
	Query string       `json:"query"`
	Items []SearchItem `json:"items"`
}

type NavItem struct {
	Title    string    `json:"title"`
	Href     string    `json:"href"`
	Slug     string    `json:"slug,omitempty"`
	Children []NavItem `json:"children,omitempty"`
}

type CarPage struct {
	Car      Car    `json:"car"`
	Featured []Part `json:"featured"`
}

type CarPartsPage struct {
	Car   Car    `json:"car"`
	Parts []Part `json:"parts"`
}

type SubDepartmentLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type DepartmentPage struct {
	Car            Car                 `json:"car"`
	Department     string              `json:"department"`
	SubDepartments []SubDepartmentLink `json:"sub_departments"`
	Parts          []Part              `json:"parts"`
}

type SubDepartmentPage struct {
	Car           Car    `json:"car"`
	Department    string `json:"department"`
	SubDepartment string `json:"sub_department"`
	Parts         []Part `json:"parts"`
}

type PartPage struct {
	Car  Car  `json:"car"`
	Part Part `json:"part"`
}

type Routes struct {
	Routes []string `json:"routes"`
}

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type Slug struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
