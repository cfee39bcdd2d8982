package dataset

type document struct {
	Cars  []carEntity  `yaml:"cars"`
	Parts []partEntity `yaml:"parts"`
}

type carEntity struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Category         string `yaml:"category,omitempty"`
	ModelCode        string `yaml:"model_code,omitempty"`
	ImageURL         string `yaml:"image_url,omitempty"`
	ShortDescription string `yaml:"short_description,omitempty"`
}

type partEntity struct {
	ID               string             `yaml:"id"`
	CarIDs           []string           `yaml:"car_ids"`
	Name             string             `yaml:"name"`
	Department       string             `yaml:"department"`
	SubDepartment    string             `yaml:"sub_department,omitempty"`
	ShortDescription string             `yaml:"short_description,omitempty"`
	Description      string             `yaml:"description,omitempty"`
	PartNumber       string             `yaml:"part_number,omitempty"`
	ImageURL         string             `yaml:"image_url,omitempty"`
	GalleryImages    []string           `yaml:"gallery_images,omitempty"`
	Specifications   map[string]string  `yaml:"specifications,omitempty"`
	DesignFiles      []designFileEntity `yaml:"design_files,omitempty"`
	Notes            string             `yaml:"notes,omitempty"`
}

type designFileEntity struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
