package repository

type CarEntity struct {
	ID               string `bson:"_id"`
	Position         int    `bson:"position"`
	Name             string `bson:"name"`
	Category         string `bson:"category,omitempty"`
	ModelCode        string `bson:"model_code,omitempty"`
	ImageURL         string `bson:"image_url,omitempty"`
	ShortDescription string `bson:"short_description,omitempty"`
}

type PartEntity struct {
	ID               string             `bson:"_id"`
	Position         int                `bson:"position"`
	CarIDs           []string           `bson:"car_ids"`
	Name             string             `bson:"name"`
	Department       string             `bson:"department"`
	SubDepartment    string             `bson:"sub_department,omitempty"`
	ShortDescription string             `bson:"short_description,omitempty"`
	Description      string             `bson:"description,omitempty"`
	PartNumber       string             `bson:"part_number,omitempty"`
	ImageURL         string             `bson:"image_url,omitempty"`
	GalleryImages    []string           `bson:"gallery_images,omitempty"`
	Specifications   map[string]string  `bson:"specifications,omitempty"`
	DesignFiles      []DesignFileEntity `bson:"design_files,omitempty"`
	Notes            string             `bson:"notes,omitempty"`
}

type DesignFileEntity struct {
	Name string `bson:"name"`
	URL  string `bson:"url"`
}
