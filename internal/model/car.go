package model

type Car struct {
	// Stable identifier, unique across all cars.
	ID string
	// Display name. Also the lookup key used by the query engine.
	Name string
	// Powertrain family, e.g. "Electric" or "Petrol".
	Category         string
	ModelCode        string
	ImageURL         string
	ShortDescription string
}
