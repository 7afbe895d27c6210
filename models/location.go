package models

// Location is a Turkish city/district address. District must belong to the
// selected city; finer fields are free text.
type Location struct {
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	District     string `bson:"district,omitempty" json:"district,omitempty"`
	Neighborhood string `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	Street       string `bson:"street,omitempty" json:"street,omitempty"`
	BuildingNo   string `bson:"buildingNo,omitempty" json:"buildingNo,omitempty"`
}

// Coordinates are stored as submitted. No distance math happens anywhere.
type Coordinates struct {
	Lat float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}
