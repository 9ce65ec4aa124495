package schema

import "github.com/skybi/tinsig/internal/dataset"

// FeatureCollection represents a GeoJSON feature collection
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Feature represents a GeoJSON point feature wrapping a dataset record.
// Layer is a foreign member naming the dataset the record belongs to.
type Feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Layer      string         `json:"layer"`
	Geometry   *PointGeometry `json:"geometry"`
	Properties dataset.Record `json:"properties"`
}

// PointGeometry represents a GeoJSON point; coordinates are ordered longitude, latitude
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewFeatureCollection creates an empty feature collection
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: []*Feature{},
	}
}

// Add appends a record of the given layer as a point feature
func (collection *FeatureCollection) Add(layer string, record dataset.Record) {
	lat, lon := record.Location()
	collection.Features = append(collection.Features, &Feature{
		Type:  "Feature",
		ID:    record.Key(),
		Layer: layer,
		Geometry: &PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{lon, lat},
		},
		Properties: record,
	})
}
