package mining

import "github.com/skybi/tinsig/internal/dataset"

// Production represents the tin ore output of a mining location on a single day
type Production struct {
	ID        string  `json:"id" validate:"required"`
	Date      string  `json:"tanggal_produksi" validate:"required,datetime=2006-01-02"`
	Site      string  `json:"lokasi" validate:"required"`
	Kabupaten string  `json:"kabupaten" validate:"required"`
	Kecamatan string  `json:"kecamatan" validate:"required"`
	Tons      float64 `json:"produksi_ton" validate:"gte=0"`
	Grade     float64 `json:"kadar_sn" validate:"gte=0,lte=100"`
	Method    string  `json:"metode_tambang" validate:"required"`
	Operator  string  `json:"operator" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

var _ dataset.Record = (*Production)(nil)

// Key returns the production record ID
func (prod *Production) Key() string {
	return prod.ID
}

// Field returns the string value of a field by its JSON name
func (prod *Production) Field(name string) (string, bool) {
	switch name {
	case "id":
		return prod.ID, true
	case "tanggal_produksi":
		return prod.Date, true
	case "lokasi":
		return prod.Site, true
	case "kabupaten":
		return prod.Kabupaten, true
	case "kecamatan":
		return prod.Kecamatan, true
	case "metode_tambang":
		return prod.Method, true
	case "operator":
		return prod.Operator, true
	}
	return "", false
}

// Location returns the coordinates of the producing mining location
func (prod *Production) Location() (float64, float64) {
	return prod.Latitude, prod.Longitude
}

func productions() []*Production {
	return []*Production{
		{
			ID:        "PBT001",
			Date:      "2025-01-15",
			Site:      "DU 1541 B",
			Kabupaten: "Bangka Selatan",
			Kecamatan: "Toboali",
			Tons:      25.5,
			Grade:     68.5,
			Method:    "Open Pit",
			Operator:  "PT Timah Tbk",
			Latitude:  -3.028195,
			Longitude: 106.483747,
		},
		{
			ID:        "PBT002",
			Date:      "2025-01-16",
			Site:      "DU 1548",
			Kabupaten: "Bangka",
			Kecamatan: "Sungailiat",
			Tons:      32.8,
			Grade:     71.2,
			Method:    "Marine Dredging",
			Operator:  "PT Timah Tbk",
			Latitude:  -1.8144,
			Longitude: 106.1932,
		},
		{
			ID:        "PBT003",
			Date:      "2025-01-17",
			Site:      "DU 1555",
			Kabupaten: "Bangka",
			Kecamatan: "Sungailiat",
			Tons:      18.3,
			Grade:     65.8,
			Method:    "Marine Dredging",
			Operator:  "PT Timah Tbk",
			Latitude:  -1.6399,
			Longitude: 106.0493,
		},
		{
			ID:        "PBT004",
			Date:      "2025-01-18",
			Site:      "DU 1559",
			Kabupaten: "Bangka",
			Kecamatan: "Belinyu",
			Tons:      22.7,
			Grade:     69.1,
			Method:    "Marine Dredging",
			Operator:  "PT Timah Tbk",
			Latitude:  -1.8061,
			Longitude: 105.7806,
		},
		{
			ID:        "PBT005",
			Date:      "2025-01-19",
			Site:      "DU 1551",
			Kabupaten: "Bangka",
			Kecamatan: "Jebus",
			Tons:      15.9,
			Grade:     72.3,
			Method:    "Marine Dredging",
			Operator:  "PT Timah Tbk",
			Latitude:  -1.6499,
			Longitude: 105.7188,
		},
	}
}
