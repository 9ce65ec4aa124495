package mining

import (
	"github.com/skybi/tinsig/internal/dataset"
	"strings"
)

// Permit represents a marine mining business permit area (IUP)
type Permit struct {
	Name         string  `json:"name" validate:"required"`
	DU           string  `json:"du" validate:"required"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Daerah       string  `json:"daerah" validate:"required"`
	Area         float64 `json:"luas" validate:"gt=0"`
	DecreeNumber string  `json:"no_sk" validate:"required"`
	DecreeDate   string  `json:"tgl_sk" validate:"required"`
	Clearance    string  `json:"cnc"`
	Status       string  `json:"status" validate:"required"`
}

var _ dataset.Record = (*Permit)(nil)

// Key returns the permit name
func (permit *Permit) Key() string {
	return permit.Name
}

// Field returns the string value of a field by its JSON name
func (permit *Permit) Field(name string) (string, bool) {
	switch name {
	case "name":
		return permit.Name, true
	case "du":
		return permit.DU, true
	case "daerah":
		return permit.Daerah, true
	case "no_sk":
		return permit.DecreeNumber, true
	case "tgl_sk":
		return permit.DecreeDate, true
	case "cnc":
		return permit.Clearance, true
	case "status":
		return permit.Status, true
	}
	return "", false
}

// Location returns the reference coordinates of the permit area
func (permit *Permit) Location() (float64, float64) {
	return permit.Latitude, permit.Longitude
}

// IsActive checks whether the permit is currently active
func (permit *Permit) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(permit.Status), "Active")
}

func permits() []*Permit {
	return []*Permit{
		{
			Name:         "1548",
			DU:           "1548",
			Longitude:    106.1932,
			Latitude:     -1.8144,
			Daerah:       "Lt. A. Kantung - Sungailiat",
			Area:         9919.00,
			DecreeNumber: "188.45/462/Tamben/2010",
			DecreeDate:   "27 Apr 2010",
			Clearance:    "II",
			Status:       "Active",
		},
		{
			Name:         "1555",
			DU:           "1555",
			Longitude:    106.0493,
			Latitude:     -1.6399,
			Daerah:       "Lt. Deniang - Sungailiat",
			Area:         6839.00,
			DecreeNumber: "188.45/463/Tamben/2010",
			DecreeDate:   "27 Apr 2010",
			Clearance:    "II",
			Status:       "Active",
		},
		{
			Name:         "1559",
			DU:           "1559",
			Longitude:    105.7806,
			Latitude:     -1.8061,
			Daerah:       "Lt. P. Danta - Belinyu",
			Area:         1839.00,
			DecreeNumber: "188.45/464/Tamben/2010",
			DecreeDate:   "27 Apr 2010",
			Clearance:    "II",
			Status:       "Active",
		},
		{
			Name:         "1551",
			DU:           "1551",
			Longitude:    105.7188,
			Latitude:     -1.6499,
			Daerah:       "Lt. Bakit - Jebus",
			Area:         1461.00,
			DecreeNumber: "188.45/098/2.03.02/2010",
			DecreeDate:   "28 April 2010",
			Clearance:    "III",
			Status:       "Active",
		},
		{
			Name:         "1549",
			DU:           "1549",
			Longitude:    105.3920,
			Latitude:     -1.5792,
			Daerah:       "Lt. Kebiang/Penganak - Jebus",
			Area:         15050.00,
			DecreeNumber: "188.45/097/2.03.02/2010",
			DecreeDate:   "28 April 2010",
			Clearance:    "III",
			Status:       "Active",
		},
		{
			Name:         "1545",
			DU:           "1545",
			Longitude:    105.6401,
			Latitude:     -2.1202,
			Daerah:       "Lt. Tempilang - Kelapa",
			Area:         5383.49,
			DecreeNumber: "188.45/096/2.03.02/2010",
			DecreeDate:   "28 April 2010",
			Clearance:    "III",
			Status:       "Active",
		},
	}
}
