package mining

import "github.com/skybi/tinsig/internal/dataset"

// IllegalSite represents an illegal mining site recorded during a field survey
type IllegalSite struct {
	ID              string  `json:"id" validate:"required"`
	MobileID        string  `json:"mobile_id" validate:"required"`
	Kabupaten       string  `json:"kabupaten" validate:"required"`
	SurveyDate      string  `json:"tanggal_survey" validate:"required,datetime=2006-01-02"`
	Latitude        float64 `json:"latitude" validate:"latitude"`
	Longitude       float64 `json:"longitude" validate:"longitude"`
	OwnerName       string  `json:"nama_pemilik"`
	MineType        string  `json:"jenis_tambang" validate:"required"`
	Kecamatan       string  `json:"kecamatan" validate:"required"`
	Workers         int     `json:"jumlah_pekerja" validate:"gte=0"`
	DailyProduction float64 `json:"estimasi_produksi_hari" validate:"gte=0"`
}

var _ dataset.Record = (*IllegalSite)(nil)

// Key returns the survey ID of the site
func (site *IllegalSite) Key() string {
	return site.ID
}

// Field returns the string value of a field by its JSON name
func (site *IllegalSite) Field(name string) (string, bool) {
	switch name {
	case "id":
		return site.ID, true
	case "mobile_id":
		return site.MobileID, true
	case "kabupaten":
		return site.Kabupaten, true
	case "kecamatan":
		return site.Kecamatan, true
	case "tanggal_survey":
		return site.SurveyDate, true
	case "nama_pemilik":
		return site.OwnerName, true
	case "jenis_tambang":
		return site.MineType, true
	}
	return "", false
}

// Location returns the surveyed coordinates of the site
func (site *IllegalSite) Location() (float64, float64) {
	return site.Latitude, site.Longitude
}

func illegalSites() []*IllegalSite {
	return []*IllegalSite{
		{
			ID:              "FIM/01/25/00001",
			MobileID:        "FIM1735790356829",
			Kabupaten:       "Bangka Selatan",
			SurveyDate:      "2025-01-02",
			Latitude:        -3.028195,
			Longitude:       106.4837467,
			OwnerName:       "Amri",
			MineType:        "TAMBANG BESAR ILEGAL",
			Kecamatan:       "Toboali",
			Workers:         2,
			DailyProduction: 30,
		},
		{
			ID:              "FIM/01/25/00002",
			MobileID:        "FIM1736133665771",
			Kabupaten:       "Bangka Selatan",
			SurveyDate:      "2025-01-06",
			Latitude:        -2.9378167,
			Longitude:       106.4983867,
			OwnerName:       "aden,pian,jek",
			MineType:        "TAMBANG KECIL ILEGAL",
			Kecamatan:       "Toboali",
			Workers:         3,
			DailyProduction: 5,
		},
		{
			ID:              "FIM/01/25/00003",
			MobileID:        "FIM1736413003048",
			Kabupaten:       "Bangka Selatan",
			SurveyDate:      "2025-01-09",
			Latitude:        -3.0268233,
			Longitude:       106.5027317,
			OwnerName:       "Hen ojek",
			MineType:        "TAMBANG SEMPROT ILEGAL",
			Kecamatan:       "Toboali",
			Workers:         3,
			DailyProduction: 20,
		},
		{
			ID:              "FIM/01/25/00004",
			MobileID:        "FIM1736753958170",
			Kabupaten:       "Bangka Selatan",
			SurveyDate:      "2025-01-13",
			Latitude:        -3.0290933,
			Longitude:       106.516585,
			OwnerName:       "monok",
			MineType:        "TAMBANG SEMPROT ILEGAL",
			Kecamatan:       "Toboali",
			Workers:         4,
			DailyProduction: 5,
		},
		{
			ID:              "FIM/01/25/00005",
			MobileID:        "FIM1736756257211",
			Kabupaten:       "Bangka Selatan",
			SurveyDate:      "2025-01-13",
			Latitude:        -3.0280399,
			Longitude:       106.5103133,
			OwnerName:       "Dedi",
			MineType:        "TAMBANG MANUAL ILEGAL",
			Kecamatan:       "Toboali",
			Workers:         9,
			DailyProduction: 9,
		},
	}
}
