package mining

import "github.com/skybi/tinsig/internal/dataset"

// The names of the datasets provided by this package
const (
	DatasetIllegalMining = "illegal-mining"
	DatasetPermits       = "iup"
	DatasetProduction    = "production"
)

// Definitions builds the definitions of all mining datasets in the order they are exposed.
// Every call returns freshly built tables, so callers may never observe each other's modifications.
func Definitions() []*dataset.Definition {
	return []*dataset.Definition{
		{
			Name:         DatasetIllegalMining,
			Message:      "Illegal mining data retrieved successfully",
			FilterFields: []string{"kabupaten", "kecamatan"},
			DateField:    "tanggal_survey",
			Records:      toRecords(illegalSites()),
		},
		{
			Name:         DatasetPermits,
			Message:      "Marine IUP data retrieved successfully",
			FilterFields: []string{"daerah", "status"},
			Records:      toRecords(permits()),
		},
		{
			Name:         DatasetProduction,
			Message:      "Tin ore production data retrieved successfully",
			FilterFields: []string{"kabupaten", "kecamatan"},
			DateField:    "tanggal_produksi",
			Records:      toRecords(productions()),
		},
	}
}

func toRecords[T dataset.Record](typed []T) []dataset.Record {
	records := make([]dataset.Record, len(typed))
	for i, record := range typed {
		records[i] = record
	}
	return records
}
