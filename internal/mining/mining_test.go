package mining

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/skybi/tinsig/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func definition(t *testing.T, name string) *dataset.Definition {
	t.Helper()
	for _, def := range Definitions() {
		if def.Name == name {
			return def
		}
	}
	require.Failf(t, "unknown dataset", "%s", name)
	return nil
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 3)

	assert.Equal(t, DatasetIllegalMining, defs[0].Name)
	assert.Equal(t, DatasetPermits, defs[1].Name)
	assert.Equal(t, DatasetProduction, defs[2].Name)

	assert.Len(t, defs[0].Records, 5)
	assert.Len(t, defs[1].Records, 6)
	assert.Len(t, defs[2].Records, 5)

	assert.Equal(t, []string{"daerah", "status"}, defs[1].FilterFields)
	assert.Empty(t, defs[1].DateField)
}

func TestDefinitions_AreIndependent(t *testing.T) {
	first := Definitions()
	first[0].Records[0].(*IllegalSite).Kabupaten = "changed"

	second := Definitions()
	assert.Equal(t, "Bangka Selatan", second[0].Records[0].(*IllegalSite).Kabupaten)
}

func TestDefinitions_RecordsAreValid(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	for _, def := range Definitions() {
		for _, record := range def.Records {
			assert.NoError(t, validate.Struct(record), "%s/%s", def.Name, record.Key())
		}
	}
}

func TestDefinitions_FilterAndDateFieldsExist(t *testing.T) {
	for _, def := range Definitions() {
		for _, record := range def.Records {
			for _, field := range def.FilterFields {
				_, ok := record.Field(field)
				assert.True(t, ok, "%s lacks %s", def.Name, field)
			}
			if def.DateField != "" {
				_, ok := record.Field(def.DateField)
				assert.True(t, ok, "%s lacks %s", def.Name, def.DateField)
			}
		}
	}
}

func TestIllegalMining_Order(t *testing.T) {
	records := definition(t, DatasetIllegalMining).Records

	assert.Equal(t, "FIM/01/25/00001", records[0].Key())
	assert.Equal(t, "FIM/01/25/00002", records[1].Key())
	assert.Equal(t, "FIM/01/25/00005", records[4].Key())
}

func TestProduction_KabupatenFilter(t *testing.T) {
	records := definition(t, DatasetProduction).Records

	matched := dataset.Apply(records, (&dataset.Filter{}).Where("kabupaten", "Bangka Selatan"))

	require.Len(t, matched, 1)
	assert.Equal(t, "PBT001", matched[0].Key())
}

func TestRecords_Location(t *testing.T) {
	lat, lon := definition(t, DatasetPermits).Records[0].Location()

	assert.Equal(t, -1.8144, lat)
	assert.Equal(t, 106.1932, lon)
}

func TestPermit_IsActive(t *testing.T) {
	assert.True(t, (&Permit{Status: "Active"}).IsActive())
	assert.True(t, (&Permit{Status: " active "}).IsActive())
	assert.False(t, (&Permit{Status: "Inactive"}).IsActive())
}

func TestSummarize(t *testing.T) {
	var all [][]dataset.Record
	for _, def := range Definitions() {
		all = append(all, def.Records)
	}

	stats := Summarize(all...)

	assert.Equal(t, 5, stats.IllegalMiningCount)
	assert.Equal(t, 21, stats.TotalWorkers)
	assert.Equal(t, 69.0, stats.EstimatedDailyProduction)
	assert.Equal(t, 5, stats.ProductionRecordCount)
	assert.Equal(t, 115.2, stats.ProductionTotal)
	assert.Equal(t, 69.38, stats.AverageGrade)
	assert.Equal(t, 6, stats.PermitCount)
	assert.Equal(t, 6, stats.ActivePermitCount)
	assert.Equal(t, 40491.49, stats.TotalPermitArea)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize()

	assert.Equal(t, &Statistics{}, stats)
}
