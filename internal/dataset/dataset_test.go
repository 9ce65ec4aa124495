package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	id       string
	region   string
	district string
	date     string
}

func (record *testRecord) Key() string { return record.id }

func (record *testRecord) Field(name string) (string, bool) {
	switch name {
	case "region":
		return record.region, true
	case "district":
		return record.district, true
	case "date":
		return record.date, true
	}
	return "", false
}

func (record *testRecord) Location() (float64, float64) { return 0, 0 }

func testRecords() []Record {
	return []Record{
		&testRecord{id: "a", region: "Bangka", district: "Sungailiat", date: "2025-01-15"},
		&testRecord{id: "b", region: "Bangka Selatan", district: "Toboali", date: "2025-01-16"},
		&testRecord{id: "c", region: "Belitung", district: "Tanjung Pandan", date: "2025-01-17"},
		&testRecord{id: "d", region: "Bangka Barat", district: "Jebus", date: "2025-01-18"},
		&testRecord{id: "e", region: "Bangka", district: "Belinyu", date: "not a date"},
	}
}

func keys(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.Key())
	}
	return out
}

func date(t *testing.T, raw string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, raw)
	require.NoError(t, err)
	return &parsed
}

func TestFilter_ContainsIgnoresCase(t *testing.T) {
	records := testRecords()

	lower := Apply(records, (&Filter{}).Where("region", "bangka"))
	upper := Apply(records, (&Filter{}).Where("region", "BANGKA"))

	assert.Equal(t, []string{"a", "b", "d", "e"}, keys(lower))
	assert.Equal(t, keys(lower), keys(upper))
}

func TestFilter_PredicatesAreConjunctive(t *testing.T) {
	filter := (&Filter{}).Where("region", "bangka").Where("district", "o")

	assert.Equal(t, []string{"b"}, keys(Apply(testRecords(), filter)))
}

func TestFilter_EmptySubstringMatchesEverything(t *testing.T) {
	filter := (&Filter{}).Where("region", "")

	assert.Len(t, Apply(testRecords(), filter), 5)
}

func TestFilter_WhereAnyMatchesEitherSubstring(t *testing.T) {
	records := testRecords()

	assert.Equal(t, []string{"a", "e"}, keys(Apply(records, new(Filter).WhereAny("district", "liat", "BELI"))))
	assert.Equal(t, []string{"c"}, keys(Apply(records, new(Filter).WhereAny("region", "belitung"))))
	assert.True(t, new(Filter).WhereAny("region").IsEmpty())
}

func TestFilter_WhereAnyIsConjunctiveWithOtherPredicates(t *testing.T) {
	filter := new(Filter).WhereAny("region", "Selatan", "Barat").Where("district", "Jebus")

	assert.Equal(t, []string{"d"}, keys(Apply(testRecords(), filter)))
}

func TestFilter_UnknownFieldMatchesNothing(t *testing.T) {
	filter := (&Filter{}).Where("status", "active")

	assert.Empty(t, Apply(testRecords(), filter))
}

func TestFilter_NilAndEmpty(t *testing.T) {
	var filter *Filter

	assert.True(t, filter.IsEmpty())
	assert.True(t, (&Filter{}).IsEmpty())
	assert.True(t, (&Filter{DateFrom: date(t, "2025-01-01")}).IsEmpty(), "date range without date field")
	assert.Len(t, Apply(testRecords(), filter), 5)
}

func TestFilter_IsIdempotent(t *testing.T) {
	filter := (&Filter{}).Where("region", "bangka")

	once := Apply(testRecords(), filter)
	twice := Apply(once, filter)

	assert.Equal(t, keys(once), keys(twice))
}

func TestFilter_DateRangeIsInclusive(t *testing.T) {
	filter := &Filter{
		DateField: "date",
		DateFrom:  date(t, "2025-01-16"),
		DateTo:    date(t, "2025-01-17"),
	}

	assert.Equal(t, []string{"b", "c"}, keys(Apply(testRecords(), filter)))
}

func TestFilter_OpenDateRange(t *testing.T) {
	from := &Filter{DateField: "date", DateFrom: date(t, "2025-01-17")}
	to := &Filter{DateField: "date", DateTo: date(t, "2025-01-15")}

	assert.Equal(t, []string{"c", "d"}, keys(Apply(testRecords(), from)), "unparsable dates never match a range")
	assert.Equal(t, []string{"a"}, keys(Apply(testRecords(), to)))
}

func TestApply_PreservesOrder(t *testing.T) {
	records := testRecords()
	filtered := Apply(records, (&Filter{}).Where("district", "a"))

	position := map[string]int{}
	for i, record := range records {
		position[record.Key()] = i
	}
	for i := 1; i < len(filtered); i++ {
		assert.Less(t, position[filtered[i-1].Key()], position[filtered[i].Key()])
	}
}

func TestDefinition_HasFilterField(t *testing.T) {
	def := &Definition{FilterFields: []string{"kabupaten", "kecamatan"}}

	assert.True(t, def.HasFilterField("kecamatan"))
	assert.False(t, def.HasFilterField("status"))
}
