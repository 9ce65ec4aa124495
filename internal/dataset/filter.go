package dataset

import (
	"strings"
	"time"
)

// DateLayout is the layout of every date field used for date range filtering
const DateLayout = "2006-01-02"

// Predicate requires the named field to contain Substring or one of the Alternatives, ignoring letter case
type Predicate struct {
	Field        string
	Substring    string
	Alternatives []string
}

// Matches checks whether the predicate holds for the given record.
// Records without the named field never match.
func (predicate Predicate) Matches(record Record) bool {
	value, ok := record.Field(predicate.Field)
	if !ok {
		return false
	}
	value = strings.ToLower(value)
	if strings.Contains(value, strings.ToLower(predicate.Substring)) {
		return true
	}
	for _, alternative := range predicate.Alternatives {
		if strings.Contains(value, strings.ToLower(alternative)) {
			return true
		}
	}
	return false
}

// Filter is used to narrow down the records of a dataset.
// All constraints are combined using a logical AND; the zero value matches every record.
type Filter struct {
	Contains []Predicate

	// DateField, DateFrom and DateTo describe an inclusive date range.
	// The range is ignored if DateField is empty.
	DateField string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Where adds a substring predicate and returns the filter to allow chaining
func (filter *Filter) Where(field, substring string) *Filter {
	filter.Contains = append(filter.Contains, Predicate{Field: field, Substring: substring})
	return filter
}

// WhereAny adds a predicate satisfied by any of the given substrings and returns the filter to allow chaining.
// Without substrings, the filter stays unchanged.
func (filter *Filter) WhereAny(field string, substrings ...string) *Filter {
	if len(substrings) == 0 {
		return filter
	}
	predicate := Predicate{Field: field, Substring: substrings[0]}
	if len(substrings) > 1 {
		predicate.Alternatives = substrings[1:]
	}
	filter.Contains = append(filter.Contains, predicate)
	return filter
}

// IsEmpty checks whether the filter imposes no constraint at all
func (filter *Filter) IsEmpty() bool {
	return filter == nil || (len(filter.Contains) == 0 && !filter.hasDateRange())
}

// Matches checks whether the given record satisfies every constraint of the filter
func (filter *Filter) Matches(record Record) bool {
	if filter == nil {
		return true
	}
	for _, predicate := range filter.Contains {
		if !predicate.Matches(record) {
			return false
		}
	}
	if filter.hasDateRange() {
		return filter.matchesDateRange(record)
	}
	return true
}

func (filter *Filter) hasDateRange() bool {
	return filter.DateField != "" && (filter.DateFrom != nil || filter.DateTo != nil)
}

func (filter *Filter) matchesDateRange(record Record) bool {
	raw, ok := record.Field(filter.DateField)
	if !ok {
		return false
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return false
	}
	if filter.DateFrom != nil && date.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && date.After(*filter.DateTo) {
		return false
	}
	return true
}

// Apply returns the records matching the filter, preserving their relative order
func Apply(records []Record, filter *Filter) []Record {
	matched := make([]Record, 0, len(records))
	for _, record := range records {
		if filter.Matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}
