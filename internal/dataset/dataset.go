package dataset

import "context"

// Record represents a single immutable entry of a dataset
type Record interface {
	// Key returns the identifier of the record inside its dataset
	Key() string

	// Field returns the string value of the field with the given JSON name and a boolean indicating whether the
	// record has such a field at all
	Field(name string) (string, bool)

	// Location returns the latitude and longitude of the record in degrees
	Location() (float64, float64)
}

// Definition describes a dataset: its records in their canonical order and how the API exposes them
type Definition struct {
	// Name is the unique dataset name, also used as the endpoint path segment
	Name string

	// Message is the success message of the response envelope
	Message string

	// FilterFields lists the fields a client may filter by using substring matching
	FilterFields []string

	// DateField names the field holding an ISO date (YYYY-MM-DD) used for date range filters.
	// An empty DateField disables date range filtering.
	DateField string

	// Records holds the records in their canonical order
	Records []Record
}

// HasFilterField checks whether the given field may be used for substring filtering
func (def *Definition) HasFilterField(field string) bool {
	for _, name := range def.FilterFields {
		if name == field {
			return true
		}
	}
	return false
}

// Repository defines the read-only dataset repository API
type Repository interface {
	// Definition returns the definition the repository was loaded from
	Definition() *Definition

	// GetByFilter retrieves all records matching the given filter in their canonical order.
	// A nil filter matches every record.
	GetByFilter(ctx context.Context, filter *Filter) ([]Record, error)

	// Count returns the total amount of records in the dataset
	Count(ctx context.Context) (int, error)
}
