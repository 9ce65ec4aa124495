package schema

import "github.com/skybi/tinsig/internal/dataset"

// PaginatedResponse represents a unified paginated API response
type PaginatedResponse[T any] struct {
	Data       []T                 `json:"data"`
	Pagination *PaginationMetadata `json:"pagination"`
}

// PaginationMetadata represents the metadata present in a PaginatedResponse
type PaginationMetadata struct {
	CurrentPage  int `json:"current_page"`
	PerPage      int `json:"per_page"`
	TotalRecords int `json:"total_records"`
	TotalPages   int `json:"total_pages"`
}

// BuildPaginatedResponse builds a unified paginated API response out of a page
func BuildPaginatedResponse[T any](page *dataset.Page[T]) *PaginatedResponse[T] {
	data := page.Records
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Data: data,
		Pagination: &PaginationMetadata{
			CurrentPage:  page.CurrentPage,
			PerPage:      page.PerPage,
			TotalRecords: page.TotalRecords,
			TotalPages:   page.TotalPages,
		},
	}
}
