package storage

import (
	"context"
	"github.com/skybi/tinsig/internal/dataset"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. loads and indexes the datasets)
	Initialize(ctx context.Context) error

	// Datasets provides the repositories of all datasets in their registration order
	Datasets() []dataset.Repository

	// Dataset provides the repository of the dataset with the given name and a boolean indicating if it exists
	Dataset(name string) (dataset.Repository, bool)

	// Close closes the storage driver and disposes its repositories
	Close()
}
