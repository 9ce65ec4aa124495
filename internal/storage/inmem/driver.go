package inmem

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-memdb"
	"github.com/skybi/tinsig/internal/dataset"
	"github.com/skybi/tinsig/internal/storage"
)

const indexOrdinal = "id"

var ErrDuplicateDataset = errors.New("a dataset with this name was already registered")

// row wraps a record with its position in the dataset table
type row struct {
	Ordinal uint64
	Record  dataset.Record
}

// Driver represents the in-memory dataset storage driver built using hashicorp/go-memdb.
// The datasets are loaded once by Initialize and never modified afterwards.
type Driver struct {
	definitions []*dataset.Definition
	db          *memdb.MemDB
	repos       []*Repository
	byName      map[string]*Repository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new in-memory storage driver serving the given dataset definitions.
// Use Initialize to validate and load them.
func New(definitions ...*dataset.Definition) *Driver {
	return &Driver{
		definitions: definitions,
	}
}

// Initialize validates every record, builds the database schema and loads all datasets into it
func (driver *Driver) Initialize(_ context.Context) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	schema := &memdb.DBSchema{
		Tables: make(map[string]*memdb.TableSchema, len(driver.definitions)),
	}
	for _, def := range driver.definitions {
		if _, ok := schema.Tables[def.Name]; ok {
			return fmt.Errorf("dataset '%s': %w", def.Name, ErrDuplicateDataset)
		}
		for i, record := range def.Records {
			if err := validate.Struct(record); err != nil {
				return fmt.Errorf("dataset '%s': record #%d (%s) is invalid: %w", def.Name, i, record.Key(), err)
			}
		}
		schema.Tables[def.Name] = &memdb.TableSchema{
			Name: def.Name,
			Indexes: map[string]*memdb.IndexSchema{
				indexOrdinal: {
					Name:         indexOrdinal,
					Unique:       true,
					AllowMissing: false,
					Indexer:      ordinalIndexer{},
				},
			},
		}
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return err
	}

	txn := db.Txn(true)
	defer txn.Abort()
	for _, def := range driver.definitions {
		for i, record := range def.Records {
			if err := txn.Insert(def.Name, &row{Ordinal: uint64(i), Record: record}); err != nil {
				return fmt.Errorf("dataset '%s': %w", def.Name, err)
			}
		}
	}
	txn.Commit()

	driver.db = db
	driver.repos = make([]*Repository, 0, len(driver.definitions))
	driver.byName = make(map[string]*Repository, len(driver.definitions))
	for _, def := range driver.definitions {
		repo := &Repository{db: db, definition: def}
		driver.repos = append(driver.repos, repo)
		driver.byName[def.Name] = repo
	}
	return nil
}

// Datasets provides the in-memory repositories of all datasets in their registration order
func (driver *Driver) Datasets() []dataset.Repository {
	repos := make([]dataset.Repository, len(driver.repos))
	for i, repo := range driver.repos {
		repos[i] = repo
	}
	return repos
}

// Dataset provides the in-memory repository of a single dataset
func (driver *Driver) Dataset(name string) (dataset.Repository, bool) {
	repo, ok := driver.byName[name]
	if !ok {
		return nil, false
	}
	return repo, true
}

// Close discards the repositories and the underlying database
func (driver *Driver) Close() {
	driver.repos = nil
	driver.byName = nil
	driver.db = nil
}
