package inmem

import (
	"context"
	"github.com/hashicorp/go-memdb"
	"github.com/skybi/tinsig/internal/dataset"
)

// Repository implements the dataset.Repository interface on top of a single go-memdb table
type Repository struct {
	db         *memdb.MemDB
	definition *dataset.Definition
}

var _ dataset.Repository = (*Repository)(nil)

// Definition returns the definition the repository was loaded from
func (repo *Repository) Definition() *dataset.Definition {
	return repo.definition
}

// GetByFilter retrieves all records matching the given filter in their canonical order
func (repo *Repository) GetByFilter(ctx context.Context, filter *dataset.Filter) ([]dataset.Record, error) {
	txn := repo.db.Txn(false)
	it, err := txn.Get(repo.definition.Name, indexOrdinal)
	if err != nil {
		return nil, err
	}
	if !filter.IsEmpty() {
		it = memdb.NewFilterIterator(it, func(obj any) bool {
			return !filter.Matches(obj.(*row).Record)
		})
	}

	records := []dataset.Record{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, obj.(*row).Record)
	}
	return records, nil
}

// Count returns the total amount of records in the dataset
func (repo *Repository) Count(_ context.Context) (int, error) {
	txn := repo.db.Txn(false)
	it, err := txn.Get(repo.definition.Name, indexOrdinal)
	if err != nil {
		return 0, err
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}
