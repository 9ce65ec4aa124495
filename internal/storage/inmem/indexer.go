package inmem

import (
	"encoding/binary"
	"fmt"
	"github.com/hashicorp/go-memdb"
)

// ordinalIndexer indexes rows by their position in the dataset table.
// The position is encoded big-endian so that the radix tree iterates rows in table order.
type ordinalIndexer struct{}

var (
	_ memdb.SingleIndexer = (*ordinalIndexer)(nil)
	_ memdb.Indexer       = (*ordinalIndexer)(nil)
)

// FromObject extracts the index value of a row
func (ordinalIndexer) FromObject(raw any) (bool, []byte, error) {
	obj, ok := raw.(*row)
	if !ok {
		return false, nil, fmt.Errorf("ordinal indexer: unexpected object of type %T", raw)
	}
	return true, encodeOrdinal(obj.Ordinal), nil
}

// FromArgs builds the index value to look up a single ordinal
func (ordinalIndexer) FromArgs(args ...any) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("ordinal indexer: expected exactly one argument, got %d", len(args))
	}
	ordinal, ok := args[0].(uint64)
	if !ok {
		return nil, fmt.Errorf("ordinal indexer: argument must be uint64, got %T", args[0])
	}
	return encodeOrdinal(ordinal), nil
}

func encodeOrdinal(ordinal uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, ordinal)
	return buf
}
