package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. Trade ids sort lexicographically by creation
// time, which keeps SQLite indexes and exported listings in a useful order
// without a separate sequence column.
func New() string {
	return ulid.Make().String()
}
