package journal

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/trade"
)

// ImportJSON loads a JSON array of raw trade rows, in any historical schema,
// into the store. Every row goes through the normalizer, so missing or
// malformed fields degrade to their documented defaults instead of failing
// the batch. Rows without an id get a fresh ULID; rows without an owner are
// assigned to ownerID. Returns the number of rows inserted.
func ImportJSON(store Store, ownerID string, data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("import: not valid JSON")
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return 0, fmt.Errorf("import: expected a JSON array of trade rows")
	}

	var count int
	var insertErr error
	parsed.ForEach(func(_, row gjson.Result) bool {
		raw, ok := row.Value().(map[string]any)
		if !ok {
			// Non-object entries carry nothing worth keeping.
			return true
		}

		rec := trade.Normalize(raw)
		if rec.ID == "" {
			rec.ID = id.New()
		}
		if rec.OwnerID == "" {
			rec.OwnerID = ownerID
		}

		if err := store.InsertTrade(rec); err != nil {
			insertErr = fmt.Errorf("import row %d: %w", count, err)
			return false
		}
		count++
		return true
	})

	return count, insertErr
}
