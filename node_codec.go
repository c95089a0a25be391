package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// DecodeNode parses one node object in the API's JSON shape. Fields the
// client does not model are kept in Extra. Unlike GetNodes, a timestamp that
// cannot be parsed or a field value that does not fit its type is an error:
// the input is caller-supplied, not server data.
func DecodeNode(data []byte) (Node, error) {
	var bad error
	parse := func(field string, raw types.RawField) *time.Time {
		if len(raw) == 0 || string(raw) == "null" {
			return nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			bad = fmt.Errorf("%s: %w", field, err)
			return nil
		}
		if s == "" {
			return nil
		}
		ts, err := types.ParseTimestamp(s)
		if err != nil {
			bad = fmt.Errorf("%s: %w", field, err)
			return nil
		}
		return &ts
	}

	skip := func(field string, raw types.RawField) {
		if bad == nil {
			bad = fmt.Errorf("%s: unexpected value %s", field, raw)
		}
	}

	n, err := types.NodeFromRecord(data, parse, skip)
	if err != nil {
		return Node{}, err
	}
	if bad != nil {
		return Node{}, bad
	}
	return n, nil
}
