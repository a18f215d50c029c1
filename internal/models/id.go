package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a resource identifier that the booking API sends either as a JSON
// number or as a string. Numeric IDs are written back as numbers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*id = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("invalid id %s: %w", raw, err)
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid id %s: %w", raw, err)
		}
		*id = ID(n.String())
	}
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if id.IsNumeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// IsNumeric reports whether id is the canonical decimal form of an int64, so
// it can be written as a bare JSON number. "007", "+5" and "-0" are not.
func (id ID) IsNumeric() bool {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == string(id)
}

func (id ID) String() string {
	return string(id)
}
