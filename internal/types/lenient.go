package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Bool is a boolean that decodes leniently from JSON.
//
// Besides true and false, strings like "true", "yes", "on" or "1" and
// non-zero numbers are read as true. Everything else decodes to false.
type Bool bool

// MarshalJSON implements the json.Marshaler interface.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It never fails.
func (b *Bool) UnmarshalJSON(data []byte) error {
	*b = Bool(parseBool(string(data)))
	return nil
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`)))
	switch s {
	case "yes", "y", "on":
		return true
	}

	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}

	return !ParseAmount(s).IsZero()
}

// Text is a string that decodes leniently from JSON.
//
// Numbers and booleans keep their literal text, null, objects and arrays
// decode to the empty string.
type Text string

// MarshalJSON implements the json.Marshaler interface.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It never fails.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	if len(data) == 0 || data[0] == '{' || data[0] == '[' || string(data) == "null" {
		*t = ""
		return nil
	}

	*t = Text(data)
	return nil
}
