package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MoveInt decodes an on-chain integer. The node API encodes u64 values as JSON
// strings, while smaller widths and older CLI builds emit plain numbers, so
// both forms are accepted.
type MoveInt int64

// UnmarshalJSON implements json.Unmarshaler
func (m *MoveInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("integer is null")
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return m.parse(s)
	}

	return m.parse(string(data))
}

// MarshalJSON encodes the value the way the node API does
func (m MoveInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(m), 10))
}

func (m *MoveInt) parse(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*m = MoveInt(v)
	return nil
}

// Int returns the value as an int
func (m MoveInt) Int() int {
	return int(m)
}
