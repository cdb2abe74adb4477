package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON text column.
// A null or unparsable column reads back as an empty list, never as nil.
type StringList []string

// Value serializes the list to JSON for storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshaling string list: %w", err)
	}
	return string(data), nil
}

// Scan parses the stored JSON back into the list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", src)
	}

	var parsed []string
	if err := json.Unmarshal(data, &parsed); err != nil || parsed == nil {
		// Bad rows degrade to an empty list rather than failing the read.
		*l = StringList{}
		return nil
	}
	*l = StringList(parsed)
	return nil
}

// GormDataType tells gorm to create a plain text column for the list.
func (StringList) GormDataType() string {
	return "text"
}
