package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Extras holds arbitrary key/value data stored as a JSON text column.
// The database representation is canonical (sorted keys), so two Extras compare
// equal through their Value regardless of map order or numeric type.
type Extras map[string]any

// Value implements driver.Valuer.
func (e Extras) Value() (driver.Value, error) {
	if len(e) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]any(e))
	if err != nil {
		return nil, fmt.Errorf("failed to encode extras: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (e *Extras) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*e = Extras{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported extras column type %T", src)
	}

	out := Extras{}
	if len(raw) > 0 {
		// numbers stay json.Number so Value reproduces them digit for digit
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return fmt.Errorf("failed to decode extras: %w", err)
		}
	}
	*e = out
	return nil
}

// GormDataType tells gorm to store Extras as text.
func (Extras) GormDataType() string {
	return "text"
}
