package records

import (
	"time"

	"civic-sync/core/utils"
)

// Scalar is a YAML scalar kept as text. Unquoted dates, district numbers and
// booleans in hand-edited files decode to their literal text instead of failing.
type Scalar string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (s *Scalar) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*s = ""
	case time.Time:
		*s = Scalar(v.Format(time.DateOnly))
	default:
		*s = Scalar(utils.ToString(v))
	}
	return nil
}

// String returns the scalar text.
func (s Scalar) String() string {
	return string(s)
}
