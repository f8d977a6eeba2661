package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// validate is shared; validator caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// File pairs a decoded record with the file it came from.
type File[T any] struct {
	Name   string
	Record T
}

// DecodePerson parses and validates one person file.
func DecodePerson(data []byte) (*Person, error) {
	var p Person
	if err := decode(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeOrganization parses and validates one organization file.
func DecodeOrganization(data []byte) (*Organization, error) {
	var o Organization
	if err := decode(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func decode(data []byte, out any) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return describe(err)
	}
	return nil
}

// describe flattens validator errors into one readable message.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid record: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid record: %s", strings.Join(msgs, "; "))
}
