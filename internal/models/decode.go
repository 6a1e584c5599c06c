package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by every record type.
type Validator interface {
	Validate() error
}

// Decode converts a raw front-matter mapping into a typed record and
// validates it. Type mismatches and failed validation both reject the
// document.
func Decode[T Validator](meta map[string]any) (T, error) {
	var record T
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return record, fmt.Errorf("encode metadata: %w", err)
	}
	if err := yaml.Unmarshal(raw, &record); err != nil {
		return record, fmt.Errorf("decode record: %w", err)
	}
	if err := record.Validate(); err != nil {
		return record, fmt.Errorf("validate record: %w", err)
	}
	return record, nil
}
