package models

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ToMap converts a record to a field-name→value mapping keyed by the JSON
// field names, recursing into nested records.
func ToMap(rec any) (map[string]any, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(rec); err != nil {
		return nil, fmt.Errorf("convert record to map: %w", err)
	}
	return out, nil
}

// FromMap constructs a validated record of type T from a field-name→value
// mapping. Unknown keys are ignored; a value of the wrong primitive shape
// (e.g. a string where an integer is expected) fails validation.
func FromMap[T any](m map[string]any) (*T, error) {
	rec := new(T)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  rec,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if def, ok := any(rec).(interface{ ApplyDefaults() }); ok {
		def.ApplyDefaults()
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
