package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ToJSON serializes a record to UTF-8 JSON. Pretty mode indents for human
// readers; compact mode is single-line. Absent optional fields serialize as
// explicit null.
func ToJSON(rec any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rec, "", "  ")
	}
	return json.Marshal(rec)
}

// ToJSON serializes the full dialogue, nested records and nulls included.
func (d *Dialogue) ToJSON(pretty bool) ([]byte, error) {
	return ToJSON(d, pretty)
}

// FromJSON decodes data into a fresh record of type T, applies declared
// defaults and validates required fields, recursing into nested records.
func FromJSON[T any](data []byte) (*T, error) {
	rec := new(T)
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, classifyDecodeErr(err)
	}
	if def, ok := any(rec).(interface{ ApplyDefaults() }); ok {
		def.ApplyDefaults()
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DialogueFromJSON reconstructs a dialogue from its structured-text form.
func DialogueFromJSON(data []byte) (*Dialogue, error) {
	d, err := FromJSON[Dialogue](data)
	if err != nil {
		return nil, err
	}
	if d.Scenario != nil {
		d.Scenario.ApplyDefaults()
	}
	return d, nil
}

// UnmarshalJSON decodes the dialogue and normalizes a null
// consistency_evaluation back to the absent form: a plain RawMessage would
// keep the literal "null" bytes and break round-trip equality.
func (d *Dialogue) UnmarshalJSON(data []byte) error {
	type plain Dialogue
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if string(p.ConsistencyEvaluation) == "null" {
		p.ConsistencyEvaluation = nil
	}
	*d = Dialogue(p)
	return nil
}

// classifyDecodeErr maps stdlib JSON failures onto the error taxonomy:
// ill-formed text is a parse error, well-formed text of the wrong shape is a
// validation error.
func classifyDecodeErr(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: field %q: expected %s, got %s",
			ErrValidation, typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return fmt.Errorf("%w: %v", ErrParse, err)
}
