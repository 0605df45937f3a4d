package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// A single validator instance is shared by all records; it caches struct
// metadata between calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRecord(rec any) error {
	if err := validate.Struct(rec); err != nil {
		return wrapValidation(err)
	}
	return nil
}

func wrapValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", ErrValidation, fieldErrs.Error())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// Validate checks required-field presence and primitive shape. It does not
// perform cross-field checks: expected_turns is not compared against the
// actual turn count, and speaker IDs are not matched against roles.

func (s *DialogueScenario) Validate() error { return validateRecord(s) }

func (s *Setting) Validate() error { return validateRecord(s) }

func (r *Role) Validate() error { return validateRecord(r) }

func (c *ConversationContext) Validate() error { return validateRecord(c) }

func (m *Metadata) Validate() error { return validateRecord(m) }

func (t *ConversationTurn) Validate() error { return validateRecord(t) }

func (c *Conversation) Validate() error { return validateRecord(c) }

// Validate checks every populated sub-record; absent (nil) fields are fine,
// the dialogue is built up incrementally.
func (d *Dialogue) Validate() error { return validateRecord(d) }
