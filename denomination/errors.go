package denomination

import (
	"errors"
	"fmt"
)

// ErrEmptyRegistry is returned when a registry is built without descriptors.
var ErrEmptyRegistry = errors.New("registry must contain at least one denomination")

// InvalidDescriptorError is returned for a descriptor that can never be counted.
type InvalidDescriptorError struct {
	ID     ID
	Label  string
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	name := string(e.ID)
	if name == "" {
		name = e.Label
	}
	return fmt.Sprintf("invalid denomination %q: %s", name, e.Reason)
}

func (e *InvalidDescriptorError) GetDenomination() ID {
	return e.ID
}

// DuplicateDescriptorError is returned when two descriptors share an id or face value.
type DuplicateDescriptorError struct {
	ID    ID
	Field string
}

func (e *DuplicateDescriptorError) Error() string {
	return fmt.Sprintf("duplicate %s for denomination %q", e.Field, e.ID)
}

func (e *DuplicateDescriptorError) GetDenomination() ID {
	return e.ID
}
