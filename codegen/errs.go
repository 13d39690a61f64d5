package codegen

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNotStruct is returned when a selected type is not a struct with
	// named fields.
	ErrNotStruct = errors.New("not a struct type with named fields")

	// ErrConflictingTag is returned when a tri-state field already carries
	// a serialization directive that contradicts omitzero.
	ErrConflictingTag = errors.New("conflicting serialization directive")

	// ErrTypeNotFound is returned when a type named with -type does not
	// exist in the scanned packages.
	ErrTypeNotFound = errors.New("type not found")
)

// MissingTypesError joins one ErrTypeNotFound per remaining name, in sorted
// order, or returns nil when every requested type was found.
func MissingTypesError(notFound map[string]bool) error {
	if len(notFound) == 0 {
		return nil
	}
	errs := make([]error, 0, len(notFound))
	for _, name := range slices.Sorted(maps.Keys(notFound)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrTypeNotFound, name))
	}
	return errors.Join(errs...)
}
