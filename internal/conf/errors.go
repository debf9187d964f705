package conf

import (
	"fmt"

	"github.com/marden/nodeglass/internal/catalog"
)

// TypeMismatchError reports that an option's raw text (or a value supplied
// to Set) does not decode as the catalog's declared type. It is returned to
// the caller, never silently coerced.
type TypeMismatchError struct {
	Key      string
	Expected catalog.ValueType
	Found    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q: expected %s, found %q", e.Key, e.Expected, e.Found)
}

// SectionNotFoundError reports a Get or Remove against a section the
// document does not contain. Set never returns it; Set creates the section.
type SectionNotFoundError struct {
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found", e.Section)
}
