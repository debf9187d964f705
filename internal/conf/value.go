package conf

import (
	"strconv"
	"strings"

	"github.com/marden/nodeglass/internal/catalog"
)

// FieldValue is a typed option value: exactly one arm is meaningful,
// selected by Type.
type FieldValue struct {
	Type catalog.ValueType

	Bool bool
	Int  int64
	Str  string
	Strs []string
}

// BoolValue wraps a bool.
func BoolValue(v bool) FieldValue { return FieldValue{Type: catalog.Bool, Bool: v} }

// IntValue wraps an int64.
func IntValue(v int64) FieldValue { return FieldValue{Type: catalog.Int, Int: v} }

// StrValue wraps a string.
func StrValue(v string) FieldValue { return FieldValue{Type: catalog.Str, Str: v} }

// MultiStrValue wraps an ordered string list.
func MultiStrValue(vs ...string) FieldValue {
	return FieldValue{Type: catalog.MultiStr, Strs: append([]string(nil), vs...)}
}

// encode renders the value as the raw strings to store, one per entry.
// Bools write canonical 1/0, the form every stock bitcoin.conf uses.
func (v FieldValue) encode() []string {
	switch v.Type {
	case catalog.Bool:
		if v.Bool {
			return []string{"1"}
		}
		return []string{"0"}
	case catalog.Int:
		return []string{strconv.FormatInt(v.Int, 10)}
	case catalog.MultiStr:
		return append([]string(nil), v.Strs...)
	default:
		return []string{v.Str}
	}
}

// Display renders the value for human consumption.
func (v FieldValue) Display() string {
	if v.Type == catalog.MultiStr {
		return strings.Join(v.Strs, ", ")
	}
	return v.encode()[0]
}

// decodeBool accepts 1/true/yes and 0/false/no case-insensitively.
func decodeBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	default:
		return false, false
	}
}
