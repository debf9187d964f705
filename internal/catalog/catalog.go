package catalog

// ValueType is the declared type of a known option's value.
type ValueType int

const (
	// Bool options accept 1/true/yes and 0/false/no.
	Bool ValueType = iota
	// Int options hold a base-10 signed integer.
	Int
	// Str options pass their raw text through unchanged.
	Str
	// MultiStr options may legally repeat (addnode=, connect=, ...); reads
	// collect every occurrence in order.
	MultiStr
)

// String returns the human-readable name of the type.
func (t ValueType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Str:
		return "string"
	case MultiStr:
		return "string list"
	default:
		return "unknown"
	}
}

// OptionSpec describes one known bitcoin.conf key. Specs are immutable; the
// whole table is built once at startup and never mutated afterwards.
type OptionSpec struct {
	// Key is the option name as it appears left of '='.
	Key string

	// Type is the value type used for typed decoding.
	Type ValueType

	// Section groups related options for display ("Core", "Network", ...).
	Section string

	// Help is a one-line human-readable description.
	Help string

	// Default is the value bitcoind assumes when the option is absent.
	// Empty means no meaningful default.
	Default string
}

// PidFileKey is the option whose value points at the node's pid file.
const PidFileKey = "pid"

// Catalog is an immutable lookup table of known options.
type Catalog struct {
	specs []OptionSpec
	byKey map[string]int
}

// New builds a catalog from a spec list. Later duplicates of a key win,
// which lets callers layer a custom table over Default().
func New(specs []OptionSpec) *Catalog {
	c := &Catalog{
		specs: make([]OptionSpec, len(specs)),
		byKey: make(map[string]int, len(specs)),
	}
	copy(c.specs, specs)
	for i, spec := range c.specs {
		c.byKey[spec.Key] = i
	}
	return c
}

// Default returns the catalog of documented bitcoind options.
func Default() *Catalog {
	return New(defaultSpecs)
}

// Lookup returns the spec for key, if the key is known.
func (c *Catalog) Lookup(key string) (OptionSpec, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return OptionSpec{}, false
	}
	return c.specs[i], true
}

// Known reports whether key is in the catalog.
func (c *Catalog) Known(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Specs returns all specs in declaration order. The returned slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) Specs() []OptionSpec {
	out := make([]OptionSpec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Sections returns the distinct display sections in first-seen order.
func (c *Catalog) Sections() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, spec := range c.specs {
		if _, ok := seen[spec.Section]; ok {
			continue
		}
		seen[spec.Section] = struct{}{}
		out = append(out, spec.Section)
	}
	return out
}

// SectionSpecs returns the specs belonging to one display section, in
// declaration order.
func (c *Catalog) SectionSpecs(section string) []OptionSpec {
	var out []OptionSpec
	for _, spec := range c.specs {
		if spec.Section == section {
			out = append(out, spec)
		}
	}
	return out
}
