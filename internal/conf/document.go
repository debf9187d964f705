package conf

// DefaultSection is the implicit section holding entries that appear before
// the first [header] line.
const DefaultSection = "default"

// EntryKind classifies one physical line of a configuration file.
type EntryKind int

const (
	// KeyValue is a key=value assignment, optionally with an inline comment.
	KeyValue EntryKind = iota
	// Comment is a line whose first non-blank character is '#'.
	Comment
	// Blank is an empty or whitespace-only line.
	Blank
	// Unparseable is any other line, preserved verbatim and excluded from
	// typed access. Never dropped.
	Unparseable
)

// Entry is the semantic content of one physical line.
//
// raw holds the original source line so an untouched entry serializes back
// byte-for-byte. Entries created or edited in memory have raw == "" and are
// rendered in canonical form instead.
type Entry struct {
	Kind EntryKind

	// Key and Value are set for KeyValue entries. Value has surrounding
	// whitespace and one level of protective double quotes removed.
	Key   string
	Value string

	// InlineComment is the trailing "# ..." text of a KeyValue entry,
	// starting at the '#'. Empty when there is none.
	InlineComment string

	// Text is the verbatim line for Comment and Unparseable entries.
	Text string

	raw string
}

// markEdited drops the memorized source line so the writer re-renders the
// entry canonically.
func (e *Entry) markEdited() {
	e.raw = ""
}

// Section is a named group of entries. Entry order is significant and
// preserved. The header line is memorized so oddly spaced headers survive.
type Section struct {
	Name    string
	Entries []Entry

	headerRaw string
}

// Document is an ordered parsed configuration file. It is the single source
// of truth for serialization order; the typed Model mutates it in place.
type Document struct {
	Sections []Section

	// noFinalNewline records that the source text did not end with '\n',
	// so re-serializing reproduces it exactly.
	noFinalNewline bool
}

// Section returns a pointer to the named section, or nil.
func (d *Document) Section(name string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}

// EnsureSection returns the named section, creating an empty one if it does
// not exist yet. A created default section goes in front of every named
// section: default entries are the lines before the first header, so placing
// them anywhere later would reparse into whichever section precedes them.
func (d *Document) EnsureSection(name string) *Section {
	if s := d.Section(name); s != nil {
		return s
	}
	if name == DefaultSection {
		d.Sections = append([]Section{{Name: name}}, d.Sections...)
		return &d.Sections[0]
	}
	d.Sections = append(d.Sections, Section{Name: name})
	return &d.Sections[len(d.Sections)-1]
}
