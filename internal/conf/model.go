package conf

import (
	"strconv"

	"github.com/marden/nodeglass/internal/catalog"
)

// Model binds a parsed Document to the option catalog, offering typed
// get/set/remove for known keys while the Document keeps every foreign line
// intact for serialization. The Document is mutated in place so writer
// output reflects edits without reconstructing untouched lines.
//
// A Model is not safe for concurrent use; it performs no I/O and no
// background work, so callers own its synchronization (in practice, the UI
// goroutine is its only user).
type Model struct {
	doc     *Document
	catalog *catalog.Catalog

	// index maps section name → key → entry indices in section order.
	// Rebuilt per section after structural edits; the Document stays the
	// single source of truth.
	index map[string]map[string][]int
}

// NewModel builds the index over doc. Values are not coerced or validated
// eagerly; typed decoding happens lazily per Get.
func NewModel(doc *Document, cat *catalog.Catalog) *Model {
	m := &Model{doc: doc, catalog: cat}
	m.reindexAll()
	return m
}

// NewEmptyModel returns a model over a fresh empty document, for editing a
// configuration file that does not exist yet.
func NewEmptyModel(cat *catalog.Catalog) *Model {
	return NewModel(&Document{}, cat)
}

// Document exposes the underlying document for serialization.
func (m *Model) Document() *Document {
	return m.doc
}

// Catalog returns the catalog the model decodes against.
func (m *Model) Catalog() *catalog.Catalog {
	return m.catalog
}

func (m *Model) reindexAll() {
	m.index = make(map[string]map[string][]int, len(m.doc.Sections))
	for i := range m.doc.Sections {
		m.reindexSection(&m.doc.Sections[i])
	}
}

func (m *Model) reindexSection(sec *Section) {
	keys := make(map[string][]int)
	for i := range sec.Entries {
		if sec.Entries[i].Kind == KeyValue {
			keys[sec.Entries[i].Key] = append(keys[sec.Entries[i].Key], i)
		}
	}
	m.index[sec.Name] = keys
}

// Get decodes the value(s) of a known key. ok is false when the key is
// absent from the section or not in the catalog. Decoding failures surface
// as *TypeMismatchError.
func (m *Model) Get(section, key string) (FieldValue, bool, error) {
	keys, found := m.index[section]
	if !found {
		return FieldValue{}, false, &SectionNotFoundError{Section: section}
	}

	spec, known := m.catalog.Lookup(key)
	if !known {
		return FieldValue{}, false, nil
	}

	positions := keys[key]
	if len(positions) == 0 {
		return FieldValue{}, false, nil
	}

	sec := m.doc.Section(section)
	raw := sec.Entries[positions[0]].Value

	switch spec.Type {
	case catalog.Bool:
		v, ok := decodeBool(raw)
		if !ok {
			return FieldValue{}, false, &TypeMismatchError{Key: key, Expected: catalog.Bool, Found: raw}
		}
		return BoolValue(v), true, nil

	case catalog.Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return FieldValue{}, false, &TypeMismatchError{Key: key, Expected: catalog.Int, Found: raw}
		}
		return IntValue(n), true, nil

	case catalog.MultiStr:
		values := make([]string, 0, len(positions))
		for _, p := range positions {
			values = append(values, sec.Entries[p].Value)
		}
		return MultiStrValue(values...), true, nil

	default:
		return StrValue(raw), true, nil
	}
}

// Set writes a typed value. For Bool/Int/Str an existing entry keeps its
// position and inline comment with only its value replaced; otherwise a new
// entry is appended to the section. For MultiStr the whole existing run is
// replaced by new entries at the first prior entry's position. The section
// is created when missing.
func (m *Model) Set(section, key string, value FieldValue) error {
	if spec, known := m.catalog.Lookup(key); known && spec.Type != value.Type {
		return &TypeMismatchError{Key: key, Expected: spec.Type, Found: value.Type.String()}
	}

	sec := m.doc.EnsureSection(section)
	if _, ok := m.index[section]; !ok {
		m.reindexSection(sec)
	}
	positions := m.index[section][key]
	encoded := value.encode()

	if value.Type != catalog.MultiStr {
		if len(positions) > 0 {
			e := &sec.Entries[positions[0]]
			e.Value = encoded[0]
			e.markEdited()
			return nil
		}
		sec.Entries = append(sec.Entries, Entry{Kind: KeyValue, Key: key, Value: encoded[0]})
		m.reindexSection(sec)
		return nil
	}

	fresh := make([]Entry, len(encoded))
	for i, v := range encoded {
		fresh[i] = Entry{Kind: KeyValue, Key: key, Value: v}
	}

	if len(positions) == 0 {
		sec.Entries = append(sec.Entries, fresh...)
	} else {
		// One contiguous block at the first prior entry's position;
		// subsequent old entries are removed.
		at := positions[0]
		kept := make([]Entry, 0, len(sec.Entries)-len(positions)+len(fresh))
		for i, e := range sec.Entries {
			if i == at {
				kept = append(kept, fresh...)
			}
			if e.Kind == KeyValue && e.Key == key {
				continue
			}
			kept = append(kept, e)
		}
		sec.Entries = kept
	}
	m.reindexSection(sec)
	return nil
}

// Remove deletes every entry for key in the section. Removing an absent key
// is a no-op; removing from an absent section is an error.
func (m *Model) Remove(section, key string) error {
	keys, found := m.index[section]
	if !found {
		return &SectionNotFoundError{Section: section}
	}
	if len(keys[key]) == 0 {
		return nil
	}

	sec := m.doc.Section(section)
	kept := sec.Entries[:0]
	for _, e := range sec.Entries {
		if e.Kind == KeyValue && e.Key == key {
			continue
		}
		kept = append(kept, e)
	}
	sec.Entries = kept
	m.reindexSection(sec)
	return nil
}

// UnknownEntries returns copies of the KeyValue entries in the section whose
// keys are absent from the catalog, so callers can surface unrecognized
// options without risking their loss.
func (m *Model) UnknownEntries(section string) ([]Entry, error) {
	if _, found := m.index[section]; !found {
		return nil, &SectionNotFoundError{Section: section}
	}

	sec := m.doc.Section(section)
	var out []Entry
	for _, e := range sec.Entries {
		if e.Kind == KeyValue && !m.catalog.Known(e.Key) {
			out = append(out, e)
		}
	}
	return out, nil
}

// SectionNames lists the document's sections in order.
func (m *Model) SectionNames() []string {
	names := make([]string, len(m.doc.Sections))
	for i := range m.doc.Sections {
		names[i] = m.doc.Sections[i].Name
	}
	return names
}
