package conf

import "strings"

// Serialize renders a Document back to file text. Untouched lines are
// emitted verbatim from their memorized source; entries added or edited in
// memory are rendered canonically. Serialization cannot fail: it only walks
// valid in-memory structure.
func Serialize(doc *Document) string {
	var b strings.Builder

	for i := range doc.Sections {
		sec := &doc.Sections[i]
		switch {
		case sec.headerRaw != "":
			b.WriteString(sec.headerRaw)
			b.WriteByte('\n')
		case sec.Name != DefaultSection:
			b.WriteString("[" + sec.Name + "]\n")
		}
		for j := range sec.Entries {
			b.WriteString(renderEntry(&sec.Entries[j]))
			b.WriteByte('\n')
		}
	}

	out := b.String()
	if doc.noFinalNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func renderEntry(e *Entry) string {
	if e.raw != "" {
		return e.raw
	}
	switch e.Kind {
	case Comment, Unparseable:
		return e.Text
	case Blank:
		return ""
	default:
		line := e.Key + "=" + quoteIfNeeded(e.Value)
		if e.InlineComment != "" {
			line += " " + e.InlineComment
		}
		return line
	}
}

// quoteIfNeeded protects values that would be mangled on reparse: a bare
// '#' would truncate the value into an inline comment, and edge whitespace
// would be trimmed away.
func quoteIfNeeded(value string) string {
	if strings.ContainsRune(value, '#') || value != strings.TrimSpace(value) {
		return `"` + value + `"`
	}
	return value
}
