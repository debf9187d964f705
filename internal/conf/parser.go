package conf

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue is an advisory note emitted while parsing. Issues never prevent a
// Document from being produced; parsing is total over arbitrary text.
type Issue struct {
	Line int // 1-based physical line number
	Msg  string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s", i.Line, i.Msg)
}

var sectionHeaderRe = regexp.MustCompile(`^\s*\[(.+)\]\s*$`)

// Parse turns raw file text into a Document. Every line is classified as a
// section header, comment, blank, or key=value; anything that fits none of
// those is preserved verbatim as Unparseable. Duplicate section headers
// are merged into the first occurrence in declaration order.
func Parse(text string) (*Document, []Issue) {
	doc := &Document{}
	var issues []Issue

	if text == "" {
		return doc, nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		doc.noFinalNewline = true
	}

	current := -1 // index into doc.Sections; -1 until first entry
	section := func() *Section {
		if current < 0 {
			doc.Sections = append(doc.Sections, Section{Name: DefaultSection})
			current = 0
		}
		return &doc.Sections[current]
	}

	for n, line := range lines {
		lineNo := n + 1

		if m := sectionHeaderRe.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if idx := sectionIndexByName(doc, name); idx >= 0 {
				issues = append(issues, Issue{lineNo, fmt.Sprintf("duplicate section [%s] merged", name)})
				current = idx
				continue
			}
			doc.Sections = append(doc.Sections, Section{Name: name, headerRaw: line})
			current = len(doc.Sections) - 1
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			section().Entries = append(section().Entries, Entry{Kind: Blank, raw: line})

		case strings.HasPrefix(trimmed, "#"):
			section().Entries = append(section().Entries, Entry{Kind: Comment, Text: line, raw: line})

		default:
			entry, issue := parseKeyValue(line)
			if issue != "" {
				issues = append(issues, Issue{lineNo, issue})
			}
			section().Entries = append(section().Entries, entry)
		}
	}

	return doc, issues
}

func sectionIndexByName(doc *Document, name string) int {
	for i := range doc.Sections {
		if doc.Sections[i].Name == name {
			return i
		}
	}
	return -1
}

// parseKeyValue classifies a non-blank, non-comment, non-header line.
// The key is the run of characters before the first '='; it must be
// non-empty and contain no whitespace, otherwise the line is Unparseable.
func parseKeyValue(line string) (Entry, string) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return Entry{Kind: Unparseable, Text: line, raw: line}, ""
	}

	key := strings.TrimSpace(line[:eq])
	if key == "" || strings.ContainsAny(key, " \t") {
		return Entry{Kind: Unparseable, Text: line, raw: line}, ""
	}

	rest := line[eq+1:]
	value, comment, ambiguous := splitInlineComment(rest)

	entry := Entry{
		Kind:          KeyValue,
		Key:           key,
		Value:         unquote(strings.TrimSpace(value)),
		InlineComment: comment,
		raw:           line,
	}

	var issue string
	if ambiguous {
		issue = fmt.Sprintf("ambiguous '#' in value of %q treated as inline comment", key)
	}
	return entry, issue
}

// splitInlineComment finds an unquoted '#' in a value. A '#' inside a
// double-quoted span stays part of the value; an unquoted one starts an
// inline comment and is reported as ambiguous because the source format
// defines no escaping rules.
func splitInlineComment(rest string) (value, comment string, ambiguous bool) {
	inQuotes := false
	for i, r := range rest {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case '#':
			if !inQuotes {
				return rest[:i], rest[i:], true
			}
		}
	}
	return rest, "", false
}

// unquote strips one level of matching double quotes, the writer's own
// protective quoting, so quoted output parses back to the original value.
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
