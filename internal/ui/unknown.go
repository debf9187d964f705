package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marden/nodeglass/internal/conf"
)

// unknownRow is one entry the catalog does not recognize.
type unknownRow struct {
	section string
	entry   conf.Entry
}

// handleUnknownKey processes keyboard input for the unknown entries view.
func (m Model) handleUnknownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.unknownRows()
	count := len(rows)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.unknownIdx < count-1 {
			m.unknownIdx++
		}
	case key.Matches(msg, m.keys.Up):
		if m.unknownIdx > 0 {
			m.unknownIdx--
		}
	case key.Matches(msg, m.keys.Top):
		m.unknownIdx = 0
	case key.Matches(msg, m.keys.Bottom):
		m.unknownIdx = count - 1
	}

	return m, nil
}

// unknownRows collects unrecognized and unparseable entries across every
// document section.
func (m Model) unknownRows() []unknownRow {
	if m.conf == nil {
		return nil
	}
	var rows []unknownRow
	for _, sec := range m.conf.Document().Sections {
		entries, err := m.conf.UnknownEntries(sec.Name)
		if err != nil {
			continue
		}
		for _, e := range entries {
			rows = append(rows, unknownRow{section: sec.Name, entry: e})
		}
		for _, e := range sec.Entries {
			if e.Kind == conf.Unparseable {
				rows = append(rows, unknownRow{section: sec.Name, entry: e})
			}
		}
	}
	return rows
}

// renderUnknown renders entries the catalog does not recognize, plus any
// advisory notes from parsing.
func (m Model) renderUnknown() string {
	styles := m.theme.Styles()

	if m.conf == nil {
		return styles.MutedText.Render("No config loaded. Press f to open a bitcoin.conf.")
	}

	var b strings.Builder

	if len(m.issues) > 0 {
		b.WriteString(styles.WarningText.Bold(true).Render("Parse notes"))
		b.WriteString("\n")
		for _, issue := range m.issues {
			b.WriteString(styles.MutedText.Render("  " + truncate(issue.String(), m.width-2)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	rows := m.unknownRows()
	title := fmt.Sprintf("Unknown entries (%d)", len(rows))
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(styles.FaintText.Render("  Every key=value entry matches a known option."))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range rows {
		var line string
		if row.entry.Kind == conf.KeyValue {
			line = fmt.Sprintf("[%s] %s=%s", row.section, row.entry.Key, row.entry.Value)
		} else {
			line = fmt.Sprintf("[%s] %s", row.section, row.entry.Text)
		}
		line = truncate(line, m.width-2)
		if i == m.unknownIdx {
			b.WriteString(styles.Selected.Render("  " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Unknown entries are preserved verbatim on save."))

	return b.String()
}
