package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marden/nodeglass/internal/catalog"
	"github.com/marden/nodeglass/internal/conf"
)

// handleOptionsKey processes keyboard input for the options view.
func (m Model) handleOptionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	specs := m.currentSectionSpecs()
	count := len(specs)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.optIdx < count-1 {
			m.optIdx++
		}
	case key.Matches(msg, m.keys.Up):
		if m.optIdx > 0 {
			m.optIdx--
		}
	case key.Matches(msg, m.keys.Top):
		m.optIdx = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.optIdx = count - 1
		}
	case key.Matches(msg, m.keys.PageDown):
		m.optIdx = minInt(m.optIdx+m.optionsPageSize(), count-1)
		if m.optIdx < 0 {
			m.optIdx = 0
		}
	case key.Matches(msg, m.keys.PageUp):
		m.optIdx = maxInt(m.optIdx-m.optionsPageSize(), 0)
	case key.Matches(msg, m.keys.PrevSection):
		sections := m.cat.Sections()
		m.secIdx = (m.secIdx - 1 + len(sections)) % len(sections)
		m.optIdx = 0
	case key.Matches(msg, m.keys.NextSection):
		sections := m.cat.Sections()
		m.secIdx = (m.secIdx + 1) % len(sections)
		m.optIdx = 0
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleBool()
	case key.Matches(msg, m.keys.Unset):
		return m.unsetOption()
	}

	return m, nil
}

// startEdit opens the inline editor for the selected option.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	spec, ok := m.selectedSpec()
	if !ok || m.conf == nil {
		return m, nil
	}

	current := ""
	if v, set, err := m.conf.Get(conf.DefaultSection, spec.Key); err == nil && set {
		current = v.Display()
	}

	m.editing = true
	m.editErr = ""
	m.input.SetValue(current)
	m.input.Placeholder = spec.Default
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// handleEditKey processes keyboard input while the inline editor is open.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editErr = ""
		m.input.Blur()
		return m, nil
	case "enter":
		return m.commitEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit parses the editor text and applies it to the document.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	spec, ok := m.selectedSpec()
	if !ok || m.conf == nil {
		m.editing = false
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		// Empty input clears the option.
		m.editing = false
		m.input.Blur()
		return m.unsetOption()
	}

	value, err := parseInput(spec, text)
	if err != nil {
		m.editErr = err.Error()
		return m, nil
	}

	if err := m.conf.Set(conf.DefaultSection, spec.Key, value); err != nil {
		m.editErr = err.Error()
		return m, nil
	}

	m.editing = false
	m.editErr = ""
	m.input.Blur()
	m.dirty = true
	return m, nil
}

// toggleBool flips a boolean option, setting it if currently unset.
func (m Model) toggleBool() (tea.Model, tea.Cmd) {
	spec, ok := m.selectedSpec()
	if !ok || m.conf == nil || spec.Type != catalog.Bool {
		return m, nil
	}

	next := true
	if v, set, err := m.conf.Get(conf.DefaultSection, spec.Key); err == nil && set {
		next = !v.Bool
	}

	if err := m.conf.Set(conf.DefaultSection, spec.Key, conf.BoolValue(next)); err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	m.dirty = true
	return m, nil
}

// unsetOption removes the selected option from the document.
func (m Model) unsetOption() (tea.Model, tea.Cmd) {
	spec, ok := m.selectedSpec()
	if !ok || m.conf == nil {
		return m, nil
	}

	if _, set, err := m.conf.Get(conf.DefaultSection, spec.Key); err != nil || !set {
		var mismatch *conf.TypeMismatchError
		if !errors.As(err, &mismatch) {
			// Nothing to remove.
			return m, nil
		}
	}

	if err := m.conf.Remove(conf.DefaultSection, spec.Key); err != nil {
		return m, nil
	}
	m.dirty = true
	return m, nil
}

// parseInput converts editor text into a typed value for the option.
func parseInput(spec catalog.OptionSpec, text string) (conf.FieldValue, error) {
	switch spec.Type {
	case catalog.Bool:
		switch strings.ToLower(text) {
		case "1", "true", "yes":
			return conf.BoolValue(true), nil
		case "0", "false", "no":
			return conf.BoolValue(false), nil
		}
		return conf.FieldValue{}, fmt.Errorf("%s expects a boolean (0/1)", spec.Key)
	case catalog.Int:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return conf.FieldValue{}, fmt.Errorf("%s expects an integer", spec.Key)
		}
		return conf.IntValue(n), nil
	case catalog.MultiStr:
		parts := strings.Split(text, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
		return conf.MultiStrValue(values...), nil
	default:
		return conf.StrValue(text), nil
	}
}

// currentSectionSpecs returns the specs for the selected catalog section.
func (m Model) currentSectionSpecs() []catalog.OptionSpec {
	sections := m.cat.Sections()
	if len(sections) == 0 {
		return nil
	}
	if m.secIdx >= len(sections) {
		return nil
	}
	return m.cat.SectionSpecs(sections[m.secIdx])
}

// selectedSpec returns the spec under the cursor.
func (m Model) selectedSpec() (catalog.OptionSpec, bool) {
	specs := m.currentSectionSpecs()
	if m.optIdx < 0 || m.optIdx >= len(specs) {
		return catalog.OptionSpec{}, false
	}
	return specs[m.optIdx], true
}

// optionsPageSize returns how many option rows fit on screen.
func (m Model) optionsPageSize() int {
	// Two header lines, section tabs, column header, optional editor line.
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

// renderOptions renders the options browser.
func (m Model) renderOptions() string {
	styles := m.theme.Styles()

	if m.conf == nil {
		return styles.MutedText.Render("No config loaded. Press f to open a bitcoin.conf.")
	}

	var b strings.Builder

	b.WriteString(m.renderSectionTabs(styles))
	b.WriteString("\n")

	keyWidth := 22
	valWidth := 28

	header := padRight("OPTION", keyWidth) + padRight("VALUE", valWidth) + "DESCRIPTION"
	b.WriteString(styles.FaintText.Bold(true).Render(truncate(header, m.width)))
	b.WriteString("\n")

	specs := m.currentSectionSpecs()
	page := m.optionsPageSize()
	start := 0
	if m.optIdx >= page {
		start = m.optIdx - page + 1
	}
	end := minInt(start+page, len(specs))

	helpWidth := maxInt(m.width-keyWidth-valWidth-1, 10)

	for i := start; i < end; i++ {
		spec := specs[i]
		valText, valStyle := m.formatOptionValue(spec, styles)

		row := padRight(spec.Key, keyWidth)
		if i == m.optIdx {
			line := styles.Selected.Render(truncate(row+padRight(valText, valWidth)+spec.Help, m.width))
			b.WriteString(line)
		} else {
			b.WriteString(styles.Text.Render(row))
			b.WriteString(valStyle.Render(padRight(truncate(valText, valWidth-1), valWidth)))
			b.WriteString(styles.MutedText.Render(truncate(spec.Help, helpWidth)))
		}
		b.WriteString("\n")
	}

	if m.editing {
		if spec, ok := m.selectedSpec(); ok {
			b.WriteString("\n")
			prompt := spec.Key + " (" + spec.Type.String() + ") "
			b.WriteString(styles.AccentText.Render(prompt))
			b.WriteString(m.input.View())
			if m.editErr != "" {
				b.WriteString("  ")
				b.WriteString(styles.DangerText.Render(m.editErr))
			}
		}
	}

	return b.String()
}

// renderSectionTabs renders the catalog section selector line.
func (m Model) renderSectionTabs(styles Styles) string {
	sections := m.cat.Sections()
	tabs := make([]string, 0, len(sections))
	for i, name := range sections {
		if i == m.secIdx {
			tabs = append(tabs, styles.AccentText.Bold(true).Underline(true).Render(name))
		} else {
			tabs = append(tabs, styles.MutedText.Render(name))
		}
	}
	return strings.Join(tabs, styles.FaintText.Render(" │ "))
}

// formatOptionValue returns the display text and style for an option's value.
func (m Model) formatOptionValue(spec catalog.OptionSpec, styles Styles) (string, lipgloss.Style) {
	v, set, err := m.conf.Get(conf.DefaultSection, spec.Key)
	if err != nil {
		var mismatch *conf.TypeMismatchError
		if errors.As(err, &mismatch) {
			return "invalid: " + mismatch.Found, styles.DangerText
		}
		// Section missing means nothing is set yet.
	}
	if err == nil && set {
		return v.Display(), styles.SuccessText
	}
	if spec.Default != "" {
		return "(" + spec.Default + ")", styles.FaintText
	}
	return "—", styles.FaintText
}
