package ui

import (
	"fmt"
	"strings"
)

// renderLogs renders the debug.log tail view.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	var b strings.Builder

	title := "debug.log"
	if m.logPath != "" {
		title = truncateMiddle(m.logPath, maxInt(m.width-20, 20))
	}
	scroll := fmt.Sprintf("%3.0f%%", m.logViewport.ScrollPercent()*100)
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(scroll))
	b.WriteString("\n")

	b.WriteString(m.logViewport.View())

	return b.String()
}

// renderPicker renders the config file picker.
func (m Model) renderPicker() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Open bitcoin.conf"))
	b.WriteString("\n")
	b.WriteString(m.picker.View())
	return b.String()
}
