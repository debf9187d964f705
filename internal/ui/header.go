package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/marden/nodeglass/internal/health"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("nodeglass", styles.Logo))

	// Node health badge
	parts = append(parts, m.renderHealthBadge(styles, bg))

	// Config file
	if m.confPath != "" {
		label := truncateMiddle(m.confPath, 50)
		if m.dirty {
			label += " [+]"
		}
		parts = append(parts,
			bg.Render("conf", styles.FaintText)+bg.Space()+
				bg.Render(label, ternaryStyle(m.dirty, styles.WarningText, styles.MutedText)))
	} else {
		parts = append(parts, bg.Render("no config loaded", styles.WarningText))
	}

	// Parse issue count
	if n := len(m.issues); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d parse notes", n), styles.WarningText))
	}

	// Timestamp of last health check
	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Transient status message (save/open results)
	if m.statusMsg != "" {
		parts = append(parts, bg.Render(truncate(m.statusMsg, 60), styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderHealthBadge formats the node status indicator.
func (m Model) renderHealthBadge(styles Styles, bg BgStyle) string {
	if !m.snapshot.HasHealth {
		return bg.Render("● CHECKING", styles.MutedText)
	}

	st := m.snapshot.Health.State
	style := styles.HealthStyle(st)

	var label string
	switch st {
	case health.ProcessRunning:
		label = fmt.Sprintf("● RUNNING pid %d", m.snapshot.Health.Pid)
	case health.ProcessNotRunning:
		label = "● STOPPED"
	case health.PidFileMissing:
		label = "● NO PID FILE"
	case health.PidFileUnreadable:
		label = "● PID UNREADABLE"
	default:
		label = "● NO PID CONFIGURED"
	}
	return bg.Render(label, style)
}

// formatTimestamp formats the last health check time with relative indicator.
func (m Model) formatTimestamp() string {
	if !m.snapshot.HasHealth || m.snapshot.LastChecked.IsZero() {
		return ""
	}

	timeSince := time.Since(m.snapshot.LastChecked)
	timeStr := m.snapshot.LastChecked.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"o", "Options"},
			{"u", "Unknown"},
			{"?", "More"},
		}
	case ViewUnknown:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"o", "Options"},
			{"l", "Logs"},
			{"?", "More"},
		}
	case ViewPicker:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Open file"},
			{"esc", "Cancel"},
		}
	default: // ViewOptions
		if m.editing {
			commands = []cmd{
				{"enter", "Apply"},
				{"esc", "Cancel"},
			}
		} else {
			commands = []cmd{
				{"[/]", "Section"},
				{"j/k", "Navigate"},
				{"enter", "Edit"},
				{"space", "Toggle"},
				{"x", "Unset"},
				{"s", "Save"},
				{"f", "Open"},
				{"?", "More"},
			}
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
