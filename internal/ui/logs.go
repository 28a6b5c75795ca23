package ui

import (
	"strings"
)

// renderLogs renders the tail of itemdeck's own log file.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Header.Width(m.width).Render(
		styles.Logo.Render("Diagnostics") + "  " +
			styles.MutedText.Render(truncateMiddle(m.logFile, max(m.width-20, 10))),
	))
	b.WriteString("\n")

	avail := max(m.height-2, 1)
	switch {
	case strings.TrimSpace(m.logFile) == "":
		b.WriteString(styles.MutedText.Render(" logging is disabled"))
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(" " + truncate(m.logErr.Error(), max(m.width-2, 10))))
	case len(m.logLines) == 0:
		b.WriteString(styles.MutedText.Render(" no log entries yet"))
	default:
		lines := m.logLines
		if len(lines) > avail {
			lines = lines[len(lines)-avail:]
		}
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.Text.Render(" " + truncate(line, max(m.width-2, 10))))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(styles.FaintText.Render("r reload · L/esc close")))
	return b.String()
}
