package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/itemdeck/internal/catalog"
	"github.com/five82/itemdeck/internal/engine"
)

const fieldLabelWidth = 8

// renderPanel renders the welcome panel. It is full-size on the welcome
// screen, shrinks to the search row while searching and to a one-line
// summary in range mode.
func (m Model) renderPanel() string {
	styles := m.theme.Styles()

	switch m.session.State() {
	case engine.RangeActive:
		desc := ""
		if q := m.session.Query(); q != nil {
			desc = q.Describe()
		}
		return " " + styles.AccentText.Bold(true).Render("RANGE") + "  " +
			styles.Text.Render(desc) + "  " +
			styles.FaintText.Render("b back")
	case engine.SearchActive:
		return " " + m.renderSearchRow(styles)
	}

	lines := []string{
		styles.Logo.Render("ITEM CATALOG"),
		styles.MutedText.Render("Find items by name or ID, or open a block of IDs."),
		"",
		m.renderSearchRow(styles),
		m.renderRangeRow(styles),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSearchRow(styles Styles) string {
	return m.fieldLabel(styles, "search", m.focus == focusSearch) + m.search.View()
}

func (m Model) renderRangeRow(styles Styles) string {
	return m.fieldLabel(styles, "range", m.focus == focusFrom || m.focus == focusTo) +
		m.renderBoundField(m.from, m.focus == focusFrom) +
		styles.MutedText.Render(" – ") +
		m.renderBoundField(m.to, m.focus == focusTo) +
		"  " + m.renderRangeButton()
}

func (m Model) fieldLabel(styles Styles, label string, focused bool) string {
	style := styles.MutedText
	if focused {
		style = styles.AccentText.Bold(true)
	}
	return style.Render(padRight(label, fieldLabelWidth))
}

func (m Model) renderBoundField(in textinput.Model, focused bool) string {
	bg := m.theme.SurfaceAlt
	if focused {
		bg = m.theme.FocusBg
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Width(in.Width + 3).
		Render(in.View())
}

// renderRangeButton renders the submit button; its label follows catalog
// readiness since submission only works once the catalog is ready.
func (m Model) renderRangeButton() string {
	styles := m.theme.Styles()
	switch m.session.Readiness() {
	case catalog.Ready:
		return styles.Selected.Bold(true).Padding(0, 1).Render("OPEN")
	case catalog.Failed:
		return styles.DangerText.Padding(0, 1).Render("CONNECTION ERROR")
	default:
		return styles.WarningText.Padding(0, 1).Render("LOADING…")
	}
}
