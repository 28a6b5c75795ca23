package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/itemdeck/internal/engine"
)

// renderOverlay renders the detail view of the open item over the gallery.
func (m Model) renderOverlay(card engine.Card) string {
	styles := m.theme.Styles()
	width := clamp(m.width-8, 30, 72)
	valueWidth := width - 4 - fieldLabelWidth

	field := func(label, value string, style lipgloss.Style) string {
		return styles.MutedText.Render(padRight(label, fieldLabelWidth)) + style.Render(value)
	}

	id := strconv.FormatInt(card.ID, 10)
	lines := []string{
		styles.Logo.Render("ITEM_" + id),
		styles.FaintText.Render(strings.Repeat("─", 30)),
		"",
		field("name", truncate(card.Name, valueWidth), styles.Text.Bold(true)),
		field("id", id, styles.Text),
		field("asset", truncateMiddle(card.AssetRef, valueWidth), styles.InfoText),
		"",
	}
	if m.notice != "" {
		lines = append(lines, styles.SuccessText.Render(truncate(m.notice, width-4)), "")
	}
	lines = append(lines, styles.FaintText.Render("y copy asset URL · esc close"))

	return m.placeModal(strings.Join(lines, "\n"), width, m.theme.BorderFocus)
}
