package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/itemdeck/internal/catalog"
	"github.com/five82/itemdeck/internal/engine"
)

// renderGallery renders the visible rows of the card grid.
func (m Model) renderGallery() string {
	if !m.session.GalleryVisible() {
		return ""
	}
	styles := m.theme.Styles()

	cards := m.session.Rendered()
	if len(cards) == 0 {
		msg := "Nothing found."
		if m.session.Readiness() == catalog.Loading {
			msg = "Nothing found yet, the catalog is still loading."
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(styles.MutedText.Render(msg))
	}

	cols := m.columns()
	rows := m.visibleRows()
	gap := strings.Repeat(" ", cardGap)

	lines := make([]string, 0, rows)
	for r := m.scroll; r < m.scroll+rows; r++ {
		start := r * cols
		if start >= len(cards) {
			break
		}
		end := min(start+cols, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, m.renderCard(cards[i], i == m.selected && m.focus == focusGallery))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(lines, "\n")
}

// renderCard renders one item: the ID tag above the name.
func (m Model) renderCard(c engine.Card, selected bool) string {
	styles := m.theme.Styles()
	inner := m.cardWidth - 2

	border := m.theme.Border
	if selected {
		border = m.theme.BorderFocus
	}

	nameStyle := styles.Text
	if c.Name == catalog.Placeholder {
		nameStyle = styles.FaintText
	}

	body := styles.AccentText.Render(truncate("#"+strconv.FormatInt(c.ID, 10), inner)) + "\n" +
		nameStyle.Render(truncate(c.Name, inner))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(inner).
		Render(body)
}
