package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/itemdeck/internal/catalog"
)

// breakerReporter is implemented by asset checkers that sit behind a
// circuit breaker.
type breakerReporter interface {
	BreakerState() string
}

// renderMain renders the full screen: status line, command bar, welcome
// panel, gallery and notice line.
func (m Model) renderMain() string {
	panel := m.renderPanel()
	galleryHeight := max(m.height-chromeHeight-footerHeight-lipgloss.Height(panel), 0)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(panel)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Height(galleryHeight).MaxHeight(galleryHeight).Render(m.renderGallery()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("itemdeck", styles.Logo),
		m.renderBadge(bg),
	}

	if m.session.Readiness() == catalog.Ready && !compact {
		parts = append(parts,
			bg.Render("Catalog:", styles.MutedText)+bg.Space()+
				bg.Render(strconv.Itoa(m.session.CatalogSize()), styles.Text),
		)
	}

	if q := m.session.Query(); q != nil {
		parts = append(parts, bg.Render(q.Describe(), styles.AccentText))
		shown := fmt.Sprintf("shown %d of %d", len(m.session.Rendered()), m.session.ResultCount())
		parts = append(parts, bg.Render(shown, styles.Text))
		if n := m.session.Masked(); n > 0 && !compact {
			parts = append(parts,
				bg.Render("Hidden:", styles.MutedText)+bg.Space()+
					bg.Render(strconv.Itoa(n), styles.WarningText),
			)
		}
	}

	if br, ok := m.assets.(breakerReporter); ok {
		if st := br.BreakerState(); st != "closed" {
			parts = append(parts, bg.Render("ASSETS "+strings.ToUpper(st), styles.DangerText))
		}
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderBadge renders the SYNC / ONLINE / OFFLINE connection badge.
func (m Model) renderBadge(bg BgStyle) string {
	r := m.session.Readiness()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ReadinessColor(r))).
		Bold(true)

	switch r {
	case catalog.Ready:
		return bg.Render("● ONLINE", style)
	case catalog.Failed:
		return bg.Render("● OFFLINE", style)
	default:
		return m.spinner.View() + bg.Space() + bg.Render("SYNC", style)
	}
}

// renderCommandBar renders the short key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, styles.AccentText.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter renders the notice line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	limit := max(m.width-2, 10)

	if m.notice != "" {
		return styles.Footer.Render(styles.WarningText.Render(truncate(m.notice, limit)))
	}
	if m.session.Readiness() == catalog.Failed {
		if err := m.session.LoadError(); err != nil {
			return styles.Footer.Render(styles.DangerText.Render(truncate("catalog: "+err.Error(), limit)))
		}
	}
	return ""
}
