package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/cli"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(cli.BrandIcon + " AXOX Search Agent"))
	b.WriteString("\n")

	switch m.state {
	case advisor.StateRecommendationsReady, advisor.StateNoResults, advisor.StateError:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	switch m.state {
	case advisor.StateIdle:
		b.WriteString(m.renderIdle())
	case advisor.StateUnderstanding:
		b.WriteString(m.renderUnderstanding())
	case advisor.StateNeedsClarification:
		b.WriteString(m.renderClarification())
	case advisor.StateRecommendationsReady:
		b.WriteString(m.renderRecommendations())
	case advisor.StateNoResults:
		b.WriteString(m.renderNoResults())
	case advisor.StateError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderIdle() string {
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("Tell us what you're training for and we'll find the right equipment."))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderCards())
	return b.String()
}

func (m Model) renderCards() string {
	cards := make([]string, 0, len(advisor.QuickCards))
	for i, c := range advisor.QuickCards {
		style := m.theme.Card
		if i == m.card {
			style = style.BorderForeground(m.theme.Primary).Bold(true)
		}
		cards = append(cards, style.Render(c.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderUnderstanding() string {
	return fmt.Sprintf("%s %s\n", m.spinner.View(),
		m.theme.StatusPending.Render(fmt.Sprintf("Understanding %q...", m.query)))
}

func (m Model) renderClarification() string {
	var b strings.Builder
	b.WriteString(m.theme.StatusInfo.Render(cli.QuestionIcon + " A couple of questions to narrow it down"))
	b.WriteString("\n\n")

	for qi, q := range m.resp.ClarifyingQuestions {
		label := q.Question
		if qi == m.question {
			label = m.theme.Bold.Render("› " + label)
		} else {
			label = m.theme.Normal.Render("  " + label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		for oi, opt := range q.Options {
			line := "    " + opt
			switch {
			case qi == m.question && oi == m.option:
				line = m.theme.Selected.Render(line)
			case qi == m.question:
				line = m.theme.Normal.Render(line)
			default:
				line = m.theme.Italic.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRecommendations() string {
	var b strings.Builder

	intent := m.resp.Intent
	summary := []string{advisor.Deref(intent.Goal)}
	if s := advisor.Deref(intent.Space); s != "" {
		summary = append(summary, s)
	}
	if s := advisor.Deref(intent.Budget); s != "" {
		summary = append(summary, s)
	}
	b.WriteString(m.theme.StatusSuccess.Render(cli.AdvisorIcon + " " + strings.Join(summary, " · ")))
	if m.source == advisor.SourceLocal {
		b.WriteString(m.theme.Italic.Render("  (offline suggestions)"))
	}
	b.WriteString("\n\n")

	for i, rec := range m.resp.Recommendations {
		name := rec.ProductID
		price := ""
		if p, ok := m.catalog.ByID(rec.ProductID); ok {
			name = p.Name
			price = cli.FormatPrice(p.Price)
		}
		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, m.theme.Bold.Render(name), cli.PriceStyle.Render(price)))
		b.WriteString(m.theme.Italic.Render("   " + rec.Explanation))
		b.WriteString("\n")
	}

	if len(m.resp.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Also consider"))
		b.WriteString("\n")
		for _, alt := range m.resp.Alternatives {
			name := alt.ProductID
			if p, ok := m.catalog.ByID(alt.ProductID); ok {
				name = p.Name
			}
			b.WriteString(fmt.Sprintf("  %s: %s\n", name, alt.Reason))
		}
	}

	if why := advisor.Deref(m.resp.WhyThese); why != "" {
		b.WriteString("\n")
		width := 76
		if m.width > 0 && m.width-4 < width {
			width = max(m.width-4, 20)
		}
		b.WriteString(m.theme.RoundedBox.Width(width).Render(why))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderNoResults() string {
	return m.theme.StatusWarning.Render(cli.WarningIcon+" No equipment matched that search.") +
		"\n" + m.theme.Italic.Render("Press esc to start over with different terms.") + "\n"
}

func (m Model) renderError() string {
	msg := "search failed"
	if m.err != nil {
		msg = m.err.Error()
	}
	return m.theme.StatusError.Render(cli.ErrorIcon+" "+msg) +
		"\n" + m.theme.Italic.Render("Press esc to try again.") + "\n"
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(parts, " • "))
}
