package tui

import (
	"context"
	"time"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	tea "github.com/charmbracelet/bubbletea"
)

const searchTimeout = 30 * time.Second

// searchCmd runs req against the searcher off the UI goroutine.
func (m Model) searchCmd(req advisor.SearchRequest, answering bool) tea.Cmd {
	searcher := m.searcher
	parent := m.ctx
	seq := m.seq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, searchTimeout)
		defer cancel()

		resp, source, err := searcher.Search(ctx, req)
		return searchResultMsg{
			resp:      resp,
			source:    source,
			err:       err,
			seq:       seq,
			answering: answering,
		}
	}
}
