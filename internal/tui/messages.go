package tui

import "github.com/Veraticus/axox-storefront/internal/advisor"

// searchResultMsg carries a completed search back into Update. seq identifies
// the search that produced it.
type searchResultMsg struct {
	err       error
	source    advisor.Source
	resp      advisor.SearchResponse
	seq       int
	answering bool
}
