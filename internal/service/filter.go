package service

import (
	"strings"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"golang.org/x/text/cases"
)

// FilterEvents keeps the events whose title or place contains the query
// (case-folded) and whose category matches, when one is selected.
// The input order is preserved.
func FilterEvents(events []*domain.Event, f domain.EventFilter) []*domain.Event {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Query))

	res := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(e.Title), query) &&
			!strings.Contains(fold.String(e.Place), query) {
			continue
		}
		res = append(res, e)
	}

	return res
}
