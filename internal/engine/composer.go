package engine

import "shipdesk-be/internal/models"

// Apply runs the active facets over a record collection under one
// operator. The result is a new slice preserving the input's relative
// order; records are never mutated. With no active facets every record
// passes.
func Apply[T any](records []T, facets []Facet[T], op Operator) []T {
	out := make([]T, 0, len(records))
	if len(facets) == 0 {
		out = append(out, records...)
		return out
	}
	for _, r := range records {
		if admit(r, facets, op) {
			out = append(out, r)
		}
	}
	return out
}

func admit[T any](record T, facets []Facet[T], op Operator) bool {
	if op == OperatorOr {
		for _, f := range facets {
			if f(record) {
				return true
			}
		}
		return false
	}
	for _, f := range facets {
		if !f(record) {
			return false
		}
	}
	return true
}

// FilterEmails applies the criteria's email facets.
func FilterEmails(emails []models.Email, c Criteria) []models.Email {
	return Apply(emails, EmailFacets(c), c.Operator)
}

// FilterEvents applies the criteria's event facets.
func FilterEvents(events []models.CalendarEvent, c Criteria, classifier *Classifier) []models.CalendarEvent {
	return Apply(events, EventFacets(c, classifier), c.Operator)
}
