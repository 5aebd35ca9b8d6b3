package engine

import (
	"strings"
	"time"

	"shipdesk-be/internal/models"
)

// Operator selects how active facets combine.
type Operator string

const (
	OperatorAnd Operator = "and"
	OperatorOr  Operator = "or"
)

// ParseOperator maps a request value to an Operator, defaulting to AND.
func ParseOperator(s string) Operator {
	if strings.EqualFold(strings.TrimSpace(s), string(OperatorOr)) {
		return OperatorOr
	}
	return OperatorAnd
}

// DateRange bounds are loosely formatted date strings; a blank bound
// imposes no constraint. The end bound is inclusive of its entire day.
type DateRange struct {
	Start string
	End   string
}

// Personalization toggles. Each only becomes an active facet when the
// profile actually carries the field it needs.
type Personalization struct {
	ByMyEmail bool
	ByMyShips bool
}

// Criteria aggregates every facet of one query. A blank text value, an
// empty set, or a disabled toggle means that facet is inactive: it is
// excluded from composition entirely rather than evaluating to a
// constant.
type Criteria struct {
	Sender     string
	Subject    string
	Body       string
	DateRange  DateRange
	Operator   Operator
	Categories []string // category keywords; empty = no restriction
	Ships      []string // exact hull numbers; empty = no restriction
	Personal   Personalization
	Profile    *models.UserProfile // nil = personalization facets inactive
}

// Facet is one independently togglable admission predicate.
type Facet[T any] func(T) bool

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
}

// ParseLooseDate parses the loosely formatted date strings found in
// imported mail and extracted events. Returns false when no known
// layout matches.
func ParseLooseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateRangeFacet admits records whose date falls inside the range. The
// upper bound covers the whole end day. A record date that does not
// parse fails closed; so does an unparseable bound.
func dateRangeFacet[T any](r DateRange, dateOf func(T) string) Facet[T] {
	var lower, upper time.Time
	var hasLower, hasUpper, badBound bool

	if strings.TrimSpace(r.Start) != "" {
		if t, ok := ParseLooseDate(r.Start); ok {
			lower, hasLower = t, true
		} else {
			badBound = true
		}
	}
	if strings.TrimSpace(r.End) != "" {
		if t, ok := ParseLooseDate(r.End); ok {
			upper, hasUpper = t.AddDate(0, 0, 1), true
		} else {
			badBound = true
		}
	}

	return func(rec T) bool {
		if badBound {
			return false
		}
		t, ok := ParseLooseDate(dateOf(rec))
		if !ok {
			return false
		}
		if hasLower && t.Before(lower) {
			return false
		}
		if hasUpper && !t.Before(upper) {
			return false
		}
		return true
	}
}

func (r DateRange) active() bool {
	return strings.TrimSpace(r.Start) != "" || strings.TrimSpace(r.End) != ""
}

// profileShips returns the declared hull numbers, or nil when the
// profile is absent or declares none.
func (c Criteria) profileShips() []string {
	if c.Profile == nil {
		return nil
	}
	return SplitShipList(c.Profile.ShipNumbers)
}

// EmailFacets derives the active facet list for email records.
func EmailFacets(c Criteria) []Facet[models.Email] {
	var facets []Facet[models.Email]

	if q := strings.TrimSpace(c.Sender); q != "" {
		facets = append(facets, func(e models.Email) bool {
			return containsFold(e.Sender, q)
		})
	}
	if q := strings.TrimSpace(c.Subject); q != "" {
		facets = append(facets, func(e models.Email) bool {
			return containsFold(e.Subject, q)
		})
	}
	if q := strings.TrimSpace(c.Body); q != "" {
		facets = append(facets, func(e models.Email) bool {
			return containsFold(e.Body, q)
		})
	}
	if c.DateRange.active() {
		facets = append(facets, dateRangeFacet(c.DateRange, func(e models.Email) string {
			return e.Date
		}))
	}
	if c.Personal.ByMyEmail && c.Profile != nil && strings.TrimSpace(c.Profile.Email) != "" {
		me := strings.TrimSpace(c.Profile.Email)
		facets = append(facets, func(e models.Email) bool {
			return containsFold(e.Sender, me) || containsFold(e.Recipient, me)
		})
	}
	if c.Personal.ByMyShips {
		if myShips := c.profileShips(); len(myShips) > 0 {
			facets = append(facets, func(e models.Email) bool {
				text := e.Subject + " " + e.Body
				for _, ship := range myShips {
					if containsFold(text, ship) {
						return true
					}
				}
				return false
			})
		}
	}

	return facets
}

// EventFacets derives the active facet list for calendar events. The
// classifier supplies the category derivation; categories are never
// stored on the event itself.
func EventFacets(c Criteria, classifier *Classifier) []Facet[models.CalendarEvent] {
	var facets []Facet[models.CalendarEvent]

	if len(c.Categories) > 0 {
		selected := make(map[string]bool, len(c.Categories))
		for _, k := range c.Categories {
			selected[normalizeText(k)] = true
		}
		facets = append(facets, func(ev models.CalendarEvent) bool {
			return selected[normalizeText(classifier.Classify(ev.Title).Keyword)]
		})
	}
	if len(c.Ships) > 0 {
		selected := NewShipSet(c.Ships)
		facets = append(facets, func(ev models.CalendarEvent) bool {
			return ShipInSet(SplitShipList(ev.ShipNumber), selected)
		})
	}
	if c.DateRange.active() {
		facets = append(facets, dateRangeFacet(c.DateRange, func(ev models.CalendarEvent) string {
			return ev.StartDate
		}))
	}
	if c.Personal.ByMyShips {
		if myShips := c.profileShips(); len(myShips) > 0 {
			facets = append(facets, func(ev models.CalendarEvent) bool {
				return MatchAnyShip(SplitShipList(ev.ShipNumber), myShips)
			})
		}
	}

	return facets
}
