package engine

import (
	"log"
	"strings"

	"shipdesk-be/internal/models"
)

// DayKeyLayout is the bucket key format for the calendar grid.
const DayKeyLayout = "2006-01-02"

// BucketIndex groups events by local calendar day for grid lookup.
type BucketIndex map[string][]models.CalendarEvent

// BuildBucketIndex buckets events by the day of their start date,
// preserving input order within each bucket. Events without a start date
// are left out of the index (they stay visible in the list view); an
// unparseable start date is logged and skipped so one bad record cannot
// abort indexing.
func BuildBucketIndex(events []models.CalendarEvent) BucketIndex {
	idx := make(BucketIndex)
	for _, ev := range events {
		if strings.TrimSpace(ev.StartDate) == "" {
			continue
		}
		t, ok := ParseLooseDate(ev.StartDate)
		if !ok {
			log.Printf("calendar index: skipping event %s: unparseable start date %q", ev.ID, ev.StartDate)
			continue
		}
		key := t.Format(DayKeyLayout)
		idx[key] = append(idx[key], ev)
	}
	return idx
}

// Lookup returns the events for one day key, empty when the day has none.
func (idx BucketIndex) Lookup(key string) []models.CalendarEvent {
	if events, ok := idx[key]; ok {
		return events
	}
	return []models.CalendarEvent{}
}

// DayKey derives the bucket key for a start date, false when it does not
// parse.
func DayKey(startDate string) (string, bool) {
	t, ok := ParseLooseDate(startDate)
	if !ok {
		return "", false
	}
	return t.Format(DayKeyLayout), true
}
