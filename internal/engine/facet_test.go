package engine

import (
	"testing"

	"shipdesk-be/internal/models"
)

func testEmails() []models.Email {
	return []models.Email{
		{
			ID:        "1",
			Sender:    "kim.cs@shipyard.co.kr",
			Recipient: "lee.jh@shipyard.co.kr",
			Subject:   "H3200 진수 일정 공유",
			Body:      "진수 행사는 3월 10일입니다.",
			Date:      "2024-03-10 09:00",
		},
		{
			ID:        "2",
			Sender:    "owner@lineshipping.com",
			Recipient: "kim.cs@shipyard.co.kr",
			Subject:   "RE: H8151A sea trial report",
			Body:      "Please find the H8151A trial results attached.",
			Date:      "2024-03-12 14:30",
		},
		{
			ID:      "3",
			Sender:  "notice@shipyard.co.kr",
			Subject: "주간 안전 공지",
			Body:    "안전모 착용 바랍니다.",
			Date:    "TBD",
		},
	}
}

func TestEmailTextFacets(t *testing.T) {
	emails := testEmails()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "Sender contains is case-insensitive",
			criteria: Criteria{Sender: "OWNER@line"},
			wantIDs:  []string{"2"},
		},
		{
			name:     "Subject contains",
			criteria: Criteria{Subject: "진수"},
			wantIDs:  []string{"1"},
		},
		{
			name:     "Body contains",
			criteria: Criteria{Body: "안전모"},
			wantIDs:  []string{"3"},
		},
		{
			name:     "Blank values leave facets inactive",
			criteria: Criteria{Sender: "   ", Subject: ""},
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name:     "AND across two facets",
			criteria: Criteria{Sender: "shipyard", Subject: "진수", Operator: OperatorAnd},
			wantIDs:  []string{"1"},
		},
		{
			name:     "AND with contradictory facets is empty",
			criteria: Criteria{Sender: "shipyard", Subject: "zzz-impossible", Operator: OperatorAnd},
			wantIDs:  []string{},
		},
		{
			name:     "OR returns the union without duplicates, in order",
			criteria: Criteria{Subject: "진수", Body: "trial", Operator: OperatorOr},
			wantIDs:  []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEmails(emails, tt.criteria)
			assertEmailIDs(t, got, tt.wantIDs)
		})
	}
}

func TestEmailDateRangeFacet(t *testing.T) {
	emails := testEmails()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "Lower bound only",
			criteria: Criteria{DateRange: DateRange{Start: "2024-03-11"}},
			wantIDs:  []string{"2"},
		},
		{
			name:     "Upper bound includes the whole end day",
			criteria: Criteria{DateRange: DateRange{End: "2024-03-10"}},
			wantIDs:  []string{"1"},
		},
		{
			name:     "Both bounds",
			criteria: Criteria{DateRange: DateRange{Start: "2024-03-10", End: "2024-03-12"}},
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "Unparseable record date fails closed",
			criteria: Criteria{DateRange: DateRange{Start: "2020-01-01", End: "2030-01-01"}},
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "Unparseable bound fails closed",
			criteria: Criteria{DateRange: DateRange{Start: "someday"}},
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEmails(emails, tt.criteria)
			assertEmailIDs(t, got, tt.wantIDs)
		})
	}
}

func TestEmailPersonalizationFacets(t *testing.T) {
	emails := testEmails()
	profile := &models.UserProfile{
		Email:       "kim.cs@shipyard.co.kr",
		ShipNumbers: "H3200, H9999",
	}

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "By my email matches sender or recipient",
			criteria: Criteria{Personal: Personalization{ByMyEmail: true}, Profile: profile},
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "By my ships scans subject and body text",
			criteria: Criteria{Personal: Personalization{ByMyShips: true}, Profile: profile},
			wantIDs:  []string{"1"},
		},
		{
			name:     "Nil profile leaves personalization inactive",
			criteria: Criteria{Personal: Personalization{ByMyEmail: true, ByMyShips: true}},
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name: "Profile without ships leaves ship facet inactive",
			criteria: Criteria{
				Personal: Personalization{ByMyShips: true},
				Profile:  &models.UserProfile{Email: "kim.cs@shipyard.co.kr"},
			},
			wantIDs: []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEmails(emails, tt.criteria)
			assertEmailIDs(t, got, tt.wantIDs)
		})
	}
}

func TestParseLooseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"ISO date-time with space", "2024-03-10 09:00", true},
		{"Date only", "2024-03-10", true},
		{"RFC3339", "2024-03-10T09:00:00Z", true},
		{"Slash separated", "2024/03/10", true},
		{"Dot separated", "2024.03.10", true},
		{"Free text", "TBD", false},
		{"Blank", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseLooseDate(tt.input); ok != tt.ok {
				t.Errorf("ParseLooseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

func assertEmailIDs(t *testing.T, got []models.Email, wantIDs []string) {
	t.Helper()
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d emails, want %d (%v)", len(got), len(wantIDs), wantIDs)
	}
	for i, e := range got {
		if e.ID != wantIDs[i] {
			t.Errorf("result[%d].ID = %q, want %q", i, e.ID, wantIDs[i])
		}
	}
}
