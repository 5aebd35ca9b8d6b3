package engine

import "testing"

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultCategories())

	tests := []struct {
		name        string
		title       string
		wantKeyword string
	}{
		{
			name:        "No keyword falls back to first entry",
			title:       "H3200 도면 검토 요청",
			wantKeyword: "회의",
		},
		{
			name:        "Empty title falls back to first entry",
			title:       "",
			wantKeyword: "회의",
		},
		{
			name:        "Meeting keyword",
			title:       "선주 회의 일정 안내",
			wantKeyword: "회의",
		},
		{
			name:        "Steel cutting keyword is case-insensitive",
			title:       "H8151 S/C Ceremony",
			wantKeyword: "s/c",
		},
		{
			name:        "Launching keyword",
			title:       "H3200 진수 행사",
			wantKeyword: "진수",
		},
		{
			name:        "Sea trial keyword",
			title:       "시운전 출항 보고",
			wantKeyword: "시운전",
		},
		{
			name:        "Gas trial resolves to earlier sea-trial entry",
			title:       "가스시운전 준비 회의자료",
			wantKeyword: "회의",
		},
		{
			name:        "Gas trial without meeting word still hits sea trial first",
			title:       "H3200 가스시운전",
			wantKeyword: "시운전",
		},
		{
			name:        "Delivery keyword",
			title:       "H8151 인도 기념식",
			wantKeyword: "인도",
		},
		{
			name:        "Keel laying keyword uppercase",
			title:       "K/L EVENT",
			wantKeyword: "k/l",
		},
		{
			name:        "Two keywords resolve by table order, not title order",
			title:       "s/c 준비 회의", // 회의 is first in the table
			wantKeyword: "회의",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.title)
			if got.Keyword != tt.wantKeyword {
				t.Errorf("Classify(%q).Keyword = %q, want %q", tt.title, got.Keyword, tt.wantKeyword)
			}
		})
	}
}

func TestDefaultCategoriesShape(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 7 {
		t.Fatalf("DefaultCategories() has %d entries, want 7", len(cats))
	}
	if cats[0].Keyword != "회의" {
		t.Errorf("first entry (default) keyword = %q, want %q", cats[0].Keyword, "회의")
	}
	for i, cat := range cats {
		if cat.Keyword == "" || cat.Label == "" || cat.Color == "" {
			t.Errorf("entry %d has empty field: %+v", i, cat)
		}
	}
}

func TestClassifierCategoriesIsACopy(t *testing.T) {
	c := NewClassifier(DefaultCategories())
	got := c.Categories()
	got[0].Keyword = "tampered"
	if c.Classify("no keyword here").Keyword == "tampered" {
		t.Error("Categories() exposed internal table to mutation")
	}
}
