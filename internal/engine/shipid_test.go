package engine

import (
	"reflect"
	"testing"
)

func TestMatchShip(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		reference string
		want      bool
	}{
		{"Exact match", "H3200", "H3200", true},
		{"Candidate contains reference", "H3200A", "H3200", true},
		{"Reference contains candidate", "H3200", "H3200A", true},
		{"Different hulls", "H3200", "H8151", false},
		{"Case and whitespace normalized", "  h3200a ", "H3200", true},
		{"Empty candidate never matches", "", "H3200", false},
		{"Empty reference never matches", "H3200", "", false},
		{"Both empty never match", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchShip(tt.candidate, tt.reference); got != tt.want {
				t.Errorf("MatchShip(%q, %q) = %v, want %v", tt.candidate, tt.reference, got, tt.want)
			}
		})
	}
}

func TestMatchAnyShip(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		references []string
		want       bool
	}{
		{"One pair matches", []string{"H1234", "H3200A"}, []string{"H3200"}, true},
		{"No pair matches", []string{"H1234"}, []string{"H3200", "H8151"}, false},
		{"Empty candidate set never matches", nil, []string{"H3200"}, false},
		{"Empty reference set never matches", []string{"H3200"}, nil, false},
		{"Duplicates are harmless", []string{"H3200", "H3200"}, []string{"H3200"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchAnyShip(tt.candidates, tt.references); got != tt.want {
				t.Errorf("MatchAnyShip(%v, %v) = %v, want %v", tt.candidates, tt.references, got, tt.want)
			}
		})
	}
}

func TestSplitShipList(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"Simple list", "H3200,H8151", []string{"H3200", "H8151"}},
		{"Trims and uppercases", " h3200 , h8151a ", []string{"H3200", "H8151A"}},
		{"Drops empty tokens", "H3200,,H8151,", []string{"H3200", "H8151"}},
		{"Keeps duplicates", "H3200,H3200", []string{"H3200", "H3200"}},
		{"Blank input", "   ", nil},
		{"Empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitShipList(tt.csv)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitShipList(%q) = %v, want %v", tt.csv, got, tt.want)
			}
		})
	}
}

func TestShipInSet(t *testing.T) {
	set := NewShipSet([]string{"h3200", " H8151 "})

	tests := []struct {
		name   string
		tokens []string
		want   bool
	}{
		{"Exact case-insensitive member", []string{"H3200"}, true},
		{"Normalized member", []string{" h8151 "}, true},
		{"Prefix is not an exact member", []string{"H3200A"}, false},
		{"No tokens", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShipInSet(tt.tokens, set); got != tt.want {
				t.Errorf("ShipInSet(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}

	if ShipInSet([]string{"H3200"}, nil) {
		t.Error("ShipInSet against nil set should be false")
	}
	if NewShipSet(nil) != nil {
		t.Error("NewShipSet(nil) should return nil")
	}
}
