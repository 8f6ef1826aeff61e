package service

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"traversymedia.com", "https://traversymedia.com"},
		{"http://example.com", "https://example.com"},
		{"https://Example.COM/", "https://example.com"},
		{"  youtube.com/c/someone  ", "https://youtube.com/c/someone"},
		{"https://github.com/alice", "https://github.com/alice"},
	}
	for _, tc := range cases {
		got, err := normalizeURL(tc.in)
		if err != nil {
			t.Fatalf("normalizeURL(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeURLRejectsHostless(t *testing.T) {
	for _, in := range []string{"https://", "://nope"} {
		if _, err := normalizeURL(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestEntryDatesOrdering(t *testing.T) {
	from, to, err := entryDates("2020-01-01", "2021-06-30")
	if err != nil {
		t.Fatalf("entryDates failed: %v", err)
	}
	if to == nil || !from.Before(*to) {
		t.Fatalf("expected from before to, got from=%v to=%v", from, to)
	}
}

func TestEntryDatesOpenEnded(t *testing.T) {
	_, to, err := entryDates("2020-01-01", "")
	if err != nil {
		t.Fatalf("entryDates failed: %v", err)
	}
	if to != nil {
		t.Fatalf("expected nil to, got %v", to)
	}
}

func TestEntryDatesRejectsInvertedRange(t *testing.T) {
	if _, _, err := entryDates("2021-01-01", "2020-01-01"); err == nil {
		t.Fatal("expected error when from is after to")
	}
	if _, _, err := entryDates("2020-01-01", "2020-01-01"); err == nil {
		t.Fatal("expected error when from equals to")
	}
}
