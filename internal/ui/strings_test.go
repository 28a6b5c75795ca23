package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Alpha", 10, "Alpha"},
		{"trims", "  Alpha  ", 10, "Alpha"},
		{"cut", "Алмазный меч", 6, "Алмаз…"},
		{"no_limit", "Alpha", 0, "Alpha"},
		{"one", "Alpha", 1, "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddleKeepsBothEnds(t *testing.T) {
	got := truncateMiddle("https://cdn.example.com/donate/10001.webp", 21)
	if got != "https://cd…10001.webp" {
		t.Fatalf("truncateMiddle = %q", got)
	}
	if got := truncateMiddle("short", 21); got != "short" {
		t.Fatalf("truncateMiddle short = %q", got)
	}
}

func TestPadRightAndClamp(t *testing.T) {
	if got := padRight("id", 5); got != "id   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("toolong", 3); got != "toolong" {
		t.Fatalf("padRight overflow = %q", got)
	}
	if clamp(-1, 0, 5) != 0 || clamp(9, 0, 5) != 5 || clamp(3, 0, 5) != 3 {
		t.Fatalf("clamp returned out-of-range value")
	}
}
