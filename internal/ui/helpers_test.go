package ui

import "testing"

func TestRenderStars(t *testing.T) {
	cases := []struct {
		name   string
		rating int
		want   string
	}{
		{"zero", 0, "☆☆☆☆☆"},
		{"middle", 3, "★★★☆☆"},
		{"full", 5, "★★★★★"},
		{"below range", -2, "☆☆☆☆☆"},
		{"above range", 9, "★★★★★"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderStars(tc.rating); got != tc.want {
				t.Fatalf("renderStars(%d) = %q, want %q", tc.rating, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q, want unchanged", got)
	}
	if got := truncate("  padded  ", 10); got != "padded" {
		t.Fatalf("truncate = %q, want trimmed", got)
	}
	got := truncate("a long book title", 8)
	if len([]rune(got)) > 8 {
		t.Fatalf("truncate = %q (%d runes), want <= 8", got, len([]rune(got)))
	}
	if got[len(got)-len("…"):] != "…" {
		t.Fatalf("truncate = %q, want ellipsis suffix", got)
	}
	if got := truncate("anything", 0); got != "anything" {
		t.Fatalf("truncate with zero max = %q, want unchanged", got)
	}
}
