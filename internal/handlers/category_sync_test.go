package handlers

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Table Lamps", "table-lamps"},
		{"  Funko Pop!  ", "funko-pop"},
		{"Action Figures & Toys", "action-figures-toys"},
		{"already-a-slug", "already-a-slug"},
		{"MiXeD CaSe", "mixed-case"},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Fatalf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	once := slugify("Neon Signs & Lamps")
	twice := slugify(once)
	if once != twice {
		t.Fatalf("slugify is not idempotent: %q vs %q", once, twice)
	}
}
