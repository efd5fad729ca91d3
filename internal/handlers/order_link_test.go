package handlers

import (
	"net/url"
	"strings"
	"testing"

	"backend/internal/models"
)

func TestBuildOrderLinkEncodesMessage(t *testing.T) {
	link := buildOrderLink("919987744781", models.Product{Name: "Batman & Robin Figure", Price: 1499})

	if !strings.HasPrefix(link, "https://wa.me/919987744781?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}

	text := parsed.Query().Get("text")
	if !strings.Contains(text, "*Batman & Robin Figure*") {
		t.Fatalf("expected product name in message, got %q", text)
	}
	if !strings.Contains(text, "Rs. 1499") {
		t.Fatalf("expected price in message, got %q", text)
	}
}
