package share

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildTemplatesAllPlatforms(t *testing.T) {
	t.Parallel()

	links := Build("https://example.test/catalogue", "Browse our catalogue")

	if links.Link != "https://example.test/catalogue" {
		t.Fatalf("link must pass through, got %q", links.Link)
	}

	cases := []struct {
		name   string
		target string
		prefix string
	}{
		{"whatsapp", links.WhatsApp, "https://wa.me/?"},
		{"facebook", links.Facebook, "https://www.facebook.com/sharer/sharer.php?"},
		{"x", links.X, "https://twitter.com/intent/tweet?"},
		{"email", links.Email, "mailto:?"},
	}

	for _, tc := range cases {
		if !strings.HasPrefix(tc.target, tc.prefix) {
			t.Fatalf("%s: expected prefix %q, got %q", tc.name, tc.prefix, tc.target)
		}
	}
}

func TestBuildEncodesLinkAndMessage(t *testing.T) {
	t.Parallel()

	links := Build("https://example.test/c?x=1&y=2", "spaces & ampersands")

	parsed, err := url.Parse(links.X)
	if err != nil {
		t.Fatalf("invalid share URL: %v", err)
	}
	q := parsed.Query()
	if q.Get("url") != "https://example.test/c?x=1&y=2" {
		t.Fatalf("link must round-trip through encoding, got %q", q.Get("url"))
	}
	if q.Get("text") != "spaces & ampersands" {
		t.Fatalf("message must round-trip through encoding, got %q", q.Get("text"))
	}
}
