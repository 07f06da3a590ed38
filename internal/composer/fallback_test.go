package composer

import (
	"strings"
	"testing"
)

func TestFallbackReferencesCompanyAndPosition(t *testing.T) {
	t.Parallel()
	body := Fallback("some background", "Acme Corp", "Platform Engineer")
	if body == "" {
		t.Fatal("Fallback returned empty body")
	}
	if !strings.Contains(body, "Acme Corp") {
		t.Fatalf("body missing company: %q", body)
	}
	if !strings.Contains(body, "Platform Engineer") {
		t.Fatalf("body missing position: %q", body)
	}
	if !strings.HasSuffix(body, "[Your Name]") {
		t.Fatalf("body missing signature: %q", body)
	}
}

func TestFallbackKeywordFamilies(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		content string
		want    string
		absent  string
	}{
		{
			name:    "experience",
			content: "I worked at a bank for three years",
			want:    "With my relevant professional experience",
			absent:  "As an enthusiastic candidate",
		},
		{
			name:    "education",
			content: "Computer science degree from a state university",
			want:    "educational background",
			absent:  "strong foundation",
		},
		{
			name:    "technology",
			content: "Built software and did backend development",
			want:    "My technical skills and passion for technology",
			absent:  "My dedication and eagerness to learn",
		},
		{
			name:    "none",
			content: "Avid reader and volunteer",
			want:    "As an enthusiastic candidate",
			absent:  "With my relevant professional experience",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			body := Fallback(tc.content, "Globex", "Analyst")
			if !strings.Contains(body, tc.want) {
				t.Fatalf("body missing clause %q: %q", tc.want, body)
			}
			if strings.Contains(body, tc.absent) {
				t.Fatalf("body contains wrong clause %q: %q", tc.absent, body)
			}
		})
	}
}
