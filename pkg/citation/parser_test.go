package citation

import (
	"net/url"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantSummary   string
		wantCitations []string
	}{
		{
			name:          "well-formed with citations",
			raw:           "### Summary\nThe court held the contract void.\n### Citations Found\nState v. Doe, 2019\nRoe v. Wade, 410 U.S. 113\n",
			wantSummary:   "The court held the contract void.",
			wantCitations: []string{"State v. Doe, 2019", "Roe v. Wade, 410 U.S. 113"},
		},
		{
			name:          "blank citation lines dropped, order preserved",
			raw:           "### Summary\nShort summary.\n### Citations Found\n\nA v. B\n\n   \nC v. D\n",
			wantSummary:   "Short summary.",
			wantCitations: []string{"A v. B", "C v. D"},
		},
		{
			name:          "no citations sentinel",
			raw:           "### Summary\nNothing cited here.\n### Citations Found\nNo citations were found.",
			wantSummary:   "Nothing cited here.",
			wantCitations: []string{},
		},
		{
			name:          "sentinel empties the list despite a citation-like line",
			raw:           "### Summary\nThe court ruled X.\n### Citations Found\nState v. Doe, 2019\nNo citations were found",
			wantSummary:   "The court ruled X.",
			wantCitations: []string{},
		},
		{
			name:          "citations header missing",
			raw:           "### Summary\nOnly a summary came back.",
			wantSummary:   "Only a summary came back.",
			wantCitations: []string{},
		},
		{
			name:          "summary header missing",
			raw:           "Some preamble.\n### Citations Found\nA v. B",
			wantSummary:   SummaryFallback,
			wantCitations: []string{"A v. B"},
		},
		{
			name:          "completely unstructured output",
			raw:           "The model ignored the format entirely.",
			wantSummary:   SummaryFallback,
			wantCitations: []string{},
		},
		{
			name:          "empty input",
			raw:           "",
			wantSummary:   SummaryFallback,
			wantCitations: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)

			if got.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSummary)
			}

			if len(got.Hyperlinks) != len(tt.wantCitations) {
				t.Fatalf("Hyperlinks = %d entries, want %d", len(got.Hyperlinks), len(tt.wantCitations))
			}
			for i, want := range tt.wantCitations {
				if got.Hyperlinks[i].CitationText != want {
					t.Errorf("Hyperlinks[%d].CitationText = %q, want %q", i, got.Hyperlinks[i].CitationText, want)
				}
				if got.Hyperlinks[i].URL != SearchURL(want) {
					t.Errorf("Hyperlinks[%d].URL = %q, want %q", i, got.Hyperlinks[i].URL, SearchURL(want))
				}
			}
		})
	}
}

func TestSearchURL(t *testing.T) {
	tests := []struct {
		citation string
		want     string
	}{
		{"State v. Doe, 2019", "https://indiankanoon.org/search/?formInput=State%20v.%20Doe%2C%202019"},
		{`"quoted" & ampersand`, "https://indiankanoon.org/search/?formInput=%22quoted%22%20%26%20ampersand"},
		{"plain", "https://indiankanoon.org/search/?formInput=plain"},
	}

	for _, tt := range tests {
		t.Run(tt.citation, func(t *testing.T) {
			got := SearchURL(tt.citation)
			if got != tt.want {
				t.Errorf("SearchURL(%q) = %q, want %q", tt.citation, got, tt.want)
			}

			// Deterministic
			if again := SearchURL(tt.citation); again != got {
				t.Errorf("SearchURL not deterministic: %q vs %q", got, again)
			}

			// Round trip: decoding the query component restores the citation
			query := strings.TrimPrefix(got, "https://indiankanoon.org/search/?formInput=")
			decoded, err := url.QueryUnescape(query)
			if err != nil {
				t.Fatalf("QueryUnescape(%q): %v", query, err)
			}
			if decoded != tt.citation {
				t.Errorf("round trip = %q, want %q", decoded, tt.citation)
			}
		})
	}
}
