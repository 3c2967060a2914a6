// Package citation parses model output produced by the legal analysis prompt
// into a summary and a list of citation search links.
package citation

import (
	"net/url"
	"regexp"
	"strings"
)

// SummaryFallback is returned when the model output carries no parsable
// summary section. Malformed upstream output degrades, it never fails.
const SummaryFallback = "Summary could not be extracted."

// noCitationsSentinel is the phrase the prompt instructs the model to emit
// when the document contains no citations. Matched as a literal substring of
// the citations block, not per line.
const noCitationsSentinel = "No citations were found"

const searchURLPrefix = "https://indiankanoon.org/search/?formInput="

var (
	summaryRe     = regexp.MustCompile(`(?s)### Summary\s*\n(.*?)\n### Citations Found`)
	summaryTailRe = regexp.MustCompile(`(?s)### Summary\s*\n(.*)$`)
	citationsRe   = regexp.MustCompile(`(?s)### Citations Found\s*\n(.*)$`)
)

type Hyperlink struct {
	CitationText string `json:"citation_text"`
	URL          string `json:"url"`
}

type Analysis struct {
	Summary    string
	Hyperlinks []Hyperlink
}

// Parse splits a raw model response into its summary and citation sections.
// Each non-blank line after the citations header becomes one citation,
// preserving source order.
func Parse(raw string) Analysis {
	// The summary ends at the citations header when present, otherwise it
	// runs to the end of the text.
	summary := SummaryFallback
	if m := summaryRe.FindStringSubmatch(raw); m != nil {
		summary = strings.TrimSpace(m[1])
	} else if m := summaryTailRe.FindStringSubmatch(raw); m != nil {
		summary = strings.TrimSpace(m[1])
	}

	hyperlinks := make([]Hyperlink, 0)
	if m := citationsRe.FindStringSubmatch(raw); m != nil {
		block := strings.TrimSpace(m[1])
		if !strings.Contains(block, noCitationsSentinel) {
			for _, line := range strings.Split(block, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				hyperlinks = append(hyperlinks, Hyperlink{
					CitationText: line,
					URL:          SearchURL(line),
				})
			}
		}
	}

	return Analysis{Summary: summary, Hyperlinks: hyperlinks}
}

// SearchURL builds the external search link for a citation string. The same
// citation always yields the same URL.
func SearchURL(citation string) string {
	// QueryEscape uses '+' for spaces; the search engine expects %20.
	query := strings.ReplaceAll(url.QueryEscape(citation), "+", "%20")
	return searchURLPrefix + query
}
