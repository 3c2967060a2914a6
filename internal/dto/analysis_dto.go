package dto

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type HyperlinkDTO struct {
	CitationText string `json:"citation_text"`
	URL          string `json:"url"`
}

type AnalysisResponse struct {
	Summary    string         `json:"summary"`
	Hyperlinks []HyperlinkDTO `json:"hyperlinks"`
}
