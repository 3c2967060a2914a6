package dto

import "time"

type HistoryItem struct {
	Id          uint           `json:"id"`
	PromptTitle string         `json:"prompt_title"`
	Summary     string         `json:"summary"`
	Hyperlinks  []HyperlinkDTO `json:"hyperlinks"`
	CreatedAt   time.Time      `json:"created_at"`
	OwnerId     uint           `json:"owner_id"`
}
