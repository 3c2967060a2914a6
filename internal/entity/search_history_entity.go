package entity

import (
	"time"

	"legal-assistant-be/pkg/citation"
)

// SearchHistory is one completed analysis owned by a user. Records are
// written once after a successful analysis and never updated.
type SearchHistory struct {
	Id          uint
	PromptTitle string
	Summary     string
	Hyperlinks  []citation.Hyperlink
	CreatedAt   time.Time
	OwnerId     uint
}
