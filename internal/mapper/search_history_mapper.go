package mapper

import (
	"encoding/json"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/model"
	"legal-assistant-be/pkg/citation"
)

type SearchHistoryMapper struct{}

func NewSearchHistoryMapper() *SearchHistoryMapper {
	return &SearchHistoryMapper{}
}

func (m *SearchHistoryMapper) ToEntity(h *model.SearchHistory) *entity.SearchHistory {
	if h == nil {
		return nil
	}

	hyperlinks := make([]citation.Hyperlink, 0)
	if len(h.Hyperlinks) > 0 {
		// A record with an unreadable hyperlinks column still surfaces its
		// summary; the list just comes back empty.
		_ = json.Unmarshal(h.Hyperlinks, &hyperlinks)
	}

	return &entity.SearchHistory{
		Id:          h.Id,
		PromptTitle: h.PromptTitle,
		Summary:     h.Summary,
		Hyperlinks:  hyperlinks,
		CreatedAt:   h.CreatedAt,
		OwnerId:     h.OwnerId,
	}
}

func (m *SearchHistoryMapper) ToEntities(hs []*model.SearchHistory) []*entity.SearchHistory {
	entities := make([]*entity.SearchHistory, 0, len(hs))
	for _, h := range hs {
		entities = append(entities, m.ToEntity(h))
	}
	return entities
}

func (m *SearchHistoryMapper) ToModel(h *entity.SearchHistory) (*model.SearchHistory, error) {
	if h == nil {
		return nil, nil
	}

	hyperlinks := h.Hyperlinks
	if hyperlinks == nil {
		hyperlinks = make([]citation.Hyperlink, 0)
	}
	raw, err := json.Marshal(hyperlinks)
	if err != nil {
		return nil, err
	}

	return &model.SearchHistory{
		Id:          h.Id,
		PromptTitle: h.PromptTitle,
		Summary:     h.Summary,
		Hyperlinks:  raw,
		CreatedAt:   h.CreatedAt,
		OwnerId:     h.OwnerId,
	}, nil
}
