package service

import (
	"context"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
)

type IHistoryService interface {
	ListForUser(ctx context.Context, ownerID uint) ([]*dto.HistoryItem, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{uowFactory: uowFactory}
}

func (s *historyService) ListForUser(ctx context.Context, ownerID uint) ([]*dto.HistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.HistoryRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: ownerID},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.HistoryItem, 0, len(records))
	for _, record := range records {
		hyperlinks := make([]dto.HyperlinkDTO, 0, len(record.Hyperlinks))
		for _, h := range record.Hyperlinks {
			hyperlinks = append(hyperlinks, dto.HyperlinkDTO{CitationText: h.CitationText, URL: h.URL})
		}
		items = append(items, &dto.HistoryItem{
			Id:          record.Id,
			PromptTitle: record.PromptTitle,
			Summary:     record.Summary,
			Hyperlinks:  hyperlinks,
			CreatedAt:   record.CreatedAt,
			OwnerId:     record.OwnerId,
		})
	}

	return items, nil
}
