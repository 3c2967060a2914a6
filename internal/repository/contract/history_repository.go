package contract

import (
	"context"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"
)

type HistoryRepository interface {
	Create(ctx context.Context, record *entity.SearchHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SearchHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
