package implementation

import (
	"context"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/mapper"
	"legal-assistant-be/internal/model"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SearchHistoryMapper
}

func NewHistoryRepository(db *gorm.DB) contract.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSearchHistoryMapper(),
	}
}

func (r *HistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HistoryRepositoryImpl) Create(ctx context.Context, record *entity.SearchHistory) error {
	modelRecord, err := r.mapper.ToModel(record)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *HistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SearchHistory, error) {
	var modelRecords []*model.SearchHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRecords).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRecords), nil
}

func (r *HistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SearchHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
