package unitofwork

import (
	"context"

	"legal-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	HistoryRepository() contract.HistoryRepository
}
