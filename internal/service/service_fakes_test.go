package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/llm"
)

// In-memory repository fakes. They interpret the same specification values
// the GORM implementations do, so services run unchanged against them.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	user.Id = r.nextID
	r.nextID++
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byUsername, ok := spec.(specification.ByUsername); ok {
			if user, found := r.users[byUsername.Username]; found {
				copied := *user
				return &copied, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeHistoryRepo struct {
	mu        sync.Mutex
	nextID    uint
	records   []*entity.SearchHistory
	createErr error
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (r *fakeHistoryRepo) Create(ctx context.Context, record *entity.SearchHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	record.Id = r.nextID
	r.nextID++
	stored := *record
	r.records = append(r.records, &stored)
	return nil
}

func (r *fakeHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SearchHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ownerFiltered := false
	var ownerID uint
	newestFirst := false
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OwnedBy:
			ownerFiltered = true
			ownerID = s.OwnerID
		case specification.NewestFirst:
			newestFirst = true
		}
	}

	var result []*entity.SearchHistory
	for _, record := range r.records {
		if ownerFiltered && record.OwnerId != ownerID {
			continue
		}
		copied := *record
		result = append(result, &copied)
	}

	if newestFirst {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result, nil
}

func (r *fakeHistoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.records)), nil
}

type fakeUnitOfWork struct {
	users   *fakeUserRepo
	history *fakeHistoryRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func (u *fakeUnitOfWork) HistoryRepository() contract.HistoryRepository {
	return u.history
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		users:   newFakeUserRepo(),
		history: newFakeHistoryRepo(),
	}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeProvider returns a canned response or error without touching the
// network.
type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
