package note

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) (*domain.Note, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]*domain.Note, error)
	CreateFunc  func(ctx context.Context, n *domain.Note) (*domain.Note, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, noteID uuid.UUID, params domain.NoteUpdateParams, now time.Time) (*domain.Note, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			NoteID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.NoteFilter
		}
		Create []struct {
			Ctx context.Context
			N   *domain.Note
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			NoteID uuid.UUID
			Params domain.NoteUpdateParams
			Now    time.Time
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			NoteID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *noteRepoMock) GetByID(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetByIDFunc == nil {
		panic("noteRepoMock.GetByIDFunc: method is nil but noteRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		NoteID: noteID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, noteID)
}

func (mock *noteRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *noteRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]*domain.Note, error) {
	if mock.ListFunc == nil {
		panic("noteRepoMock.ListFunc: method is nil but noteRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.NoteFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *noteRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.NoteFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *noteRepoMock) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Note
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *noteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Note
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Update(ctx context.Context, userID uuid.UUID, noteID uuid.UUID, params domain.NoteUpdateParams, now time.Time) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteRepoMock.UpdateFunc: method is nil but noteRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		NoteID uuid.UUID
		Params domain.NoteUpdateParams
		Now    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		NoteID: noteID,
		Params: params,
		Now:    now,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, noteID, params, now)
}

func (mock *noteRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	NoteID uuid.UUID
	Params domain.NoteUpdateParams
	Now    time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Delete(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		NoteID: noteID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, noteID)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
