package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/note"
)

var _ noteService = &noteServiceMock{}

type noteServiceMock struct {
	GetFunc    func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ListFunc   func(ctx context.Context, input note.ListInput) ([]*domain.Note, error)
	CreateFunc func(ctx context.Context, input note.CreateInput) (*domain.Note, error)
	UpdateFunc func(ctx context.Context, input note.UpdateInput) (*domain.Note, error)
	DeleteFunc func(ctx context.Context, noteID uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input note.ListInput
		}
		Create []struct {
			Ctx   context.Context
			Input note.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input note.UpdateInput
		}
		Delete []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
	}
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *noteServiceMock) Get(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetFunc == nil {
		panic("noteServiceMock.GetFunc: method is nil but noteService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		NoteID: noteID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, noteID)
}

func (mock *noteServiceMock) GetCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *noteServiceMock) List(ctx context.Context, input note.ListInput) ([]*domain.Note, error) {
	if mock.ListFunc == nil {
		panic("noteServiceMock.ListFunc: method is nil but noteService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *noteServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input note.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *noteServiceMock) Create(ctx context.Context, input note.CreateInput) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteServiceMock.CreateFunc: method is nil but noteService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *noteServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input note.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteServiceMock) Update(ctx context.Context, input note.UpdateInput) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteServiceMock.UpdateFunc: method is nil but noteService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *noteServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input note.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *noteServiceMock) Delete(ctx context.Context, noteID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteServiceMock.DeleteFunc: method is nil but noteService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		NoteID: noteID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, noteID)
}

func (mock *noteServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
