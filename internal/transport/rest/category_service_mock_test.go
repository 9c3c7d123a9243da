package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/category"
)

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	ListFunc    func(ctx context.Context, includeArchived bool) ([]*domain.Category, error)
	CreateFunc  func(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	UpdateFunc  func(ctx context.Context, input category.UpdateInput) (*domain.Category, error)
	DeleteFunc  func(ctx context.Context, categoryID uuid.UUID) error
	ArchiveFunc func(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)
	RestoreFunc func(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)

	calls struct {
		List []struct {
			Ctx             context.Context
			IncludeArchived bool
		}
		Create []struct {
			Ctx   context.Context
			Input category.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input category.UpdateInput
		}
		Delete []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
		}
		Archive []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
		}
		Restore []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
		}
	}
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockArchive sync.RWMutex
	lockRestore sync.RWMutex
}

func (mock *categoryServiceMock) List(ctx context.Context, includeArchived bool) ([]*domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryServiceMock.ListFunc: method is nil but categoryService.List was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		IncludeArchived bool
	}{
		Ctx:             ctx,
		IncludeArchived: includeArchived,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, includeArchived)
}

func (mock *categoryServiceMock) ListCalls() []struct {
	Ctx             context.Context
	IncludeArchived bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Create(ctx context.Context, input category.CreateInput) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryServiceMock.CreateFunc: method is nil but categoryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input category.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Update(ctx context.Context, input category.UpdateInput) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryServiceMock.UpdateFunc: method is nil but categoryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *categoryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input category.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Delete(ctx context.Context, categoryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("categoryServiceMock.DeleteFunc: method is nil but categoryService.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, categoryID)
}

func (mock *categoryServiceMock) DeleteCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Archive(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	if mock.ArchiveFunc == nil {
		panic("categoryServiceMock.ArchiveFunc: method is nil but categoryService.Archive was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, categoryID)
}

func (mock *categoryServiceMock) ArchiveCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Restore(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	if mock.RestoreFunc == nil {
		panic("categoryServiceMock.RestoreFunc: method is nil but categoryService.Restore was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, categoryID)
}

func (mock *categoryServiceMock) RestoreCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}
