package timer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (*domain.Category, error)

	calls struct {
		GetByID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		CategoryID: categoryID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, categoryID)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
