package category

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ sessionCounter = &sessionCounterMock{}

type sessionCounterMock struct {
	CountByCategoryFunc func(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (int, error)

	calls struct {
		CountByCategory []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
		}
	}
	lockCountByCategory sync.RWMutex
}

func (mock *sessionCounterMock) CountByCategory(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("sessionCounterMock.CountByCategoryFunc: method is nil but sessionCounter.CountByCategory was just called")
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
	mock.lockCountByCategory.Lock()
	mock.calls.CountByCategory = append(mock.calls.CountByCategory, callInfo)
	mock.lockCountByCategory.Unlock()
	return mock.CountByCategoryFunc(ctx, userID, categoryID)
}

func (mock *sessionCounterMock) CountByCategoryCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
} {
	mock.lockCountByCategory.RLock()
	calls := mock.calls.CountByCategory
	mock.lockCountByCategory.RUnlock()
	return calls
}
