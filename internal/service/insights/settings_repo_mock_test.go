package insights

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
