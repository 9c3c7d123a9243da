package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/settings"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	GetFunc       func(ctx context.Context) (*domain.UserSettings, error)
	UpdateFunc    func(ctx context.Context, input settings.UpdateInput) (*domain.UserSettings, error)
	BootstrapFunc func(ctx context.Context) (*settings.BootstrapResult, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input settings.UpdateInput
		}
		Bootstrap []struct {
			Ctx context.Context
		}
	}
	lockGet       sync.RWMutex
	lockUpdate    sync.RWMutex
	lockBootstrap sync.RWMutex
}

func (mock *settingsServiceMock) Get(ctx context.Context) (*domain.UserSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsServiceMock.GetFunc: method is nil but settingsService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsServiceMock) Update(ctx context.Context, input settings.UpdateInput) (*domain.UserSettings, error) {
	if mock.UpdateFunc == nil {
		panic("settingsServiceMock.UpdateFunc: method is nil but settingsService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *settingsServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input settings.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *settingsServiceMock) Bootstrap(ctx context.Context) (*settings.BootstrapResult, error) {
	if mock.BootstrapFunc == nil {
		panic("settingsServiceMock.BootstrapFunc: method is nil but settingsService.Bootstrap was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockBootstrap.Lock()
	mock.calls.Bootstrap = append(mock.calls.Bootstrap, callInfo)
	mock.lockBootstrap.Unlock()
	return mock.BootstrapFunc(ctx)
}

func (mock *settingsServiceMock) BootstrapCalls() []struct {
	Ctx context.Context
} {
	mock.lockBootstrap.RLock()
	calls := mock.calls.Bootstrap
	mock.lockBootstrap.RUnlock()
	return calls
}
