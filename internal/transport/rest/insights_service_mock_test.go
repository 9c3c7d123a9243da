package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/focuslog-backend/internal/service/insights"
)

var _ insightsService = &insightsServiceMock{}

type insightsServiceMock struct {
	WeeklyFunc func(ctx context.Context, input insights.WeeklyInput) (*insights.WeeklyReport, error)

	calls struct {
		Weekly []struct {
			Ctx   context.Context
			Input insights.WeeklyInput
		}
	}
	lockWeekly sync.RWMutex
}

func (mock *insightsServiceMock) Weekly(ctx context.Context, input insights.WeeklyInput) (*insights.WeeklyReport, error) {
	if mock.WeeklyFunc == nil {
		panic("insightsServiceMock.WeeklyFunc: method is nil but insightsService.Weekly was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input insights.WeeklyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockWeekly.Lock()
	mock.calls.Weekly = append(mock.calls.Weekly, callInfo)
	mock.lockWeekly.Unlock()
	return mock.WeeklyFunc(ctx, input)
}

func (mock *insightsServiceMock) WeeklyCalls() []struct {
	Ctx   context.Context
	Input insights.WeeklyInput
} {
	mock.lockWeekly.RLock()
	calls := mock.calls.Weekly
	mock.lockWeekly.RUnlock()
	return calls
}
