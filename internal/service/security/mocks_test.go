package security

import (
	"context"
	"sync"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	InsertFunc      func(ctx context.Context, e *domain.SecurityEvent) error
	ListFunc        func(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error)
	CountByTypeFunc func(ctx context.Context, since time.Time) (map[domain.SecurityEventType]int, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			E   *domain.SecurityEvent
		}
		List []struct {
			Ctx context.Context
			F   domain.SecurityEventFilter
		}
		CountByType []struct {
			Ctx   context.Context
			Since time.Time
		}
	}
	lockInsert      sync.RWMutex
	lockList        sync.RWMutex
	lockCountByType sync.RWMutex
}

func (mock *eventRepoMock) Insert(ctx context.Context, e *domain.SecurityEvent) error {
	if mock.InsertFunc == nil {
		panic("eventRepoMock.InsertFunc: method is nil but eventRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.SecurityEvent
	}{Ctx: ctx, E: e}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *eventRepoMock) InsertCalls() []struct {
	Ctx context.Context
	E   *domain.SecurityEvent
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SecurityEventFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.SecurityEventFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *eventRepoMock) CountByType(ctx context.Context, since time.Time) (map[domain.SecurityEventType]int, error) {
	if mock.CountByTypeFunc == nil {
		panic("eventRepoMock.CountByTypeFunc: method is nil but eventRepo.CountByType was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{Ctx: ctx, Since: since}
	mock.lockCountByType.Lock()
	mock.calls.CountByType = append(mock.calls.CountByType, callInfo)
	mock.lockCountByType.Unlock()
	return mock.CountByTypeFunc(ctx, since)
}

func (mock *eventRepoMock) CountByTypeCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	mock.lockCountByType.RLock()
	calls := mock.calls.CountByType
	mock.lockCountByType.RUnlock()
	return calls
}
