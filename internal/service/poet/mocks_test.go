package poet

import (
	"context"
	"sync"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

var _ poetRepo = &poetRepoMock{}

type poetRepoMock struct {
	ListFunc      func(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Poet, error)
	CreateFunc    func(ctx context.Context, p *domain.Poet) (*domain.Poet, error)
	UpdateFunc    func(ctx context.Context, id int64, params domain.PoetUpdateParams) (*domain.Poet, error)
	DeleteFunc    func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.PoetFilter
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Poet
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.PoetUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList      sync.RWMutex
	lockGetBySlug sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *poetRepoMock) List(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error) {
	if mock.ListFunc == nil {
		panic("poetRepoMock.ListFunc: method is nil but poetRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PoetFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *poetRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.PoetFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *poetRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Poet, error) {
	if mock.GetBySlugFunc == nil {
		panic("poetRepoMock.GetBySlugFunc: method is nil but poetRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *poetRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *poetRepoMock) Create(ctx context.Context, p *domain.Poet) (*domain.Poet, error) {
	if mock.CreateFunc == nil {
		panic("poetRepoMock.CreateFunc: method is nil but poetRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Poet
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *poetRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Poet
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *poetRepoMock) Update(ctx context.Context, id int64, params domain.PoetUpdateParams) (*domain.Poet, error) {
	if mock.UpdateFunc == nil {
		panic("poetRepoMock.UpdateFunc: method is nil but poetRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Params domain.PoetUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *poetRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Params domain.PoetUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *poetRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("poetRepoMock.DeleteFunc: method is nil but poetRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *poetRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ listCache = &listCacheMock{}

type listCacheMock struct {
	GetFunc          func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc          func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefixFunc func(ctx context.Context, prefix string) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx   context.Context
			Key   string
			Value []byte
			Ttl   time.Duration
		}
		DeletePrefix []struct {
			Ctx    context.Context
			Prefix string
		}
	}
	lockGet          sync.RWMutex
	lockSet          sync.RWMutex
	lockDeletePrefix sync.RWMutex
}

func (mock *listCacheMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("listCacheMock.GetFunc: method is nil but listCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *listCacheMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *listCacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("listCacheMock.SetFunc: method is nil but listCache.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value []byte
		Ttl   time.Duration
	}{Ctx: ctx, Key: key, Value: value, Ttl: ttl}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value, ttl)
}

func (mock *listCacheMock) SetCalls() []struct {
	Ctx   context.Context
	Key   string
	Value []byte
	Ttl   time.Duration
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *listCacheMock) DeletePrefix(ctx context.Context, prefix string) error {
	if mock.DeletePrefixFunc == nil {
		panic("listCacheMock.DeletePrefixFunc: method is nil but listCache.DeletePrefix was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{Ctx: ctx, Prefix: prefix}
	mock.lockDeletePrefix.Lock()
	mock.calls.DeletePrefix = append(mock.calls.DeletePrefix, callInfo)
	mock.lockDeletePrefix.Unlock()
	return mock.DeletePrefixFunc(ctx, prefix)
}

func (mock *listCacheMock) DeletePrefixCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	mock.lockDeletePrefix.RLock()
	calls := mock.calls.DeletePrefix
	mock.lockDeletePrefix.RUnlock()
	return calls
}
