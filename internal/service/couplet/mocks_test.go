package couplet

import (
	"context"
	"sync"

	"github.com/sindhipoetry/backend/internal/domain"
)

var _ coupletRepo = &coupletRepoMock{}

type coupletRepoMock struct {
	ListFunc        func(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error)
	GetBySlugFunc   func(ctx context.Context, slug string) ([]domain.Couplet, error)
	CreateBatchFunc func(ctx context.Context, couplets []domain.Couplet) ([]domain.Couplet, error)
	UpdateFunc      func(ctx context.Context, id int64, params domain.CoupletUpdateParams) (*domain.Couplet, error)
	DeleteFunc      func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.CoupletFilter
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		CreateBatch []struct {
			Ctx      context.Context
			Couplets []domain.Couplet
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.CoupletUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList        sync.RWMutex
	lockGetBySlug   sync.RWMutex
	lockCreateBatch sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *coupletRepoMock) List(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error) {
	if mock.ListFunc == nil {
		panic("coupletRepoMock.ListFunc: method is nil but coupletRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CoupletFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *coupletRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.CoupletFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *coupletRepoMock) GetBySlug(ctx context.Context, slug string) ([]domain.Couplet, error) {
	if mock.GetBySlugFunc == nil {
		panic("coupletRepoMock.GetBySlugFunc: method is nil but coupletRepo.GetBySlug was just called")
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

func (mock *coupletRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *coupletRepoMock) CreateBatch(ctx context.Context, couplets []domain.Couplet) ([]domain.Couplet, error) {
	if mock.CreateBatchFunc == nil {
		panic("coupletRepoMock.CreateBatchFunc: method is nil but coupletRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Couplets []domain.Couplet
	}{Ctx: ctx, Couplets: couplets}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, couplets)
}

func (mock *coupletRepoMock) CreateBatchCalls() []struct {
	Ctx      context.Context
	Couplets []domain.Couplet
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *coupletRepoMock) Update(ctx context.Context, id int64, params domain.CoupletUpdateParams) (*domain.Couplet, error) {
	if mock.UpdateFunc == nil {
		panic("coupletRepoMock.UpdateFunc: method is nil but coupletRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Params domain.CoupletUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *coupletRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Params domain.CoupletUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *coupletRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("coupletRepoMock.DeleteFunc: method is nil but coupletRepo.Delete was just called")
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

func (mock *coupletRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ poetRepo = &poetRepoMock{}

type poetRepoMock struct {
	ExistsFunc func(ctx context.Context, id int64) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockExists sync.RWMutex
}

func (mock *poetRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("poetRepoMock.ExistsFunc: method is nil but poetRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *poetRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ poetCache = &poetCacheMock{}

type poetCacheMock struct {
	InvalidateCacheFunc func(ctx context.Context)

	calls struct {
		InvalidateCache []struct {
			Ctx context.Context
		}
	}
	lockInvalidateCache sync.RWMutex
}

func (mock *poetCacheMock) InvalidateCache(ctx context.Context) {
	if mock.InvalidateCacheFunc == nil {
		panic("poetCacheMock.InvalidateCacheFunc: method is nil but poetCache.InvalidateCache was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockInvalidateCache.Lock()
	mock.calls.InvalidateCache = append(mock.calls.InvalidateCache, callInfo)
	mock.lockInvalidateCache.Unlock()
	mock.InvalidateCacheFunc(ctx)
}

func (mock *poetCacheMock) InvalidateCacheCalls() []struct {
	Ctx context.Context
} {
	mock.lockInvalidateCache.RLock()
	calls := mock.calls.InvalidateCache
	mock.lockInvalidateCache.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
