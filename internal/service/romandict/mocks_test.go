package romandict

import (
	"context"
	"sync"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	UpsertFunc       func(ctx context.Context, wordSD string, wordRoman string) (*domain.RomanWord, error)
	ListFunc         func(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error)
	ListUnsyncedFunc func(ctx context.Context) ([]domain.RomanWord, error)
	MarkSyncedFunc   func(ctx context.Context, ids []int64, at time.Time) (int, error)

	calls struct {
		Upsert []struct {
			Ctx       context.Context
			WordSD    string
			WordRoman string
		}
		List []struct {
			Ctx context.Context
			Lq  domain.ListQuery
		}
		ListUnsynced []struct {
			Ctx context.Context
		}
		MarkSynced []struct {
			Ctx context.Context
			IDs []int64
			At  time.Time
		}
	}
	lockUpsert       sync.RWMutex
	lockList         sync.RWMutex
	lockListUnsynced sync.RWMutex
	lockMarkSynced   sync.RWMutex
}

func (mock *wordRepoMock) Upsert(ctx context.Context, wordSD string, wordRoman string) (*domain.RomanWord, error) {
	if mock.UpsertFunc == nil {
		panic("wordRepoMock.UpsertFunc: method is nil but wordRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		WordSD    string
		WordRoman string
	}{Ctx: ctx, WordSD: wordSD, WordRoman: wordRoman}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, wordSD, wordRoman)
}

func (mock *wordRepoMock) UpsertCalls() []struct {
	Ctx       context.Context
	WordSD    string
	WordRoman string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *wordRepoMock) List(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lq  domain.ListQuery
	}{Ctx: ctx, Lq: lq}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, lq)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx context.Context
	Lq  domain.ListQuery
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListUnsynced(ctx context.Context) ([]domain.RomanWord, error) {
	if mock.ListUnsyncedFunc == nil {
		panic("wordRepoMock.ListUnsyncedFunc: method is nil but wordRepo.ListUnsynced was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUnsynced.Lock()
	mock.calls.ListUnsynced = append(mock.calls.ListUnsynced, callInfo)
	mock.lockListUnsynced.Unlock()
	return mock.ListUnsyncedFunc(ctx)
}

func (mock *wordRepoMock) ListUnsyncedCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUnsynced.RLock()
	calls := mock.calls.ListUnsynced
	mock.lockListUnsynced.RUnlock()
	return calls
}

func (mock *wordRepoMock) MarkSynced(ctx context.Context, ids []int64, at time.Time) (int, error) {
	if mock.MarkSyncedFunc == nil {
		panic("wordRepoMock.MarkSyncedFunc: method is nil but wordRepo.MarkSynced was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
		At  time.Time
	}{Ctx: ctx, IDs: ids, At: at}
	mock.lockMarkSynced.Lock()
	mock.calls.MarkSynced = append(mock.calls.MarkSynced, callInfo)
	mock.lockMarkSynced.Unlock()
	return mock.MarkSyncedFunc(ctx, ids, at)
}

func (mock *wordRepoMock) MarkSyncedCalls() []struct {
	Ctx context.Context
	IDs []int64
	At  time.Time
} {
	mock.lockMarkSynced.RLock()
	calls := mock.calls.MarkSynced
	mock.lockMarkSynced.RUnlock()
	return calls
}

var _ artifactStore = &artifactStoreMock{}

type artifactStoreMock struct {
	LoadFunc func(ctx context.Context) (map[string]string, error)
	SaveFunc func(ctx context.Context, lookup map[string]string) error

	calls struct {
		Load []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx    context.Context
			Lookup map[string]string
		}
	}
	lockLoad sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *artifactStoreMock) Load(ctx context.Context) (map[string]string, error) {
	if mock.LoadFunc == nil {
		panic("artifactStoreMock.LoadFunc: method is nil but artifactStore.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *artifactStoreMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *artifactStoreMock) Save(ctx context.Context, lookup map[string]string) error {
	if mock.SaveFunc == nil {
		panic("artifactStoreMock.SaveFunc: method is nil but artifactStore.Save was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Lookup map[string]string
	}{Ctx: ctx, Lookup: lookup}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, lookup)
}

func (mock *artifactStoreMock) SaveCalls() []struct {
	Ctx    context.Context
	Lookup map[string]string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
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
