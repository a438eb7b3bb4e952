package workflow

import (
	"context"
	"sync"

	"github.com/sindhipoetry/backend/internal/domain"
)

var _ Corrector = &correctorMock{}

type correctorMock struct {
	CorrectFunc func(ctx context.Context, text string) (domain.HesudharResult, error)

	calls struct {
		Correct []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockCorrect sync.RWMutex
}

func (mock *correctorMock) Correct(ctx context.Context, text string) (domain.HesudharResult, error) {
	if mock.CorrectFunc == nil {
		panic("correctorMock.CorrectFunc: method is nil but Corrector.Correct was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockCorrect.Lock()
	mock.calls.Correct = append(mock.calls.Correct, callInfo)
	mock.lockCorrect.Unlock()
	return mock.CorrectFunc(ctx, text)
}

func (mock *correctorMock) CorrectCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockCorrect.RLock()
	calls := mock.calls.Correct
	mock.lockCorrect.RUnlock()
	return calls
}

var _ Romanizer = &romanizerMock{}

type romanizerMock struct {
	RomanizeFunc func(ctx context.Context, text string) (domain.RomanizeResult, error)

	calls struct {
		Romanize []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockRomanize sync.RWMutex
}

func (mock *romanizerMock) Romanize(ctx context.Context, text string) (domain.RomanizeResult, error) {
	if mock.RomanizeFunc == nil {
		panic("romanizerMock.RomanizeFunc: method is nil but Romanizer.Romanize was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockRomanize.Lock()
	mock.calls.Romanize = append(mock.calls.Romanize, callInfo)
	mock.lockRomanize.Unlock()
	return mock.RomanizeFunc(ctx, text)
}

func (mock *romanizerMock) RomanizeCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockRomanize.RLock()
	calls := mock.calls.Romanize
	mock.lockRomanize.RUnlock()
	return calls
}

var _ Translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text string, from domain.Lang, to domain.Lang) (string, error)

	calls struct {
		Translate []struct {
			Ctx  context.Context
			Text string
			From domain.Lang
			To   domain.Lang
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, text string, from domain.Lang, to domain.Lang) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but Translator.Translate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
		From domain.Lang
		To   domain.Lang
	}{Ctx: ctx, Text: text, From: from, To: to}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, text, from, to)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Ctx  context.Context
	Text string
	From domain.Lang
	To   domain.Lang
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}

var _ Dictionary = &dictionaryMock{}

type dictionaryMock struct {
	AddWordFunc func(ctx context.Context, wordSD string, wordRoman string) error
	SyncFunc    func(ctx context.Context) (int, error)

	calls struct {
		AddWord []struct {
			Ctx       context.Context
			WordSD    string
			WordRoman string
		}
		Sync []struct {
			Ctx context.Context
		}
	}
	lockAddWord sync.RWMutex
	lockSync    sync.RWMutex
}

func (mock *dictionaryMock) AddWord(ctx context.Context, wordSD string, wordRoman string) error {
	if mock.AddWordFunc == nil {
		panic("dictionaryMock.AddWordFunc: method is nil but Dictionary.AddWord was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		WordSD    string
		WordRoman string
	}{Ctx: ctx, WordSD: wordSD, WordRoman: wordRoman}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, callInfo)
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, wordSD, wordRoman)
}

func (mock *dictionaryMock) AddWordCalls() []struct {
	Ctx       context.Context
	WordSD    string
	WordRoman string
} {
	mock.lockAddWord.RLock()
	calls := mock.calls.AddWord
	mock.lockAddWord.RUnlock()
	return calls
}

func (mock *dictionaryMock) Sync(ctx context.Context) (int, error) {
	if mock.SyncFunc == nil {
		panic("dictionaryMock.SyncFunc: method is nil but Dictionary.Sync was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSync.Lock()
	mock.calls.Sync = append(mock.calls.Sync, callInfo)
	mock.lockSync.Unlock()
	return mock.SyncFunc(ctx)
}

func (mock *dictionaryMock) SyncCalls() []struct {
	Ctx context.Context
} {
	mock.lockSync.RLock()
	calls := mock.calls.Sync
	mock.lockSync.RUnlock()
	return calls
}

var _ CoupletStore = &coupletStoreMock{}

type coupletStoreMock struct {
	CreateCoupletsFunc func(ctx context.Context, records []domain.Couplet) ([]domain.Couplet, error)
	DeleteCoupletFunc  func(ctx context.Context, id int64) error

	calls struct {
		CreateCouplets []struct {
			Ctx     context.Context
			Records []domain.Couplet
		}
		DeleteCouplet []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreateCouplets sync.RWMutex
	lockDeleteCouplet  sync.RWMutex
}

func (mock *coupletStoreMock) CreateCouplets(ctx context.Context, records []domain.Couplet) ([]domain.Couplet, error) {
	if mock.CreateCoupletsFunc == nil {
		panic("coupletStoreMock.CreateCoupletsFunc: method is nil but CoupletStore.CreateCouplets was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Records []domain.Couplet
	}{Ctx: ctx, Records: records}
	mock.lockCreateCouplets.Lock()
	mock.calls.CreateCouplets = append(mock.calls.CreateCouplets, callInfo)
	mock.lockCreateCouplets.Unlock()
	return mock.CreateCoupletsFunc(ctx, records)
}

func (mock *coupletStoreMock) CreateCoupletsCalls() []struct {
	Ctx     context.Context
	Records []domain.Couplet
} {
	mock.lockCreateCouplets.RLock()
	calls := mock.calls.CreateCouplets
	mock.lockCreateCouplets.RUnlock()
	return calls
}

func (mock *coupletStoreMock) DeleteCouplet(ctx context.Context, id int64) error {
	if mock.DeleteCoupletFunc == nil {
		panic("coupletStoreMock.DeleteCoupletFunc: method is nil but CoupletStore.DeleteCouplet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCouplet.Lock()
	mock.calls.DeleteCouplet = append(mock.calls.DeleteCouplet, callInfo)
	mock.lockDeleteCouplet.Unlock()
	return mock.DeleteCoupletFunc(ctx, id)
}

func (mock *coupletStoreMock) DeleteCoupletCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteCouplet.RLock()
	calls := mock.calls.DeleteCouplet
	mock.lockDeleteCouplet.RUnlock()
	return calls
}

var _ Catalogue = &catalogueMock{}

type catalogueMock struct {
	ListPoetsFunc func(ctx context.Context) ([]domain.Poet, error)
	ListTagsFunc  func(ctx context.Context) ([]domain.Tag, error)

	calls struct {
		ListPoets []struct {
			Ctx context.Context
		}
		ListTags []struct {
			Ctx context.Context
		}
	}
	lockListPoets sync.RWMutex
	lockListTags  sync.RWMutex
}

func (mock *catalogueMock) ListPoets(ctx context.Context) ([]domain.Poet, error) {
	if mock.ListPoetsFunc == nil {
		panic("catalogueMock.ListPoetsFunc: method is nil but Catalogue.ListPoets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPoets.Lock()
	mock.calls.ListPoets = append(mock.calls.ListPoets, callInfo)
	mock.lockListPoets.Unlock()
	return mock.ListPoetsFunc(ctx)
}

func (mock *catalogueMock) ListPoetsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPoets.RLock()
	calls := mock.calls.ListPoets
	mock.lockListPoets.RUnlock()
	return calls
}

func (mock *catalogueMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListTagsFunc == nil {
		panic("catalogueMock.ListTagsFunc: method is nil but Catalogue.ListTags was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx)
}

func (mock *catalogueMock) ListTagsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTags.RLock()
	calls := mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}
