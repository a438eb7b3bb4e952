package text

import (
	"context"
	"sync"

	"github.com/sindhipoetry/backend/internal/domain"
)

var _ corrector = &correctorMock{}

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
		panic("correctorMock.CorrectFunc: method is nil but corrector.Correct was just called")
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

var _ romanizer = &romanizerMock{}

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
		panic("romanizerMock.RomanizeFunc: method is nil but romanizer.Romanize was just called")
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

var _ translator = &translatorMock{}

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
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
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
