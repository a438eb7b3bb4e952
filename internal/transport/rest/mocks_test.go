package rest

import (
	"context"
	"sync"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/service/couplet"
	"github.com/sindhipoetry/backend/internal/service/poet"
	"github.com/sindhipoetry/backend/internal/service/romandict"
	"github.com/sindhipoetry/backend/internal/service/tag"
	"github.com/sindhipoetry/backend/internal/service/text"
	"github.com/sindhipoetry/backend/internal/service/timeline"
)

var _ poetService = &poetServiceMock{}

type poetServiceMock struct {
	ListPoetsFunc  func(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error)
	GetPoetFunc    func(ctx context.Context, slug string) (*domain.Poet, error)
	CreatePoetFunc func(ctx context.Context, input poet.CreatePoetInput) (*domain.Poet, error)
	UpdatePoetFunc func(ctx context.Context, input poet.UpdatePoetInput) (*domain.Poet, error)
	DeletePoetFunc func(ctx context.Context, id int64) error

	calls struct {
		ListPoets []struct {
			Ctx context.Context
			F   domain.PoetFilter
		}
		GetPoet []struct {
			Ctx  context.Context
			Slug string
		}
		CreatePoet []struct {
			Ctx   context.Context
			Input poet.CreatePoetInput
		}
		UpdatePoet []struct {
			Ctx   context.Context
			Input poet.UpdatePoetInput
		}
		DeletePoet []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListPoets  sync.RWMutex
	lockGetPoet    sync.RWMutex
	lockCreatePoet sync.RWMutex
	lockUpdatePoet sync.RWMutex
	lockDeletePoet sync.RWMutex
}

func (mock *poetServiceMock) ListPoets(ctx context.Context, f domain.PoetFilter) (domain.Page[domain.Poet], error) {
	if mock.ListPoetsFunc == nil {
		panic("poetServiceMock.ListPoetsFunc: method is nil but poetService.ListPoets was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PoetFilter
	}{Ctx: ctx, F: f}
	mock.lockListPoets.Lock()
	mock.calls.ListPoets = append(mock.calls.ListPoets, callInfo)
	mock.lockListPoets.Unlock()
	return mock.ListPoetsFunc(ctx, f)
}

func (mock *poetServiceMock) ListPoetsCalls() []struct {
	Ctx context.Context
	F   domain.PoetFilter
} {
	mock.lockListPoets.RLock()
	calls := mock.calls.ListPoets
	mock.lockListPoets.RUnlock()
	return calls
}

func (mock *poetServiceMock) GetPoet(ctx context.Context, slug string) (*domain.Poet, error) {
	if mock.GetPoetFunc == nil {
		panic("poetServiceMock.GetPoetFunc: method is nil but poetService.GetPoet was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetPoet.Lock()
	mock.calls.GetPoet = append(mock.calls.GetPoet, callInfo)
	mock.lockGetPoet.Unlock()
	return mock.GetPoetFunc(ctx, slug)
}

func (mock *poetServiceMock) GetPoetCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetPoet.RLock()
	calls := mock.calls.GetPoet
	mock.lockGetPoet.RUnlock()
	return calls
}

func (mock *poetServiceMock) CreatePoet(ctx context.Context, input poet.CreatePoetInput) (*domain.Poet, error) {
	if mock.CreatePoetFunc == nil {
		panic("poetServiceMock.CreatePoetFunc: method is nil but poetService.CreatePoet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input poet.CreatePoetInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePoet.Lock()
	mock.calls.CreatePoet = append(mock.calls.CreatePoet, callInfo)
	mock.lockCreatePoet.Unlock()
	return mock.CreatePoetFunc(ctx, input)
}

func (mock *poetServiceMock) CreatePoetCalls() []struct {
	Ctx   context.Context
	Input poet.CreatePoetInput
} {
	mock.lockCreatePoet.RLock()
	calls := mock.calls.CreatePoet
	mock.lockCreatePoet.RUnlock()
	return calls
}

func (mock *poetServiceMock) UpdatePoet(ctx context.Context, input poet.UpdatePoetInput) (*domain.Poet, error) {
	if mock.UpdatePoetFunc == nil {
		panic("poetServiceMock.UpdatePoetFunc: method is nil but poetService.UpdatePoet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input poet.UpdatePoetInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePoet.Lock()
	mock.calls.UpdatePoet = append(mock.calls.UpdatePoet, callInfo)
	mock.lockUpdatePoet.Unlock()
	return mock.UpdatePoetFunc(ctx, input)
}

func (mock *poetServiceMock) UpdatePoetCalls() []struct {
	Ctx   context.Context
	Input poet.UpdatePoetInput
} {
	mock.lockUpdatePoet.RLock()
	calls := mock.calls.UpdatePoet
	mock.lockUpdatePoet.RUnlock()
	return calls
}

func (mock *poetServiceMock) DeletePoet(ctx context.Context, id int64) error {
	if mock.DeletePoetFunc == nil {
		panic("poetServiceMock.DeletePoetFunc: method is nil but poetService.DeletePoet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeletePoet.Lock()
	mock.calls.DeletePoet = append(mock.calls.DeletePoet, callInfo)
	mock.lockDeletePoet.Unlock()
	return mock.DeletePoetFunc(ctx, id)
}

func (mock *poetServiceMock) DeletePoetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeletePoet.RLock()
	calls := mock.calls.DeletePoet
	mock.lockDeletePoet.RUnlock()
	return calls
}

var _ coupletService = &coupletServiceMock{}

type coupletServiceMock struct {
	ListCoupletsFunc   func(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error)
	GetCoupletFunc     func(ctx context.Context, slug string) ([]domain.Couplet, error)
	CreateCoupletsFunc func(ctx context.Context, input couplet.CreateCoupletsInput) ([]domain.Couplet, error)
	UpdateCoupletFunc  func(ctx context.Context, input couplet.UpdateCoupletInput) (*domain.Couplet, error)
	DeleteCoupletFunc  func(ctx context.Context, id int64) error

	calls struct {
		ListCouplets []struct {
			Ctx context.Context
			F   domain.CoupletFilter
		}
		GetCouplet []struct {
			Ctx  context.Context
			Slug string
		}
		CreateCouplets []struct {
			Ctx   context.Context
			Input couplet.CreateCoupletsInput
		}
		UpdateCouplet []struct {
			Ctx   context.Context
			Input couplet.UpdateCoupletInput
		}
		DeleteCouplet []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListCouplets   sync.RWMutex
	lockGetCouplet     sync.RWMutex
	lockCreateCouplets sync.RWMutex
	lockUpdateCouplet  sync.RWMutex
	lockDeleteCouplet  sync.RWMutex
}

func (mock *coupletServiceMock) ListCouplets(ctx context.Context, f domain.CoupletFilter) (domain.Page[domain.Couplet], error) {
	if mock.ListCoupletsFunc == nil {
		panic("coupletServiceMock.ListCoupletsFunc: method is nil but coupletService.ListCouplets was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CoupletFilter
	}{Ctx: ctx, F: f}
	mock.lockListCouplets.Lock()
	mock.calls.ListCouplets = append(mock.calls.ListCouplets, callInfo)
	mock.lockListCouplets.Unlock()
	return mock.ListCoupletsFunc(ctx, f)
}

func (mock *coupletServiceMock) ListCoupletsCalls() []struct {
	Ctx context.Context
	F   domain.CoupletFilter
} {
	mock.lockListCouplets.RLock()
	calls := mock.calls.ListCouplets
	mock.lockListCouplets.RUnlock()
	return calls
}

func (mock *coupletServiceMock) GetCouplet(ctx context.Context, slug string) ([]domain.Couplet, error) {
	if mock.GetCoupletFunc == nil {
		panic("coupletServiceMock.GetCoupletFunc: method is nil but coupletService.GetCouplet was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetCouplet.Lock()
	mock.calls.GetCouplet = append(mock.calls.GetCouplet, callInfo)
	mock.lockGetCouplet.Unlock()
	return mock.GetCoupletFunc(ctx, slug)
}

func (mock *coupletServiceMock) GetCoupletCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetCouplet.RLock()
	calls := mock.calls.GetCouplet
	mock.lockGetCouplet.RUnlock()
	return calls
}

func (mock *coupletServiceMock) CreateCouplets(ctx context.Context, input couplet.CreateCoupletsInput) ([]domain.Couplet, error) {
	if mock.CreateCoupletsFunc == nil {
		panic("coupletServiceMock.CreateCoupletsFunc: method is nil but coupletService.CreateCouplets was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input couplet.CreateCoupletsInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCouplets.Lock()
	mock.calls.CreateCouplets = append(mock.calls.CreateCouplets, callInfo)
	mock.lockCreateCouplets.Unlock()
	return mock.CreateCoupletsFunc(ctx, input)
}

func (mock *coupletServiceMock) CreateCoupletsCalls() []struct {
	Ctx   context.Context
	Input couplet.CreateCoupletsInput
} {
	mock.lockCreateCouplets.RLock()
	calls := mock.calls.CreateCouplets
	mock.lockCreateCouplets.RUnlock()
	return calls
}

func (mock *coupletServiceMock) UpdateCouplet(ctx context.Context, input couplet.UpdateCoupletInput) (*domain.Couplet, error) {
	if mock.UpdateCoupletFunc == nil {
		panic("coupletServiceMock.UpdateCoupletFunc: method is nil but coupletService.UpdateCouplet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input couplet.UpdateCoupletInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCouplet.Lock()
	mock.calls.UpdateCouplet = append(mock.calls.UpdateCouplet, callInfo)
	mock.lockUpdateCouplet.Unlock()
	return mock.UpdateCoupletFunc(ctx, input)
}

func (mock *coupletServiceMock) UpdateCoupletCalls() []struct {
	Ctx   context.Context
	Input couplet.UpdateCoupletInput
} {
	mock.lockUpdateCouplet.RLock()
	calls := mock.calls.UpdateCouplet
	mock.lockUpdateCouplet.RUnlock()
	return calls
}

func (mock *coupletServiceMock) DeleteCouplet(ctx context.Context, id int64) error {
	if mock.DeleteCoupletFunc == nil {
		panic("coupletServiceMock.DeleteCoupletFunc: method is nil but coupletService.DeleteCouplet was just called")
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

func (mock *coupletServiceMock) DeleteCoupletCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteCouplet.RLock()
	calls := mock.calls.DeleteCouplet
	mock.lockDeleteCouplet.RUnlock()
	return calls
}

var _ tagService = &tagServiceMock{}

type tagServiceMock struct {
	ListTagsFunc  func(ctx context.Context, f domain.TagFilter) (domain.Page[domain.Tag], error)
	GetTagFunc    func(ctx context.Context, slug string) (*domain.Tag, error)
	CreateTagFunc func(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	UpdateTagFunc func(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)
	DeleteTagFunc func(ctx context.Context, id int64) error

	calls struct {
		ListTags []struct {
			Ctx context.Context
			F   domain.TagFilter
		}
		GetTag []struct {
			Ctx  context.Context
			Slug string
		}
		CreateTag []struct {
			Ctx   context.Context
			Input tag.CreateTagInput
		}
		UpdateTag []struct {
			Ctx   context.Context
			Input tag.UpdateTagInput
		}
		DeleteTag []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListTags  sync.RWMutex
	lockGetTag    sync.RWMutex
	lockCreateTag sync.RWMutex
	lockUpdateTag sync.RWMutex
	lockDeleteTag sync.RWMutex
}

func (mock *tagServiceMock) ListTags(ctx context.Context, f domain.TagFilter) (domain.Page[domain.Tag], error) {
	if mock.ListTagsFunc == nil {
		panic("tagServiceMock.ListTagsFunc: method is nil but tagService.ListTags was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TagFilter
	}{Ctx: ctx, F: f}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx, f)
}

func (mock *tagServiceMock) ListTagsCalls() []struct {
	Ctx context.Context
	F   domain.TagFilter
} {
	mock.lockListTags.RLock()
	calls := mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}

func (mock *tagServiceMock) GetTag(ctx context.Context, slug string) (*domain.Tag, error) {
	if mock.GetTagFunc == nil {
		panic("tagServiceMock.GetTagFunc: method is nil but tagService.GetTag was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetTag.Lock()
	mock.calls.GetTag = append(mock.calls.GetTag, callInfo)
	mock.lockGetTag.Unlock()
	return mock.GetTagFunc(ctx, slug)
}

func (mock *tagServiceMock) GetTagCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetTag.RLock()
	calls := mock.calls.GetTag
	mock.lockGetTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error) {
	if mock.CreateTagFunc == nil {
		panic("tagServiceMock.CreateTagFunc: method is nil but tagService.CreateTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.CreateTagInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTag.Lock()
	mock.calls.CreateTag = append(mock.calls.CreateTag, callInfo)
	mock.lockCreateTag.Unlock()
	return mock.CreateTagFunc(ctx, input)
}

func (mock *tagServiceMock) CreateTagCalls() []struct {
	Ctx   context.Context
	Input tag.CreateTagInput
} {
	mock.lockCreateTag.RLock()
	calls := mock.calls.CreateTag
	mock.lockCreateTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) UpdateTag(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error) {
	if mock.UpdateTagFunc == nil {
		panic("tagServiceMock.UpdateTagFunc: method is nil but tagService.UpdateTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.UpdateTagInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTag.Lock()
	mock.calls.UpdateTag = append(mock.calls.UpdateTag, callInfo)
	mock.lockUpdateTag.Unlock()
	return mock.UpdateTagFunc(ctx, input)
}

func (mock *tagServiceMock) UpdateTagCalls() []struct {
	Ctx   context.Context
	Input tag.UpdateTagInput
} {
	mock.lockUpdateTag.RLock()
	calls := mock.calls.UpdateTag
	mock.lockUpdateTag.RUnlock()
	return calls
}

func (mock *tagServiceMock) DeleteTag(ctx context.Context, id int64) error {
	if mock.DeleteTagFunc == nil {
		panic("tagServiceMock.DeleteTagFunc: method is nil but tagService.DeleteTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTag.Lock()
	mock.calls.DeleteTag = append(mock.calls.DeleteTag, callInfo)
	mock.lockDeleteTag.Unlock()
	return mock.DeleteTagFunc(ctx, id)
}

func (mock *tagServiceMock) DeleteTagCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteTag.RLock()
	calls := mock.calls.DeleteTag
	mock.lockDeleteTag.RUnlock()
	return calls
}

var _ timelineService = &timelineServiceMock{}

type timelineServiceMock struct {
	ListPeriodsFunc  func(ctx context.Context, withEvents bool) ([]domain.TimelinePeriod, error)
	GetPeriodFunc    func(ctx context.Context, slug string) (*domain.TimelinePeriod, error)
	CreatePeriodFunc func(ctx context.Context, input timeline.CreatePeriodInput) (*domain.TimelinePeriod, error)
	UpdatePeriodFunc func(ctx context.Context, input timeline.UpdatePeriodInput) (*domain.TimelinePeriod, error)
	DeletePeriodFunc func(ctx context.Context, id int64) error
	ListEventsFunc   func(ctx context.Context, input timeline.ListEventsInput) ([]domain.TimelineEvent, error)
	CreateEventFunc  func(ctx context.Context, input timeline.CreateEventInput) (*domain.TimelineEvent, error)
	UpdateEventFunc  func(ctx context.Context, input timeline.UpdateEventInput) (*domain.TimelineEvent, error)
	DeleteEventFunc  func(ctx context.Context, id int64) error

	calls struct {
		ListPeriods []struct {
			Ctx        context.Context
			WithEvents bool
		}
		GetPeriod []struct {
			Ctx  context.Context
			Slug string
		}
		CreatePeriod []struct {
			Ctx   context.Context
			Input timeline.CreatePeriodInput
		}
		UpdatePeriod []struct {
			Ctx   context.Context
			Input timeline.UpdatePeriodInput
		}
		DeletePeriod []struct {
			Ctx context.Context
			ID  int64
		}
		ListEvents []struct {
			Ctx   context.Context
			Input timeline.ListEventsInput
		}
		CreateEvent []struct {
			Ctx   context.Context
			Input timeline.CreateEventInput
		}
		UpdateEvent []struct {
			Ctx   context.Context
			Input timeline.UpdateEventInput
		}
		DeleteEvent []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListPeriods  sync.RWMutex
	lockGetPeriod    sync.RWMutex
	lockCreatePeriod sync.RWMutex
	lockUpdatePeriod sync.RWMutex
	lockDeletePeriod sync.RWMutex
	lockListEvents   sync.RWMutex
	lockCreateEvent  sync.RWMutex
	lockUpdateEvent  sync.RWMutex
	lockDeleteEvent  sync.RWMutex
}

func (mock *timelineServiceMock) ListPeriods(ctx context.Context, withEvents bool) ([]domain.TimelinePeriod, error) {
	if mock.ListPeriodsFunc == nil {
		panic("timelineServiceMock.ListPeriodsFunc: method is nil but timelineService.ListPeriods was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WithEvents bool
	}{Ctx: ctx, WithEvents: withEvents}
	mock.lockListPeriods.Lock()
	mock.calls.ListPeriods = append(mock.calls.ListPeriods, callInfo)
	mock.lockListPeriods.Unlock()
	return mock.ListPeriodsFunc(ctx, withEvents)
}

func (mock *timelineServiceMock) ListPeriodsCalls() []struct {
	Ctx        context.Context
	WithEvents bool
} {
	mock.lockListPeriods.RLock()
	calls := mock.calls.ListPeriods
	mock.lockListPeriods.RUnlock()
	return calls
}

func (mock *timelineServiceMock) GetPeriod(ctx context.Context, slug string) (*domain.TimelinePeriod, error) {
	if mock.GetPeriodFunc == nil {
		panic("timelineServiceMock.GetPeriodFunc: method is nil but timelineService.GetPeriod was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetPeriod.Lock()
	mock.calls.GetPeriod = append(mock.calls.GetPeriod, callInfo)
	mock.lockGetPeriod.Unlock()
	return mock.GetPeriodFunc(ctx, slug)
}

func (mock *timelineServiceMock) GetPeriodCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetPeriod.RLock()
	calls := mock.calls.GetPeriod
	mock.lockGetPeriod.RUnlock()
	return calls
}

func (mock *timelineServiceMock) CreatePeriod(ctx context.Context, input timeline.CreatePeriodInput) (*domain.TimelinePeriod, error) {
	if mock.CreatePeriodFunc == nil {
		panic("timelineServiceMock.CreatePeriodFunc: method is nil but timelineService.CreatePeriod was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeline.CreatePeriodInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePeriod.Lock()
	mock.calls.CreatePeriod = append(mock.calls.CreatePeriod, callInfo)
	mock.lockCreatePeriod.Unlock()
	return mock.CreatePeriodFunc(ctx, input)
}

func (mock *timelineServiceMock) CreatePeriodCalls() []struct {
	Ctx   context.Context
	Input timeline.CreatePeriodInput
} {
	mock.lockCreatePeriod.RLock()
	calls := mock.calls.CreatePeriod
	mock.lockCreatePeriod.RUnlock()
	return calls
}

func (mock *timelineServiceMock) UpdatePeriod(ctx context.Context, input timeline.UpdatePeriodInput) (*domain.TimelinePeriod, error) {
	if mock.UpdatePeriodFunc == nil {
		panic("timelineServiceMock.UpdatePeriodFunc: method is nil but timelineService.UpdatePeriod was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeline.UpdatePeriodInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePeriod.Lock()
	mock.calls.UpdatePeriod = append(mock.calls.UpdatePeriod, callInfo)
	mock.lockUpdatePeriod.Unlock()
	return mock.UpdatePeriodFunc(ctx, input)
}

func (mock *timelineServiceMock) UpdatePeriodCalls() []struct {
	Ctx   context.Context
	Input timeline.UpdatePeriodInput
} {
	mock.lockUpdatePeriod.RLock()
	calls := mock.calls.UpdatePeriod
	mock.lockUpdatePeriod.RUnlock()
	return calls
}

func (mock *timelineServiceMock) DeletePeriod(ctx context.Context, id int64) error {
	if mock.DeletePeriodFunc == nil {
		panic("timelineServiceMock.DeletePeriodFunc: method is nil but timelineService.DeletePeriod was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeletePeriod.Lock()
	mock.calls.DeletePeriod = append(mock.calls.DeletePeriod, callInfo)
	mock.lockDeletePeriod.Unlock()
	return mock.DeletePeriodFunc(ctx, id)
}

func (mock *timelineServiceMock) DeletePeriodCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeletePeriod.RLock()
	calls := mock.calls.DeletePeriod
	mock.lockDeletePeriod.RUnlock()
	return calls
}

func (mock *timelineServiceMock) ListEvents(ctx context.Context, input timeline.ListEventsInput) ([]domain.TimelineEvent, error) {
	if mock.ListEventsFunc == nil {
		panic("timelineServiceMock.ListEventsFunc: method is nil but timelineService.ListEvents was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeline.ListEventsInput
	}{Ctx: ctx, Input: input}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, input)
}

func (mock *timelineServiceMock) ListEventsCalls() []struct {
	Ctx   context.Context
	Input timeline.ListEventsInput
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *timelineServiceMock) CreateEvent(ctx context.Context, input timeline.CreateEventInput) (*domain.TimelineEvent, error) {
	if mock.CreateEventFunc == nil {
		panic("timelineServiceMock.CreateEventFunc: method is nil but timelineService.CreateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeline.CreateEventInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEvent.Lock()
	mock.calls.CreateEvent = append(mock.calls.CreateEvent, callInfo)
	mock.lockCreateEvent.Unlock()
	return mock.CreateEventFunc(ctx, input)
}

func (mock *timelineServiceMock) CreateEventCalls() []struct {
	Ctx   context.Context
	Input timeline.CreateEventInput
} {
	mock.lockCreateEvent.RLock()
	calls := mock.calls.CreateEvent
	mock.lockCreateEvent.RUnlock()
	return calls
}

func (mock *timelineServiceMock) UpdateEvent(ctx context.Context, input timeline.UpdateEventInput) (*domain.TimelineEvent, error) {
	if mock.UpdateEventFunc == nil {
		panic("timelineServiceMock.UpdateEventFunc: method is nil but timelineService.UpdateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeline.UpdateEventInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateEvent.Lock()
	mock.calls.UpdateEvent = append(mock.calls.UpdateEvent, callInfo)
	mock.lockUpdateEvent.Unlock()
	return mock.UpdateEventFunc(ctx, input)
}

func (mock *timelineServiceMock) UpdateEventCalls() []struct {
	Ctx   context.Context
	Input timeline.UpdateEventInput
} {
	mock.lockUpdateEvent.RLock()
	calls := mock.calls.UpdateEvent
	mock.lockUpdateEvent.RUnlock()
	return calls
}

func (mock *timelineServiceMock) DeleteEvent(ctx context.Context, id int64) error {
	if mock.DeleteEventFunc == nil {
		panic("timelineServiceMock.DeleteEventFunc: method is nil but timelineService.DeleteEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteEvent.Lock()
	mock.calls.DeleteEvent = append(mock.calls.DeleteEvent, callInfo)
	mock.lockDeleteEvent.Unlock()
	return mock.DeleteEventFunc(ctx, id)
}

func (mock *timelineServiceMock) DeleteEventCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteEvent.RLock()
	calls := mock.calls.DeleteEvent
	mock.lockDeleteEvent.RUnlock()
	return calls
}

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	AddWordFunc   func(ctx context.Context, input romandict.AddWordInput) (*domain.RomanWord, error)
	ListWordsFunc func(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error)
	SyncFunc      func(ctx context.Context) (romandict.SyncResult, error)

	calls struct {
		AddWord []struct {
			Ctx   context.Context
			Input romandict.AddWordInput
		}
		ListWords []struct {
			Ctx context.Context
			Lq  domain.ListQuery
		}
		Sync []struct {
			Ctx context.Context
		}
	}
	lockAddWord   sync.RWMutex
	lockListWords sync.RWMutex
	lockSync      sync.RWMutex
}

func (mock *dictionaryServiceMock) AddWord(ctx context.Context, input romandict.AddWordInput) (*domain.RomanWord, error) {
	if mock.AddWordFunc == nil {
		panic("dictionaryServiceMock.AddWordFunc: method is nil but dictionaryService.AddWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input romandict.AddWordInput
	}{Ctx: ctx, Input: input}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, callInfo)
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) AddWordCalls() []struct {
	Ctx   context.Context
	Input romandict.AddWordInput
} {
	mock.lockAddWord.RLock()
	calls := mock.calls.AddWord
	mock.lockAddWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ListWords(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.RomanWord], error) {
	if mock.ListWordsFunc == nil {
		panic("dictionaryServiceMock.ListWordsFunc: method is nil but dictionaryService.ListWords was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lq  domain.ListQuery
	}{Ctx: ctx, Lq: lq}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, lq)
}

func (mock *dictionaryServiceMock) ListWordsCalls() []struct {
	Ctx context.Context
	Lq  domain.ListQuery
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) Sync(ctx context.Context) (romandict.SyncResult, error) {
	if mock.SyncFunc == nil {
		panic("dictionaryServiceMock.SyncFunc: method is nil but dictionaryService.Sync was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSync.Lock()
	mock.calls.Sync = append(mock.calls.Sync, callInfo)
	mock.lockSync.Unlock()
	return mock.SyncFunc(ctx)
}

func (mock *dictionaryServiceMock) SyncCalls() []struct {
	Ctx context.Context
} {
	mock.lockSync.RLock()
	calls := mock.calls.Sync
	mock.lockSync.RUnlock()
	return calls
}

var _ securityService = &securityServiceMock{}

type securityServiceMock struct {
	ListEventsFunc func(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error)
	SummaryFunc    func(ctx context.Context, window time.Duration) (domain.SecuritySummary, error)

	calls struct {
		ListEvents []struct {
			Ctx context.Context
			F   domain.SecurityEventFilter
		}
		Summary []struct {
			Ctx    context.Context
			Window time.Duration
		}
	}
	lockListEvents sync.RWMutex
	lockSummary    sync.RWMutex
}

func (mock *securityServiceMock) ListEvents(ctx context.Context, f domain.SecurityEventFilter) (domain.Page[domain.SecurityEvent], error) {
	if mock.ListEventsFunc == nil {
		panic("securityServiceMock.ListEventsFunc: method is nil but securityService.ListEvents was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SecurityEventFilter
	}{Ctx: ctx, F: f}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, f)
}

func (mock *securityServiceMock) ListEventsCalls() []struct {
	Ctx context.Context
	F   domain.SecurityEventFilter
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *securityServiceMock) Summary(ctx context.Context, window time.Duration) (domain.SecuritySummary, error) {
	if mock.SummaryFunc == nil {
		panic("securityServiceMock.SummaryFunc: method is nil but securityService.Summary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Window time.Duration
	}{Ctx: ctx, Window: window}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, window)
}

func (mock *securityServiceMock) SummaryCalls() []struct {
	Ctx    context.Context
	Window time.Duration
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

var _ textService = &textServiceMock{}

type textServiceMock struct {
	CorrectFunc   func(ctx context.Context, input text.TextInput) (domain.HesudharResult, error)
	RomanizeFunc  func(ctx context.Context, input text.TextInput) (domain.RomanizeResult, error)
	TranslateFunc func(ctx context.Context, input text.TranslateInput) (string, error)

	calls struct {
		Correct []struct {
			Ctx   context.Context
			Input text.TextInput
		}
		Romanize []struct {
			Ctx   context.Context
			Input text.TextInput
		}
		Translate []struct {
			Ctx   context.Context
			Input text.TranslateInput
		}
	}
	lockCorrect   sync.RWMutex
	lockRomanize  sync.RWMutex
	lockTranslate sync.RWMutex
}

func (mock *textServiceMock) Correct(ctx context.Context, input text.TextInput) (domain.HesudharResult, error) {
	if mock.CorrectFunc == nil {
		panic("textServiceMock.CorrectFunc: method is nil but textService.Correct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input text.TextInput
	}{Ctx: ctx, Input: input}
	mock.lockCorrect.Lock()
	mock.calls.Correct = append(mock.calls.Correct, callInfo)
	mock.lockCorrect.Unlock()
	return mock.CorrectFunc(ctx, input)
}

func (mock *textServiceMock) CorrectCalls() []struct {
	Ctx   context.Context
	Input text.TextInput
} {
	mock.lockCorrect.RLock()
	calls := mock.calls.Correct
	mock.lockCorrect.RUnlock()
	return calls
}

func (mock *textServiceMock) Romanize(ctx context.Context, input text.TextInput) (domain.RomanizeResult, error) {
	if mock.RomanizeFunc == nil {
		panic("textServiceMock.RomanizeFunc: method is nil but textService.Romanize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input text.TextInput
	}{Ctx: ctx, Input: input}
	mock.lockRomanize.Lock()
	mock.calls.Romanize = append(mock.calls.Romanize, callInfo)
	mock.lockRomanize.Unlock()
	return mock.RomanizeFunc(ctx, input)
}

func (mock *textServiceMock) RomanizeCalls() []struct {
	Ctx   context.Context
	Input text.TextInput
} {
	mock.lockRomanize.RLock()
	calls := mock.calls.Romanize
	mock.lockRomanize.RUnlock()
	return calls
}

func (mock *textServiceMock) Translate(ctx context.Context, input text.TranslateInput) (string, error) {
	if mock.TranslateFunc == nil {
		panic("textServiceMock.TranslateFunc: method is nil but textService.Translate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input text.TranslateInput
	}{Ctx: ctx, Input: input}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, input)
}

func (mock *textServiceMock) TranslateCalls() []struct {
	Ctx   context.Context
	Input text.TranslateInput
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}
