// Package workflow implements couplet authoring as an explicit state
// machine: spelling correction (hesudhar), romanization, then couplet
// details and submission.
//
// A Workflow is safe for concurrent use. Network calls run without holding
// the state lock; results that no longer match the current state are
// discarded.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Step is a workflow state.
type Step string

const (
	StepHesudhar  Step = "hesudhar"
	StepRomanizer Step = "romanizer"
	StepDetails   Step = "couplet-details"
)

var (
	// ErrWrongStep is returned for an operation not allowed in the current step.
	ErrWrongStep = errors.New("workflow: not allowed in current step")
	// ErrStepIncomplete is returned when a forward transition guard fails.
	ErrStepIncomplete = errors.New("workflow: current step not complete")
	// ErrStale is returned when the state changed while a call was in flight.
	ErrStale = errors.New("workflow: result discarded, input changed")
)

// Corrector is the hesudhar spelling-correction service.
type Corrector interface {
	Correct(ctx context.Context, text string) (domain.HesudharResult, error)
}

// Romanizer is the Sindhi to roman-script transliteration service.
type Romanizer interface {
	Romanize(ctx context.Context, text string) (domain.RomanizeResult, error)
}

// Translator produces the English draft.
type Translator interface {
	Translate(ctx context.Context, text string, from, to domain.Lang) (string, error)
}

// Dictionary stores manual romanizations and syncs them into the lookup
// artifact.
type Dictionary interface {
	AddWord(ctx context.Context, wordSD, wordRoman string) error
	Sync(ctx context.Context) (int, error)
}

// CoupletStore persists couplet rows.
type CoupletStore interface {
	CreateCouplets(ctx context.Context, records []domain.Couplet) ([]domain.Couplet, error)
	DeleteCouplet(ctx context.Context, id int64) error
}

// Catalogue lists the poets and tags offered for selection.
type Catalogue interface {
	ListPoets(ctx context.Context) ([]domain.Poet, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

// Deps are the collaborators of a Workflow.
type Deps struct {
	Corrector  Corrector
	Romanizer  Romanizer
	Translator Translator
	Dictionary Dictionary
	Couplets   CoupletStore
	Catalogue  Catalogue
}

// Options tune a Workflow.
type Options struct {
	// CallTimeout bounds every collaborator call. Zero means no extra bound.
	CallTimeout time.Duration
	// RedirectDelay is reported in the submit result so the caller can
	// leave the workflow after the success notice has been shown.
	RedirectDelay time.Duration
	// RequireEnglish makes a failed English write undo the Sindhi write.
	RequireEnglish bool
}

// State is a snapshot of the workflow.
type State struct {
	Step Step

	// hesudhar
	Text         string
	Corrections  []domain.HesudharCorrection
	HesudharDone bool

	// romanizer
	RomanInput    string
	RomanizedText string
	Mappings      []domain.RomanMapping
	Manual        []domain.RomanMapping
	Pending       []string // words not in the dictionary
	RomanizerDone bool

	// couplet-details
	SindhiDraft  string
	EnglishDraft string
	Slug         string
	PoetID       int64
	Tags         []string
	Submitted    bool
}

// Catalog holds the selection lists loaded by Start.
type Catalog struct {
	Poets []domain.Poet
	Tags  []domain.Tag
}

// Workflow drives one couplet through authoring.
type Workflow struct {
	deps Deps
	opts Options
	log  *slog.Logger

	mu      sync.Mutex
	state   State
	catalog Catalog
	notices []Notice
	regen   uint64 // token of the latest slug/English regeneration
}

// New creates a Workflow in the hesudhar step.
func New(deps Deps, opts Options, log *slog.Logger) *Workflow {
	return &Workflow{
		deps:  deps,
		opts:  opts,
		log:   log.With("component", "workflow"),
		state: State{Step: StepHesudhar},
	}
}

// Snapshot returns a copy of the current state.
func (w *Workflow) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.state
	s.Corrections = append([]domain.HesudharCorrection(nil), s.Corrections...)
	s.Mappings = append([]domain.RomanMapping(nil), s.Mappings...)
	s.Manual = append([]domain.RomanMapping(nil), s.Manual...)
	s.Pending = append([]string(nil), s.Pending...)
	s.Tags = append([]string(nil), s.Tags...)
	return s
}

// callCtx applies the per-call timeout.
func (w *Workflow) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.opts.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.opts.CallTimeout)
}
