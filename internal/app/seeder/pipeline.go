package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"poets", "tags", "timeline"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds the catalogue phase by phase.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	data    *Dataset
	dryRun  bool
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, data *Dataset, dryRun bool) *Pipeline {
	return &Pipeline{
		log:     log,
		repos:   repos,
		data:    data,
		dryRun:  dryRun,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. An unknown phase name is an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.dryRun))

		var result PhaseResult
		switch phase {
		case "poets":
			result = p.runPoets(ctx)
		case "tags":
			result = p.runTags(ctx)
		case "timeline":
			result = p.runTimeline(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		ph = strings.TrimSpace(ph)
		known := false
		for _, k := range allPhases {
			known = known || k == ph
		}
		if !known {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
		filter[ph] = true
	}

	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

// exists reports whether a slug lookup found a row.
func exists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// tally counts a create outcome. A concurrent insert of the same slug counts
// as skipped.
func (p *Pipeline) tally(res *PhaseResult, kind, slug string, err error) {
	switch {
	case err == nil:
		res.Inserted++
	case errors.Is(err, domain.ErrAlreadyExists):
		res.Skipped++
	default:
		res.Errors++
		p.log.Warn("seed row failed",
			slog.String("kind", kind),
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
	}
}

func (p *Pipeline) runPoets(ctx context.Context) PhaseResult {
	var res PhaseResult
	for _, rec := range p.data.Poets {
		slug := strings.TrimSpace(rec.Slug)
		_, err := p.repos.Poets.GetBySlug(ctx, slug)
		found, err := exists(err)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("lookup poet %s: %w", slug, err)}
		}
		if found {
			res.Skipped++
			continue
		}
		if p.dryRun {
			res.Inserted++
			continue
		}

		_, err = p.repos.Poets.Create(ctx, &domain.Poet{
			Slug:         slug,
			SindhiName:   strings.TrimSpace(rec.SindhiName),
			EnglishName:  strings.TrimSpace(rec.EnglishName),
			SindhiLaqab:  rec.SindhiLaqab,
			EnglishLaqab: rec.EnglishLaqab,
			BirthYear:    rec.BirthYear,
			DeathYear:    rec.DeathYear,
			FileURL:      rec.FileURL,
			IsFeatured:   rec.Featured,
		})
		p.tally(&res, "poet", slug, err)
	}
	return res
}

func (p *Pipeline) runTags(ctx context.Context) PhaseResult {
	var res PhaseResult
	for _, rec := range p.data.Tags {
		slug := strings.TrimSpace(rec.Slug)
		_, err := p.repos.Tags.GetBySlug(ctx, slug)
		found, err := exists(err)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("lookup tag %s: %w", slug, err)}
		}
		if found {
			res.Skipped++
			continue
		}
		if p.dryRun {
			res.Inserted++
			continue
		}

		label := rec.Label
		if label == "" {
			label = rec.English.Title
		}
		_, err = p.repos.Tags.Create(ctx, &domain.Tag{
			Slug:    slug,
			Label:   label,
			TagType: rec.Type,
			English: domain.TagText(rec.English),
			Sindhi:  domain.TagText(rec.Sindhi),
		})
		p.tally(&res, "tag", slug, err)
	}
	return res
}

// runTimeline creates missing periods with their events. Events of a period
// that already exists are left alone.
func (p *Pipeline) runTimeline(ctx context.Context) PhaseResult {
	var res PhaseResult
	for _, rec := range p.data.Timeline {
		slug := strings.TrimSpace(rec.Slug)
		_, err := p.repos.Timeline.GetPeriodBySlug(ctx, slug)
		found, err := exists(err)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("lookup period %s: %w", slug, err)}
		}
		if found {
			res.Skipped += 1 + len(rec.Events)
			continue
		}
		if p.dryRun {
			res.Inserted += 1 + len(rec.Events)
			continue
		}

		period, err := p.repos.Timeline.CreatePeriod(ctx, &domain.TimelinePeriod{
			Slug:       slug,
			StartYear:  rec.StartYear,
			EndYear:    rec.EndYear,
			ColorCode:  rec.Color,
			IsFeatured: rec.Featured,
			SortOrder:  rec.SortOrder,
			English:    domain.PeriodText(rec.English),
			Sindhi:     domain.PeriodText(rec.Sindhi),
		})
		p.tally(&res, "period", slug, err)
		if err != nil {
			res.Skipped += len(rec.Events)
			continue
		}

		for _, ev := range rec.Events {
			evSlug := strings.TrimSpace(ev.Slug)
			_, err := p.repos.Timeline.CreateEvent(ctx, &domain.TimelineEvent{
				Slug:       evSlug,
				PeriodID:   period.ID,
				Year:       ev.Year,
				EventType:  ev.Type,
				Importance: ev.Importance,
				IsFeatured: ev.Featured,
				English:    domain.EventText(ev.English),
				Sindhi:     domain.EventText(ev.Sindhi),
			})
			p.tally(&res, "event", evSlug, err)
		}
	}
	return res
}
