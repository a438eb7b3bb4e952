package timeline

import (
	"regexp"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

const (
	minImportance = 1
	maxImportance = 5
)

var colorCode = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreatePeriodInput holds the parameters for creating a period.
type CreatePeriodInput struct {
	Slug       string
	StartYear  int
	EndYear    *int
	ColorCode  *string
	IsFeatured bool
	SortOrder  int
	English    domain.PeriodText
	Sindhi     domain.PeriodText
}

// Validate checks all fields and collects all errors.
func (i CreatePeriodInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsSlug(strings.TrimSpace(i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "period_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.EndYear != nil && *i.EndYear < i.StartYear {
		errs = append(errs, domain.FieldError{Field: "end_year", Message: "must not precede start_year"})
	}
	if i.ColorCode != nil && *i.ColorCode != "" && !colorCode.MatchString(*i.ColorCode) {
		errs = append(errs, domain.FieldError{Field: "color_code", Message: "must be #RRGGBB"})
	}
	if strings.TrimSpace(i.English.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "english.name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePeriodInput holds a partial period update.
type UpdatePeriodInput struct {
	ID         int64
	Slug       *string
	StartYear  *int
	EndYear    *int
	ClearEnd   bool
	ColorCode  *string
	IsFeatured *bool
	SortOrder  *int
	English    *domain.PeriodText
	Sindhi     *domain.PeriodText
}

// Validate checks all fields and collects all errors.
func (i UpdatePeriodInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Slug != nil && !domain.IsSlug(strings.TrimSpace(*i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "period_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.ClearEnd && i.EndYear != nil {
		errs = append(errs, domain.FieldError{Field: "end_year", Message: "cannot set and clear at once"})
	}
	if i.StartYear != nil && i.EndYear != nil && *i.EndYear < *i.StartYear {
		errs = append(errs, domain.FieldError{Field: "end_year", Message: "must not precede start_year"})
	}
	if i.ColorCode != nil && *i.ColorCode != "" && !colorCode.MatchString(*i.ColorCode) {
		errs = append(errs, domain.FieldError{Field: "color_code", Message: "must be #RRGGBB"})
	}
	if i.English != nil && strings.TrimSpace(i.English.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "english.name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateEventInput holds the parameters for creating an event.
type CreateEventInput struct {
	Slug       string
	PeriodID   int64
	Year       int
	EventType  string
	Importance int
	IsFeatured bool
	English    domain.EventText
	Sindhi     domain.EventText
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsSlug(strings.TrimSpace(i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "event_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.PeriodID <= 0 {
		errs = append(errs, domain.FieldError{Field: "period_id", Message: "must be a positive integer"})
	}
	if i.Importance < minImportance || i.Importance > maxImportance {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be between 1 and 5"})
	}
	if strings.TrimSpace(i.English.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "english.title", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEventInput holds a partial event update.
type UpdateEventInput struct {
	ID         int64
	Slug       *string
	PeriodID   *int64
	Year       *int
	EventType  *string
	Importance *int
	IsFeatured *bool
	English    *domain.EventText
	Sindhi     *domain.EventText
}

// Validate checks all fields and collects all errors.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Slug != nil && !domain.IsSlug(strings.TrimSpace(*i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "event_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.PeriodID != nil && *i.PeriodID <= 0 {
		errs = append(errs, domain.FieldError{Field: "period_id", Message: "must be a positive integer"})
	}
	if i.Importance != nil && (*i.Importance < minImportance || *i.Importance > maxImportance) {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be between 1 and 5"})
	}
	if i.English != nil && strings.TrimSpace(i.English.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "english.title", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEventsInput narrows an event listing.
type ListEventsInput struct {
	PeriodSlug string
	FromYear   *int
	ToYear     *int
}

// Validate checks all fields and collects all errors.
func (i ListEventsInput) Validate() error {
	if i.FromYear != nil && i.ToYear != nil && *i.ToYear < *i.FromYear {
		return domain.NewValidationError("to_year", "must not precede from_year")
	}
	return nil
}
