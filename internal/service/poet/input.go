package poet

import (
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

const (
	maxNameLen = 200
	minYear    = 1000
	maxYear    = 2100
)

// CreatePoetInput holds the parameters for creating a poet.
type CreatePoetInput struct {
	Slug         string
	SindhiName   string
	EnglishName  string
	SindhiLaqab  *string
	EnglishLaqab *string
	BirthYear    *int
	DeathYear    *int
	FileURL      *string
	IsFeatured   bool
}

// Validate checks all fields and collects all errors.
func (i CreatePoetInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsSlug(strings.TrimSpace(i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "poet_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	errs = validateName(errs, "sindhi_name", i.SindhiName)
	errs = validateName(errs, "english_name", i.EnglishName)
	errs = validateYears(errs, i.BirthYear, i.DeathYear)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePoetInput holds the parameters for updating a poet.
type UpdatePoetInput struct {
	ID           int64
	Slug         *string
	SindhiName   *string
	EnglishName  *string
	SindhiLaqab  *string // ptr("") = clear
	EnglishLaqab *string
	BirthYear    *int
	DeathYear    *int
	FileURL      *string
	IsFeatured   *bool
}

// Validate checks all fields and collects all errors.
func (i UpdatePoetInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Slug == nil && i.SindhiName == nil && i.EnglishName == nil && i.SindhiLaqab == nil &&
		i.EnglishLaqab == nil && i.BirthYear == nil && i.DeathYear == nil && i.FileURL == nil && i.IsFeatured == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Slug != nil && !domain.IsSlug(strings.TrimSpace(*i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "poet_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.SindhiName != nil {
		errs = validateName(errs, "sindhi_name", *i.SindhiName)
	}
	if i.EnglishName != nil {
		errs = validateName(errs, "english_name", *i.EnglishName)
	}
	errs = validateYears(errs, i.BirthYear, i.DeathYear)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, field, value string) []domain.FieldError {
	name := strings.TrimSpace(value)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len([]rune(name)) > maxNameLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

func validateYears(errs []domain.FieldError, birth, death *int) []domain.FieldError {
	if birth != nil && (*birth < minYear || *birth > maxYear) {
		errs = append(errs, domain.FieldError{Field: "birth_year", Message: "out of range"})
	}
	if death != nil && (*death < minYear || *death > maxYear) {
		errs = append(errs, domain.FieldError{Field: "death_year", Message: "out of range"})
	}
	if birth != nil && death != nil && *death < *birth {
		errs = append(errs, domain.FieldError{Field: "death_year", Message: "must not precede birth_year"})
	}
	return errs
}
