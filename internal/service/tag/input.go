package tag

import (
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

const (
	maxLabelLen   = 100
	maxDetailsLen = 2000
)

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	Slug    string
	Label   string
	TagType string
	English domain.TagText
	Sindhi  domain.TagText
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsSlug(strings.TrimSpace(i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	label := strings.TrimSpace(i.Label)
	if label == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	if len([]rune(label)) > maxLabelLen {
		errs = append(errs, domain.FieldError{Field: "label", Message: "max 100 characters"})
	}
	errs = validateText(errs, "english", &i.English)
	errs = validateText(errs, "sindhi", &i.Sindhi)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTagInput holds the parameters for updating a tag.
type UpdateTagInput struct {
	ID      int64
	Slug    *string
	Label   *string
	TagType *string
	English *domain.TagText
	Sindhi  *domain.TagText
}

// Validate checks all fields and collects all errors.
func (i UpdateTagInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.Slug == nil && i.Label == nil && i.TagType == nil && i.English == nil && i.Sindhi == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Slug != nil && !domain.IsSlug(strings.TrimSpace(*i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.Label != nil && strings.TrimSpace(*i.Label) == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	errs = validateText(errs, "english", i.English)
	errs = validateText(errs, "sindhi", i.Sindhi)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, field string, text *domain.TagText) []domain.FieldError {
	if text == nil {
		return errs
	}
	if len([]rune(text.Title)) > maxLabelLen {
		errs = append(errs, domain.FieldError{Field: field + ".title", Message: "max 100 characters"})
	}
	if len([]rune(text.Details)) > maxDetailsLen {
		errs = append(errs, domain.FieldError{Field: field + ".details", Message: "max 2000 characters"})
	}
	return errs
}

func trimText(t domain.TagText) domain.TagText {
	return domain.TagText{Title: strings.TrimSpace(t.Title), Details: strings.TrimSpace(t.Details)}
}
