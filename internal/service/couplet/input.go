package couplet

import (
	"fmt"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// MaxBatchSize bounds the number of rows in one create call.
const MaxBatchSize = 50

// Record is one language variant submitted for creation.
type Record struct {
	PoetryID int64
	PoetID   int64
	Slug     string
	Tags     string // comma-joined tag slugs
	Text     string
	Lang     domain.Lang
}

// CreateCoupletsInput holds the rows inserted atomically by CreateCouplets.
type CreateCoupletsInput struct {
	Records []Record
}

// Validate checks every record and collects all errors.
func (i CreateCoupletsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Records) == 0 {
		return domain.NewValidationError("records", "at least one record required")
	}
	if len(i.Records) > MaxBatchSize {
		return domain.NewValidationError("records", fmt.Sprintf("max %d records per batch", MaxBatchSize))
	}

	type variant struct {
		slug string
		lang domain.Lang
	}
	seen := make(map[variant]struct{}, len(i.Records))

	for idx, r := range i.Records {
		prefix := fmt.Sprintf("records[%d].", idx)
		slug := strings.TrimSpace(r.Slug)

		if slug == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "couplet_slug", Message: "required"})
		} else if !domain.IsSlug(slug) {
			errs = append(errs, domain.FieldError{Field: prefix + "couplet_slug", Message: "must be lowercase letters, digits and hyphens"})
		}
		if r.PoetID <= 0 {
			errs = append(errs, domain.FieldError{Field: prefix + "poet_id", Message: "must be a positive integer"})
		}
		if r.PoetryID < 0 {
			errs = append(errs, domain.FieldError{Field: prefix + "poetry_id", Message: "must not be negative"})
		}
		if strings.TrimSpace(r.Text) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "couplet_text", Message: "required"})
		}
		if !r.Lang.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "lang", Message: "must be sd or en"})
		}

		key := variant{slug: slug, lang: r.Lang}
		if _, dup := seen[key]; dup {
			errs = append(errs, domain.FieldError{Field: prefix + "lang", Message: "duplicate language for slug"})
		}
		seen[key] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCoupletInput holds a partial update of one couplet row.
type UpdateCoupletInput struct {
	ID     int64
	PoetID *int64
	Slug   *string
	Tags   *string
	Text   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCoupletInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if i.PoetID == nil && i.Slug == nil && i.Tags == nil && i.Text == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.PoetID != nil && *i.PoetID <= 0 {
		errs = append(errs, domain.FieldError{Field: "poet_id", Message: "must be a positive integer"})
	}
	if i.Slug != nil && !domain.IsSlug(strings.TrimSpace(*i.Slug)) {
		errs = append(errs, domain.FieldError{Field: "couplet_slug", Message: "must be lowercase letters, digits and hyphens"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "couplet_text", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
