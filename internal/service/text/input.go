package text

import (
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// TextInput carries the text of a correction or romanization request.
type TextInput struct {
	Text string
}

// Validate rejects blank and oversized text.
func (i TextInput) Validate() error {
	return validateText(i.Text)
}

// TranslateInput carries a translation request.
type TranslateInput struct {
	Text string
	From domain.Lang
	To   domain.Lang
}

// Validate checks all fields and collects all errors.
func (i TranslateInput) Validate() error {
	var errs []domain.FieldError

	if err := validateText(i.Text); err != nil {
		errs = append(errs, err.(*domain.ValidationError).Errors...)
	}
	if !i.From.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be sd or en"})
	}
	if !i.To.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be sd or en"})
	}
	if i.From.IsValid() && i.From == i.To {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must differ from source"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewValidationError("text", "required")
	}
	if len([]rune(text)) > MaxTextLen {
		return domain.NewValidationError("text", "max 5000 characters")
	}
	return nil
}
