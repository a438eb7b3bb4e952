package romandict

import (
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

const maxWordLen = 100

// AddWordInput is a manual romanization of one Sindhi word.
type AddWordInput struct {
	WordSD    string
	WordRoman string
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	sd := strings.TrimSpace(i.WordSD)
	switch {
	case sd == "":
		errs = append(errs, domain.FieldError{Field: "word_sd", Message: "required"})
	case len([]rune(sd)) > maxWordLen:
		errs = append(errs, domain.FieldError{Field: "word_sd", Message: "max 100 characters"})
	case len(domain.Tokenize(sd)) != 1 || domain.Tokenize(sd)[0].Word != sd:
		errs = append(errs, domain.FieldError{Field: "word_sd", Message: "must be a single word"})
	}

	roman := strings.TrimSpace(i.WordRoman)
	if roman == "" {
		errs = append(errs, domain.FieldError{Field: "word_roman", Message: "required"})
	}
	if len([]rune(roman)) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "word_roman", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
