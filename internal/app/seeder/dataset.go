package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sindhipoetry/backend/internal/domain"
)

// Dataset is the YAML seed file.
type Dataset struct {
	Poets    []PoetRecord   `yaml:"poets"`
	Tags     []TagRecord    `yaml:"tags"`
	Timeline []PeriodRecord `yaml:"timeline"`
}

type PoetRecord struct {
	Slug         string  `yaml:"slug"`
	SindhiName   string  `yaml:"sindhi_name"`
	EnglishName  string  `yaml:"english_name"`
	SindhiLaqab  *string `yaml:"sindhi_laqab"`
	EnglishLaqab *string `yaml:"english_laqab"`
	BirthYear    *int    `yaml:"birth_year"`
	DeathYear    *int    `yaml:"death_year"`
	FileURL      *string `yaml:"file_url"`
	Featured     bool    `yaml:"featured"`
}

type TagText struct {
	Title   string `yaml:"title"`
	Details string `yaml:"details"`
}

type TagRecord struct {
	Slug    string  `yaml:"slug"`
	Label   string  `yaml:"label"`
	Type    string  `yaml:"type"`
	English TagText `yaml:"english"`
	Sindhi  TagText `yaml:"sindhi"`
}

type PeriodText struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type PeriodRecord struct {
	Slug      string        `yaml:"slug"`
	StartYear int           `yaml:"start_year"`
	EndYear   *int          `yaml:"end_year"`
	Color     *string       `yaml:"color"`
	Featured  bool          `yaml:"featured"`
	SortOrder int           `yaml:"sort_order"`
	English   PeriodText    `yaml:"english"`
	Sindhi    PeriodText    `yaml:"sindhi"`
	Events    []EventRecord `yaml:"events"`
}

type EventText struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
}

type EventRecord struct {
	Slug       string    `yaml:"slug"`
	Year       int       `yaml:"year"`
	Type       string    `yaml:"type"`
	Importance int       `yaml:"importance"`
	Featured   bool      `yaml:"featured"`
	English    EventText `yaml:"english"`
	Sindhi     EventText `yaml:"sindhi"`
}

// LoadDataset reads and validates the dataset at path.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ParseDataset(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// ParseDataset decodes a dataset. Unknown keys are rejected.
func ParseDataset(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return &ds, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks required fields and slug uniqueness per section.
func (d *Dataset) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}
	slugs := func(section string, n int, slug func(int) string) {
		seen := make(map[string]bool, n)
		for i := range n {
			s := strings.TrimSpace(slug(i))
			field := fmt.Sprintf("%s[%d].slug", section, i)
			switch {
			case s == "":
				add(field, "required")
			case seen[s]:
				add(field, "duplicate slug "+s)
			}
			seen[s] = true
		}
	}

	slugs("poets", len(d.Poets), func(i int) string { return d.Poets[i].Slug })
	for i, p := range d.Poets {
		if strings.TrimSpace(p.SindhiName) == "" && strings.TrimSpace(p.EnglishName) == "" {
			add(fmt.Sprintf("poets[%d].english_name", i), "a sindhi or english name is required")
		}
		if p.BirthYear != nil && p.DeathYear != nil && *p.DeathYear < *p.BirthYear {
			add(fmt.Sprintf("poets[%d].death_year", i), "must not precede birth_year")
		}
	}

	slugs("tags", len(d.Tags), func(i int) string { return d.Tags[i].Slug })
	for i, t := range d.Tags {
		if strings.TrimSpace(t.English.Title) == "" {
			add(fmt.Sprintf("tags[%d].english.title", i), "required")
		}
	}

	slugs("timeline", len(d.Timeline), func(i int) string { return d.Timeline[i].Slug })
	for i, p := range d.Timeline {
		if p.EndYear != nil && *p.EndYear < p.StartYear {
			add(fmt.Sprintf("timeline[%d].end_year", i), "must not precede start_year")
		}
		section := fmt.Sprintf("timeline[%d].events", i)
		slugs(section, len(p.Events), func(j int) string { return p.Events[j].Slug })
		for j, e := range p.Events {
			if strings.TrimSpace(e.English.Title) == "" {
				add(fmt.Sprintf("%s[%d].english.title", section, j), "required")
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
