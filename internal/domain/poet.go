package domain

import "time"

// Poet is an author whose couplets are published on the platform.
// Couplets reference a poet by ID.
type Poet struct {
	ID           int64
	Slug         string
	SindhiName   string
	EnglishName  string
	SindhiLaqab  *string
	EnglishLaqab *string
	BirthYear    *int
	DeathYear    *int
	FileURL      *string
	IsFeatured   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CoupletCount int // computed field, not stored in DB
}

// DisplayName returns the English name, falling back to the Sindhi name.
func (p *Poet) DisplayName() string {
	if p.EnglishName != "" {
		return p.EnglishName
	}
	return p.SindhiName
}

// PoetUpdateParams holds a partial poet update. nil fields are left unchanged;
// ptr("") on an optional text field clears it.
type PoetUpdateParams struct {
	Slug         *string
	SindhiName   *string
	EnglishName  *string
	SindhiLaqab  *string
	EnglishLaqab *string
	BirthYear    *int
	DeathYear    *int
	FileURL      *string
	IsFeatured   *bool
}
