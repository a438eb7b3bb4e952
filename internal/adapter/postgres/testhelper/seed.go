package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sindhipoetry/backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPoet inserts a poet with a unique slug and returns it.
func SeedPoet(t *testing.T, pool *pgxpool.Pool) domain.Poet {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	laqab := "Bhittai"
	p := domain.Poet{
		Slug:         "poet-" + suffix,
		SindhiName:   "شاهه عبداللطيف " + suffix,
		EnglishName:  "Shah Abdul Latif " + suffix,
		EnglishLaqab: &laqab,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO poets (poet_slug, sindhi_name, english_name, english_laqab)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.Slug, p.SindhiName, p.EnglishName, p.EnglishLaqab,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPoet: %v", err)
	}

	return p
}

// SeedCouplet inserts a standalone couplet for poetID in the given language.
func SeedCouplet(t *testing.T, pool *pgxpool.Pool, poetID int64, slug string, lang domain.Lang, text, tags string) domain.Couplet {
	t.Helper()
	ctx := context.Background()

	c := domain.Couplet{
		PoetryID: domain.StandalonePoetryID,
		PoetID:   poetID,
		Slug:     slug,
		Tags:     tags,
		Text:     text,
		Lang:     lang,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO couplets (poetry_id, poet_id, couplet_slug, couplet_tags, couplet_text, lang)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		c.PoetryID, c.PoetID, c.Slug, c.Tags, c.Text, string(c.Lang),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCouplet: %v", err)
	}

	return c
}

// SeedTag inserts a tag with English and Sindhi translations.
func SeedTag(t *testing.T, pool *pgxpool.Pool, tagType string) domain.Tag {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	tag := domain.Tag{
		Slug:    "tag-" + suffix,
		Label:   "Tag " + suffix,
		TagType: tagType,
		English: domain.TagText{Title: "Love " + suffix, Details: "Couplets about love"},
		Sindhi:  domain.TagText{Title: "عشق " + suffix},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO tags (slug, label, tag_type) VALUES ($1, $2, $3) RETURNING id, created_at`,
		tag.Slug, tag.Label, tag.TagType,
	).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert tag: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO tag_translations (tag_id, lang, title, details)
		 VALUES ($1, 'en', $2, $3), ($1, 'sd', $4, $5)`,
		tag.ID, tag.English.Title, tag.English.Details, tag.Sindhi.Title, tag.Sindhi.Details,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert translations: %v", err)
	}

	return tag
}

// SeedPeriod inserts a timeline period starting at startYear.
func SeedPeriod(t *testing.T, pool *pgxpool.Pool, startYear int) domain.TimelinePeriod {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	p := domain.TimelinePeriod{
		Slug:      "period-" + suffix,
		StartYear: startYear,
		English:   domain.PeriodText{Name: "Period " + suffix},
		Sindhi:    domain.PeriodText{Name: "دور " + suffix},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO timeline_periods (period_slug, start_year) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.Slug, p.StartYear,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPeriod: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO timeline_period_translations (period_id, lang, name)
		 VALUES ($1, 'en', $2), ($1, 'sd', $3)`,
		p.ID, p.English.Name, p.Sindhi.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPeriod translations: %v", err)
	}

	return p
}
