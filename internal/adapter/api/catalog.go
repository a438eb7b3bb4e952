package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

// listPageSize is the largest page the server accepts.
const listPageSize = 100

type page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

type poetDTO struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"poet_slug"`
	SindhiName   string    `json:"sindhi_name"`
	EnglishName  string    `json:"english_name"`
	SindhiLaqab  *string   `json:"sindhi_laqab"`
	EnglishLaqab *string   `json:"english_laqab"`
	BirthYear    *int      `json:"birth_year"`
	DeathYear    *int      `json:"death_year"`
	FileURL      *string   `json:"file_url"`
	IsFeatured   bool      `json:"is_featured"`
	CoupletCount int       `json:"couplet_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type tagTextDTO struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type tagDTO struct {
	ID           int64      `json:"id"`
	Slug         string     `json:"slug"`
	Label        string     `json:"label"`
	TagType      string     `json:"tag_type"`
	English      tagTextDTO `json:"english"`
	Sindhi       tagTextDTO `json:"sindhi"`
	CoupletCount int        `json:"couplet_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ListPoets returns every poet ordered by English name.
func (c *Client) ListPoets(ctx context.Context) ([]domain.Poet, error) {
	rows, err := listAll[poetDTO](ctx, c, "/api/poets", url.Values{"sort": {"english_name"}, "order": {"asc"}})
	if err != nil {
		return nil, fmt.Errorf("list poets: %w", err)
	}

	poets := make([]domain.Poet, len(rows))
	for i, p := range rows {
		poets[i] = domain.Poet{
			ID:           p.ID,
			Slug:         p.Slug,
			SindhiName:   p.SindhiName,
			EnglishName:  p.EnglishName,
			SindhiLaqab:  p.SindhiLaqab,
			EnglishLaqab: p.EnglishLaqab,
			BirthYear:    p.BirthYear,
			DeathYear:    p.DeathYear,
			FileURL:      p.FileURL,
			IsFeatured:   p.IsFeatured,
			CoupletCount: p.CoupletCount,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		}
	}
	return poets, nil
}

// ListTags returns every tag.
func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := listAll[tagDTO](ctx, c, "/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tags := make([]domain.Tag, len(rows))
	for i, t := range rows {
		tags[i] = domain.Tag{
			ID:           t.ID,
			Slug:         t.Slug,
			Label:        t.Label,
			TagType:      t.TagType,
			English:      domain.TagText(t.English),
			Sindhi:       domain.TagText(t.Sindhi),
			CoupletCount: t.CoupletCount,
			CreatedAt:    t.CreatedAt,
		}
	}
	return tags, nil
}

// listAll follows the pages of a listing endpoint.
func listAll[T any](ctx context.Context, c *Client, path string, filter url.Values) ([]T, error) {
	var all []T
	for n := 1; ; n++ {
		var p page[T]
		if err := c.do(ctx, http.MethodGet, path+"?"+pageQuery(n, listPageSize, filter), nil, &p); err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if n >= p.TotalPages || len(p.Items) == 0 {
			return all, nil
		}
	}
}
