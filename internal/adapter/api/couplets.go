package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

type coupletRecord struct {
	PoetryID int64       `json:"poetry_id"`
	PoetID   int64       `json:"poet_id"`
	Slug     string      `json:"couplet_slug"`
	Tags     string      `json:"couplet_tags"`
	Text     string      `json:"couplet_text"`
	Lang     domain.Lang `json:"lang"`
}

type coupletDTO struct {
	coupletRecord
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCouplets inserts records atomically and returns the stored rows.
func (c *Client) CreateCouplets(ctx context.Context, records []domain.Couplet) ([]domain.Couplet, error) {
	req := make([]coupletRecord, len(records))
	for i, r := range records {
		req[i] = coupletRecord{
			PoetryID: r.PoetryID,
			PoetID:   r.PoetID,
			Slug:     r.Slug,
			Tags:     r.Tags,
			Text:     r.Text,
			Lang:     r.Lang,
		}
	}

	var resp []coupletDTO
	if err := c.do(ctx, http.MethodPost, "/api/admin/couplets", req, &resp); err != nil {
		return nil, fmt.Errorf("create couplets: %w", err)
	}

	out := make([]domain.Couplet, len(resp))
	for i, d := range resp {
		out[i] = domain.Couplet{
			ID:        d.ID,
			PoetryID:  d.PoetryID,
			PoetID:    d.PoetID,
			Slug:      d.Slug,
			Tags:      d.Tags,
			Text:      d.Text,
			Lang:      d.Lang,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		}
	}
	return out, nil
}

// DeleteCouplet removes one couplet row.
func (c *Client) DeleteCouplet(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/couplets/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete couplet %d: %w", id, err)
	}
	return nil
}
