package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
)

// ListTags returns one page of tags with localized text and usage counts.
func (s *Service) ListTags(ctx context.Context, f domain.TagFilter) (domain.Page[domain.Tag], error) {
	if f.Lang != nil && !f.Lang.IsValid() {
		return domain.Page[domain.Tag]{}, domain.NewValidationError("lang", "must be sd or en")
	}

	page, err := s.tags.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Tag]{}, fmt.Errorf("list tags: %w", err)
	}
	return page, nil
}

// GetTag returns a tag by slug.
func (s *Service) GetTag(ctx context.Context, slug string) (*domain.Tag, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	t, err := s.tags.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// CreateTag creates a tag and its translations in one transaction.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(input.Label)
	english := trimText(input.English)
	if english.Title == "" {
		english.Title = label
	}

	var created *domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.tags.Create(txCtx, &domain.Tag{
			Slug:    strings.TrimSpace(input.Slug),
			Label:   label,
			TagType: strings.TrimSpace(input.TagType),
			English: english,
			Sindhi:  trimText(input.Sindhi),
		})
		if createErr != nil {
			return fmt.Errorf("create tag: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created", slog.Int64("tag_id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

// UpdateTag applies a partial update in one transaction.
func (s *Service) UpdateTag(ctx context.Context, input UpdateTagInput) (*domain.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TagUpdateParams{}
	if input.Slug != nil {
		v := strings.TrimSpace(*input.Slug)
		params.Slug = &v
	}
	if input.Label != nil {
		v := strings.TrimSpace(*input.Label)
		params.Label = &v
	}
	if input.TagType != nil {
		v := strings.TrimSpace(*input.TagType)
		params.TagType = &v
	}
	if input.English != nil {
		v := trimText(*input.English)
		params.English = &v
	}
	if input.Sindhi != nil {
		v := trimText(*input.Sindhi)
		params.Sindhi = &v
	}

	var updated *domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.tags.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update tag: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag updated", slog.Int64("tag_id", input.ID))
	return updated, nil
}

// DeleteTag removes a tag. Couplets keep the slug in their tag column.
func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted", slog.Int64("tag_id", id))
	return nil
}
