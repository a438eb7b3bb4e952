package domain

import (
	"strings"
	"time"
)

// StandalonePoetryID is the poetry_id of a couplet that has no parent poem.
const StandalonePoetryID int64 = 0

// tagSeparator joins tag slugs into the couplet_tags column.
const tagSeparator = ", "

// Couplet is a single language variant of a couplet. A logical couplet has
// one row per language sharing CoupletSlug and PoetID.
type Couplet struct {
	ID        int64
	PoetryID  int64
	PoetID    int64
	Slug      string
	Tags      string // comma-joined tag slugs
	Text      string
	Lang      Lang
	CreatedAt time.Time
	UpdatedAt time.Time

	Poet *Poet // optional join, nil unless requested
}

// IsStandalone reports whether the couplet has no parent poem.
func (c *Couplet) IsStandalone() bool {
	return c.PoetryID == StandalonePoetryID
}

// TagList splits the stored tag column back into slugs.
func (c *Couplet) TagList() []string {
	return SplitTags(c.Tags)
}

// JoinTags joins tag slugs with ", ", dropping blanks and duplicates while
// keeping the first-seen order.
func JoinTags(tags []string) string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return strings.Join(out, tagSeparator)
}

// SplitTags parses a comma-joined tag column. Returns an empty slice (not nil)
// for an empty column.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CoupletUpdateParams holds a partial couplet update.
type CoupletUpdateParams struct {
	PoetID *int64
	Slug   *string
	Tags   *string
	Text   *string
}
