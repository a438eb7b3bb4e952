package domain

import "time"

// TagText is the localized title and description of a tag.
type TagText struct {
	Title   string
	Details string
}

// Tag labels couplets. Couplets link to tags through their comma-joined
// couplet_tags column, not through a join table.
type Tag struct {
	ID        int64
	Slug      string
	Label     string
	TagType   string
	English   TagText
	Sindhi    TagText
	CreatedAt time.Time

	CoupletCount int // computed field, not stored in DB
}

// Text returns the localized text for lang, falling back to English.
func (t *Tag) Text(lang Lang) TagText {
	if lang == LangSindhi && t.Sindhi.Title != "" {
		return t.Sindhi
	}
	return t.English
}

// TagUpdateParams holds a partial tag update.
type TagUpdateParams struct {
	Slug    *string
	Label   *string
	TagType *string
	English *TagText
	Sindhi  *TagText
}
