package rest

import (
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func toPage[S, T any](p domain.Page[S], conv func(S) T) pageResponse[T] {
	items := make([]T, len(p.Items))
	for i, it := range p.Items {
		items[i] = conv(it)
	}
	return pageResponse[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func mapSlice[S, T any](in []S, conv func(S) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}
	return out
}

// ---------------------------------------------------------------------------
// poets
// ---------------------------------------------------------------------------

type poetResponse struct {
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

func toPoetResponse(p domain.Poet) poetResponse {
	return poetResponse{
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

// ---------------------------------------------------------------------------
// couplets
// ---------------------------------------------------------------------------

type coupletResponse struct {
	ID        int64         `json:"id"`
	PoetryID  int64         `json:"poetry_id"`
	PoetID    int64         `json:"poet_id"`
	Slug      string        `json:"couplet_slug"`
	Tags      string        `json:"couplet_tags"`
	Text      string        `json:"couplet_text"`
	Lang      domain.Lang   `json:"lang"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Poet      *poetResponse `json:"poet,omitempty"`
}

func toCoupletResponse(c domain.Couplet) coupletResponse {
	out := coupletResponse{
		ID:        c.ID,
		PoetryID:  c.PoetryID,
		PoetID:    c.PoetID,
		Slug:      c.Slug,
		Tags:      c.Tags,
		Text:      c.Text,
		Lang:      c.Lang,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Poet != nil {
		p := toPoetResponse(*c.Poet)
		out.Poet = &p
	}
	return out
}

// coupletRecord is the write shape of a couplet row.
type coupletRecord struct {
	PoetryID int64       `json:"poetry_id"`
	PoetID   int64       `json:"poet_id"`
	Slug     string      `json:"couplet_slug"`
	Tags     string      `json:"couplet_tags"`
	Text     string      `json:"couplet_text"`
	Lang     domain.Lang `json:"lang"`
}

// ---------------------------------------------------------------------------
// tags
// ---------------------------------------------------------------------------

type tagText struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type tagResponse struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	Label        string    `json:"label"`
	TagType      string    `json:"tag_type"`
	English      tagText   `json:"english"`
	Sindhi       tagText   `json:"sindhi"`
	CoupletCount int       `json:"couplet_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func toTagResponse(t domain.Tag) tagResponse {
	return tagResponse{
		ID:           t.ID,
		Slug:         t.Slug,
		Label:        t.Label,
		TagType:      t.TagType,
		English:      tagText(t.English),
		Sindhi:       tagText(t.Sindhi),
		CoupletCount: t.CoupletCount,
		CreatedAt:    t.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// timeline
// ---------------------------------------------------------------------------

type periodText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type eventText struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type periodResponse struct {
	ID         int64           `json:"id"`
	Slug       string          `json:"period_slug"`
	StartYear  int             `json:"start_year"`
	EndYear    *int            `json:"end_year"`
	ColorCode  *string         `json:"color_code"`
	IsFeatured bool            `json:"is_featured"`
	SortOrder  int             `json:"sort_order"`
	English    periodText      `json:"english"`
	Sindhi     periodText      `json:"sindhi"`
	Events     []eventResponse `json:"events,omitempty"`
}

type eventResponse struct {
	ID         int64     `json:"id"`
	Slug       string    `json:"event_slug"`
	PeriodID   int64     `json:"period_id"`
	Year       int       `json:"event_year"`
	EventType  string    `json:"event_type"`
	Importance int       `json:"importance"`
	IsFeatured bool      `json:"is_featured"`
	English    eventText `json:"english"`
	Sindhi     eventText `json:"sindhi"`
}

func toPeriodResponse(p domain.TimelinePeriod) periodResponse {
	out := periodResponse{
		ID:         p.ID,
		Slug:       p.Slug,
		StartYear:  p.StartYear,
		EndYear:    p.EndYear,
		ColorCode:  p.ColorCode,
		IsFeatured: p.IsFeatured,
		SortOrder:  p.SortOrder,
		English:    periodText(p.English),
		Sindhi:     periodText(p.Sindhi),
	}
	if len(p.Events) > 0 {
		out.Events = mapSlice(p.Events, toEventResponse)
	}
	return out
}

func toEventResponse(e domain.TimelineEvent) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Slug:       e.Slug,
		PeriodID:   e.PeriodID,
		Year:       e.Year,
		EventType:  e.EventType,
		Importance: e.Importance,
		IsFeatured: e.IsFeatured,
		English:    eventText(e.English),
		Sindhi:     eventText(e.Sindhi),
	}
}

// ---------------------------------------------------------------------------
// dictionary
// ---------------------------------------------------------------------------

type romanWordResponse struct {
	ID        int64      `json:"id"`
	WordSD    string     `json:"word_sd"`
	WordRoman string     `json:"word_roman"`
	SyncedAt  *time.Time `json:"synced_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func toRomanWordResponse(w domain.RomanWord) romanWordResponse {
	return romanWordResponse{
		ID:        w.ID,
		WordSD:    w.WordSD,
		WordRoman: w.WordRoman,
		SyncedAt:  w.SyncedAt,
		CreatedAt: w.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// security
// ---------------------------------------------------------------------------

type securityEventResponse struct {
	ID        int64          `json:"id"`
	Type      string         `json:"event_type"`
	Severity  string         `json:"severity"`
	IP        string         `json:"ip"`
	Path      string         `json:"path"`
	UserID    *string        `json:"user_id"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toSecurityEventResponse(e domain.SecurityEvent) securityEventResponse {
	out := securityEventResponse{
		ID:        e.ID,
		Type:      e.Type.String(),
		Severity:  e.Severity.String(),
		IP:        e.IP,
		Path:      e.Path,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
	if e.UserID != nil {
		s := e.UserID.String()
		out.UserID = &s
	}
	return out
}

type securitySummaryResponse struct {
	Since  time.Time      `json:"since"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}

func toSecuritySummaryResponse(s domain.SecuritySummary) securitySummaryResponse {
	by := make(map[string]int, len(s.ByType))
	for t, n := range s.ByType {
		by[t.String()] = n
	}
	return securitySummaryResponse{Since: s.Since, Total: s.Total, ByType: by}
}
