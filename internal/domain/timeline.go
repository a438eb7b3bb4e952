package domain

import "time"

// PeriodText is the localized name and description of a timeline period.
type PeriodText struct {
	Name        string
	Description string
}

// TimelinePeriod is an era of Sindhi literary history.
type TimelinePeriod struct {
	ID         int64
	Slug       string
	StartYear  int
	EndYear    *int // nil = ongoing
	ColorCode  *string
	IsFeatured bool
	SortOrder  int
	English    PeriodText
	Sindhi     PeriodText
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Events []TimelineEvent
}

// Contains reports whether year falls inside the period.
func (p *TimelinePeriod) Contains(year int) bool {
	if year < p.StartYear {
		return false
	}
	return p.EndYear == nil || year <= *p.EndYear
}

// EventText is the localized text of a timeline event.
type EventText struct {
	Title       string
	Description string
	Location    string
}

// TimelineEvent is a dated event inside a period.
type TimelineEvent struct {
	ID         int64
	Slug       string
	PeriodID   int64
	Year       int
	EventType  string
	Importance int
	IsFeatured bool
	English    EventText
	Sindhi     EventText
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PeriodUpdateParams holds a partial timeline period update.
type PeriodUpdateParams struct {
	Slug       *string
	StartYear  *int
	EndYear    *int
	ClearEnd   bool
	ColorCode  *string
	IsFeatured *bool
	SortOrder  *int
	English    *PeriodText
	Sindhi     *PeriodText
}

// EventUpdateParams holds a partial timeline event update.
type EventUpdateParams struct {
	Slug       *string
	PeriodID   *int64
	Year       *int
	EventType  *string
	Importance *int
	IsFeatured *bool
	English    *EventText
	Sindhi     *EventText
}
