package domain

import (
	"time"

	"github.com/google/uuid"
)

// SecurityEvent is a recorded security-relevant request outcome.
type SecurityEvent struct {
	ID        int64
	Type      SecurityEventType
	Severity  Severity
	IP        string
	Path      string
	UserID    *uuid.UUID
	Details   map[string]any
	CreatedAt time.Time
}

// SecuritySummary aggregates security events over a time window.
type SecuritySummary struct {
	Since  time.Time
	Total  int
	ByType map[SecurityEventType]int
}

// SecurityEventFilter narrows a security event listing.
type SecurityEventFilter struct {
	Type     *SecurityEventType
	Severity *Severity
	Since    *time.Time
	Page     int
	Limit    int
}
