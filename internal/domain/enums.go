package domain

// Lang is the language of a content row.
type Lang string

const (
	LangSindhi  Lang = "sd"
	LangEnglish Lang = "en"
)

func (l Lang) String() string { return string(l) }

func (l Lang) IsValid() bool {
	switch l {
	case LangSindhi, LangEnglish:
		return true
	}
	return false
}

// SecurityEventType classifies a recorded security event.
type SecurityEventType string

const (
	SecurityEventAuthFailure SecurityEventType = "auth_failure"
	SecurityEventForbidden   SecurityEventType = "forbidden"
	SecurityEventAdminWrite  SecurityEventType = "admin_write"
	SecurityEventPanic       SecurityEventType = "panic"
)

func (t SecurityEventType) String() string { return string(t) }

func (t SecurityEventType) IsValid() bool {
	switch t {
	case SecurityEventAuthFailure, SecurityEventForbidden, SecurityEventAdminWrite, SecurityEventPanic:
		return true
	}
	return false
}

// Severity ranks security events for the monitoring dashboard.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// UserRole represents the authorization level carried in an access token.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
