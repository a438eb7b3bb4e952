package workflow

import "fmt"

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a message for the operator, the workflow's replacement for UI
// toasts.
type Notice struct {
	Level   NoticeLevel
	Message string
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s] %s", n.Level, n.Message)
}

// notify appends a notice. Callers hold w.mu.
func (w *Workflow) notify(level NoticeLevel, format string, args ...any) {
	w.notices = append(w.notices, Notice{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Notices returns the notices accumulated so far.
func (w *Workflow) Notices() []Notice {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Notice(nil), w.notices...)
}

// DrainNotices returns the accumulated notices and clears them.
func (w *Workflow) DrainNotices() []Notice {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.notices
	w.notices = nil
	return out
}
