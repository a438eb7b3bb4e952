package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/pkg/ctxutil"
)

type securityRecorder interface {
	Record(ctx context.Context, ev domain.SecurityEvent) error
}

// recordEvent stores a security event for the request. Failures are logged
// and never change the response.
func recordEvent(
	r *http.Request,
	recorder securityRecorder,
	logger *slog.Logger,
	typ domain.SecurityEventType,
	severity domain.Severity,
	details map[string]any,
) {
	if recorder == nil {
		return
	}

	ev := domain.SecurityEvent{
		Type:     typ,
		Severity: severity,
		IP:       clientIP(r),
		Path:     r.URL.Path,
		Details:  details,
	}
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		ev.UserID = &userID
	}

	// The request context may already be cancelled (client gone, panic path).
	ctx := context.WithoutCancel(r.Context())
	if err := recorder.Record(ctx, ev); err != nil {
		logger.WarnContext(ctx, "record security event",
			slog.String("type", typ.String()),
			slog.String("error", err.Error()),
		)
	}
}

// clientIP returns the first X-Forwarded-For hop, or the remote address host.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
