package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error)
}

// Auth authenticates Bearer tokens. Requests without a token pass through
// anonymously; an invalid token is rejected with 401 and recorded as an
// auth_failure security event.
func Auth(validator tokenValidator, recorder securityRecorder, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				recordEvent(r, recorder, logger, domain.SecurityEventAuthFailure, domain.SeverityMedium,
					map[string]any{"method": r.Method})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards admin routes: anonymous callers get 401, non-admins get
// 403 with a forbidden event, and admin writes are recorded as admin_write.
func RequireAdmin(recorder securityRecorder, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				recordEvent(r, recorder, logger, domain.SecurityEventForbidden, domain.SeverityMedium,
					map[string]any{"method": r.Method, "role": ctxutil.UserRoleFromCtx(r.Context()).String()})
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				recordEvent(r, recorder, logger, domain.SecurityEventAdminWrite, domain.SeverityLow,
					map[string]any{"method": r.Method})
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
