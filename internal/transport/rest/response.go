package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sindhipoetry/backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP statuses. Unknown errors are logged
// and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make(map[string]string, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "text service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// queryParams collects typed query parameters and the first parse error.
type queryParams struct {
	values map[string][]string
	errs   []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) str(key string) string {
	if v := q.values[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *queryParams) strPtr(key string) *string {
	if v := q.str(key); v != "" {
		return &v
	}
	return nil
}

func (q *queryParams) num(key string) int {
	p := q.numPtr(key)
	if p == nil {
		return 0
	}
	return *p
}

func (q *queryParams) numPtr(key string) *int {
	v := q.str(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return nil
	}
	return &n
}

func (q *queryParams) idPtr(key string) *int64 {
	v := q.str(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return nil
	}
	return &n
}

func (q *queryParams) boolPtr(key string) *bool {
	v := q.str(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be a boolean"})
		return nil
	}
	return &b
}

func (q *queryParams) timePtr(key string) *time.Time {
	v := q.str(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an RFC 3339 timestamp"})
		return nil
	}
	return &t
}

func (q *queryParams) duration(key string) time.Duration {
	v := q.str(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: fmt.Sprintf("must be a duration like %q", "24h")})
		return 0
	}
	return d
}

func (q *queryParams) lang() *domain.Lang {
	v := q.str("lang")
	if v == "" {
		return nil
	}
	l := domain.Lang(v)
	if !l.IsValid() {
		q.errs = append(q.errs, domain.FieldError{Field: "lang", Message: "must be sd or en"})
		return nil
	}
	return &l
}

// listQuery reads search, lang, sort, order, page and limit.
func (q *queryParams) listQuery() domain.ListQuery {
	return domain.ListQuery{
		Search:    q.str("search"),
		Lang:      q.lang(),
		SortBy:    q.str("sort"),
		SortOrder: q.str("order"),
		Page:      q.num("page"),
		Limit:     q.num("limit"),
	}
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}
