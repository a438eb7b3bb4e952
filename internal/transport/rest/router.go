package rest

import "net/http"

// Handlers groups the route handlers registered by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Poet       *PoetHandler
	Couplet    *CoupletHandler
	Tag        *TagHandler
	Timeline   *TimelineHandler
	Dictionary *DictionaryHandler
	Security   *SecurityHandler
	Text       *TextHandler
}

// NewRouter registers every route. admin wraps the /api/admin routes.
func NewRouter(h Handlers, admin func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Public
	mux.HandleFunc("GET /api/poets", h.Poet.List)
	mux.HandleFunc("GET /api/poets/{slug}", h.Poet.Get)
	mux.HandleFunc("GET /api/couplets", h.Couplet.List)
	mux.HandleFunc("GET /api/couplets/{slug}", h.Couplet.Get)
	mux.HandleFunc("GET /api/tags", h.Tag.List)
	mux.HandleFunc("GET /api/tags/{slug}", h.Tag.Get)
	mux.HandleFunc("GET /api/timeline/periods", h.Timeline.ListPeriods)
	mux.HandleFunc("GET /api/timeline/periods/{slug}", h.Timeline.GetPeriod)
	mux.HandleFunc("GET /api/timeline/events", h.Timeline.ListEvents)
	mux.HandleFunc("POST /api/text/hesudhar", h.Text.Hesudhar)
	mux.HandleFunc("POST /api/text/romanize", h.Text.Romanize)
	mux.HandleFunc("POST /api/text/translate", h.Text.Translate)

	// Admin
	handleAdmin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, admin(fn))
	}
	handleAdmin("POST /api/admin/poets", h.Poet.Create)
	handleAdmin("PUT /api/admin/poets/{id}", h.Poet.Update)
	handleAdmin("DELETE /api/admin/poets/{id}", h.Poet.Delete)

	handleAdmin("POST /api/admin/couplets", h.Couplet.Create)
	handleAdmin("PUT /api/admin/couplets/{id}", h.Couplet.Update)
	handleAdmin("DELETE /api/admin/couplets/{id}", h.Couplet.Delete)

	handleAdmin("POST /api/admin/tags", h.Tag.Create)
	handleAdmin("PUT /api/admin/tags/{id}", h.Tag.Update)
	handleAdmin("DELETE /api/admin/tags/{id}", h.Tag.Delete)

	handleAdmin("POST /api/admin/timeline/periods", h.Timeline.CreatePeriod)
	handleAdmin("PUT /api/admin/timeline/periods/{id}", h.Timeline.UpdatePeriod)
	handleAdmin("DELETE /api/admin/timeline/periods/{id}", h.Timeline.DeletePeriod)
	handleAdmin("POST /api/admin/timeline/events", h.Timeline.CreateEvent)
	handleAdmin("PUT /api/admin/timeline/events/{id}", h.Timeline.UpdateEvent)
	handleAdmin("DELETE /api/admin/timeline/events/{id}", h.Timeline.DeleteEvent)

	handleAdmin("GET /api/admin/roman-words", h.Dictionary.List)
	handleAdmin("POST /api/admin/roman-words", h.Dictionary.Add)
	handleAdmin("POST /api/admin/roman-words/sync", h.Dictionary.Sync)

	handleAdmin("GET /api/admin/security/events", h.Security.Events)
	handleAdmin("GET /api/admin/security/summary", h.Security.Summary)

	return mux
}
