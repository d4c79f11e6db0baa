package registration

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appcadastro/registro/binder"
	"github.com/appcadastro/registro/handler"
	"github.com/appcadastro/registro/pkg/logger"
	"github.com/appcadastro/registro/pkg/messages"
	"github.com/appcadastro/registro/pkg/ratelimiter"
	"github.com/appcadastro/registro/pkg/validator"
)

// Handler exposes the registration form over HTTP.
type Handler struct {
	svc     *Service
	catalog *messages.Catalog
	logger  *slog.Logger
	limiter *ratelimiter.Bucket
}

type HandlerOption func(*Handler)

func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithSubmitLimiter throttles registration submissions per client IP.
// Validation and schema requests are not limited.
func WithSubmitLimiter(b *ratelimiter.Bucket) HandlerOption {
	return func(h *Handler) {
		h.limiter = b
	}
}

func NewHandler(svc *Service, catalog *messages.Catalog, opts ...HandlerOption) *Handler {
	h := &Handler{svc: svc, catalog: catalog, logger: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle returns the module router:
//
//	GET  /          form schema with localised messages
//	POST /validate  validation markers for the submitted values
//	POST /          register a user, throttled when a limiter is configured
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.schema)
	r.Post("/validate", h.validate)
	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			key := ratelimiter.WithPrefix("registration:", ratelimiter.ByRemoteIP)
			r.Use(ratelimiter.Middleware(h.limiter, key, http.HandlerFunc(h.tooManyAttempts)))
		}
		r.Post("/", h.register)
	})
	return r
}

type fieldSchema struct {
	Name     string           `json:"name"`
	Messages []messages.Entry `json:"messages"`
}

type validationView struct {
	Valid    bool                        `json:"valid"`
	Errors   map[string][]validator.Kind `json:"errors"`
	Messages map[string][]string         `json:"messages,omitempty"`
}

func (h *Handler) schema(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	fields := make([]fieldSchema, 0, len(h.svc.Fields()))
	for _, name := range h.svc.Fields() {
		fields = append(fields, fieldSchema{Name: name, Messages: h.catalog.Field(lang, name)})
	}
	handler.Render(w, r, handler.JSON(
		map[string]any{"fields": fields},
		handler.WithMeta(map[string]any{"language": lang}),
	))
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	values, ok := h.bind(w, r, lang)
	if !ok {
		return
	}

	c := h.svc.Validate(values)
	errs := c.AllErrors()
	handler.Render(w, r, handler.JSON(validationView{
		Valid:    c.Valid(),
		Errors:   kinds(errs),
		Messages: h.catalog.Translate(lang, errs),
	}))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	values, ok := h.bind(w, r, lang)
	if !ok {
		return
	}

	out, err := h.svc.Register(r.Context(), values)
	switch {
	case err == nil:
		handler.Render(w, r, handler.JSON(out.User.View(),
			handler.WithStatus(http.StatusCreated),
			handler.WithMeta(map[string]any{
				"redirect": out.Redirect,
				"message":  h.catalog.Notice(lang, out.Notice),
			}),
		))

	case errors.Is(err, ErrInvalidForm):
		errs := out.Form.AllErrors()
		handler.Render(w, r, handler.JSONError(handler.ErrUnprocessableEntity,
			h.catalog.Notice(lang, NoticeInvalidForm),
			handler.WithDetails(h.catalog.Translate(lang, errs)),
			handler.WithMeta(map[string]any{"errors": kinds(errs)}),
		))

	case errors.Is(err, ErrAlreadyRegistered):
		handler.Render(w, r, handler.JSONError(handler.ErrConflict,
			h.catalog.Notice(lang, NoticeAlreadyRegistered),
		))

	default:
		h.logger.ErrorContext(r.Context(), "Registration failed", logger.Error(err))
		handler.Render(w, r, handler.JSONError(err,
			h.catalog.Notice(lang, NoticePersistFailed),
		))
	}
}

func (h *Handler) tooManyAttempts(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	h.logger.WarnContext(r.Context(), "Registration attempts throttled")
	handler.Render(w, r, handler.JSONError(handler.ErrTooManyRequests,
		h.catalog.Notice(lang, NoticeTooManyAttempts),
	))
}

func (h *Handler) bind(w http.ResponseWriter, r *http.Request, lang string) (map[string]string, bool) {
	values, err := binder.Values(r)
	if err == nil {
		return values, true
	}

	status := handler.ErrBadRequest
	if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
		status = handler.ErrUnsupportedMedia
	}
	h.logger.DebugContext(r.Context(), "Failed to read registration body", logger.Error(err))
	handler.Render(w, r, handler.JSONError(status, h.catalog.Notice(lang, NoticeInvalidForm)))
	return nil, false
}

func (h *Handler) language(w http.ResponseWriter, r *http.Request) string {
	lang := h.catalog.Match(r.Header.Get("Accept-Language"))
	w.Header().Set("Content-Language", lang)
	return lang
}

func kinds(errs map[string]validator.Result) map[string][]validator.Kind {
	out := make(map[string][]validator.Kind, len(errs))
	for field, res := range errs {
		out[field] = res.Kinds()
	}
	return out
}
