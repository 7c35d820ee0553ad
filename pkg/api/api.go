// Package api exposes the User-Agent generator over HTTP so test suites
// written in other languages can fetch fixtures.
//
//	GET /health                          liveness probe
//	GET /ready                           readiness probe
//	GET /user-agent?browser=             one User-Agent as text/plain
//	GET /user-agents?count=&browser=&seed=
//	                                     JSON array of fixture records
//	GET /distributions                   active distribution tables
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uagen/pkg/fixture"
	"github.com/dmitrymomot/uagen/pkg/httpserver"
	"github.com/dmitrymomot/uagen/pkg/logger"
	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

// MaxCount caps the number of records served per request.
const MaxCount = 1000

var ErrInvalidParam = errors.New("invalid query parameter")

// Handler serves the generator endpoints.
type Handler struct {
	registry *useragent.Registry
	gen      *useragent.Generator
	log      *slog.Logger
}

// NewHandler returns a Handler sampling from registry. Requests without a
// seed share src, which is wrapped with random.Locked.
func NewHandler(registry *useragent.Registry, src random.Source, log *slog.Logger) *Handler {
	if registry == nil {
		registry = useragent.DefaultRegistry()
	}
	if src == nil {
		src = random.NewRandom()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		registry: registry,
		gen:      useragent.NewGenerator(random.Locked(src), useragent.WithRegistry(registry)),
		log:      log,
	}
}

// Router mounts the endpoints on a chi router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	r.Get("/ready", httpserver.HealthCheckHandler(h.log, h.ready))
	r.Get("/user-agent", h.single)
	r.Get("/user-agents", h.batch)
	r.Get("/distributions", h.distributions)

	return r
}

// RequestIDExtractor adds chi's request id to log records.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := middleware.GetReqID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}

// ready fails when a registered browser would render as an empty string,
// which a tables override can introduce.
func (h *Handler) ready(context.Context) error {
	for _, b := range h.registry.BrowserWeights().Labels() {
		if !useragent.HasTemplate(b) {
			return fmt.Errorf("%w: %q", useragent.ErrNoTemplate, b)
		}
	}
	return nil
}

func (h *Handler) single(w http.ResponseWriter, r *http.Request) {
	browser := r.URL.Query().Get("browser")

	var agent useragent.Agent
	if browser == "" {
		agent = h.gen.Next()
	} else {
		var err error
		agent, err = h.gen.NextFor(browser)
		if err != nil {
			h.fail(w, r, http.StatusBadRequest, err)
			return
		}
	}
	if agent.UserAgent == "" {
		h.fail(w, r, http.StatusInternalServerError,
			fmt.Errorf("%w: browser %q on %q", useragent.ErrNoTemplate, agent.Browser, agent.OS))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(agent.UserAgent))
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count, err := intParam(q.Get("count"), 1)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if count < 1 || count > MaxCount {
		h.fail(w, r, http.StatusBadRequest,
			fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidParam, MaxCount))
		return
	}

	gen := h.gen
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			h.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w: seed: %q", ErrInvalidParam, s))
			return
		}
		gen = useragent.NewGenerator(random.New(seed), useragent.WithRegistry(h.registry))
	}

	var opts []fixture.BuilderOption
	if b := q.Get("browser"); b != "" {
		opts = append(opts, fixture.WithBrowser(b))
	}

	records, err := fixture.NewBuilder(gen, opts...).Batch(count)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, useragent.ErrNoTemplate) {
			status = http.StatusInternalServerError
		}
		h.fail(w, r, status, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, records)
}

func (h *Handler) distributions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.registry.Spec())
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "encode response", logger.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.log.WarnContext(r.Context(), "request rejected",
		logger.Error(err),
		slog.Int("status", status),
	)
	h.writeJSON(w, r, status, map[string]string{"error": err.Error()})
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidParam, s)
	}
	return n, nil
}
