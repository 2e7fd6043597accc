package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go.jacobcolvin.com/jsonops/jsonvalue"
	"go.jacobcolvin.com/jsonops/version"
)

const (
	headerAPIKey    = "X-API-Key"
	headerMergeMode = "X-Merge-Mode"
	queryAPIKey     = "code"
)

// Handler serves the HTTP API.
//
// Create instances with [NewHandler] or [Config.NewHandler].
type Handler struct {
	router chi.Router
	logger *slog.Logger
	doc    *Document
	cfg    Config
}

// NewHandler builds the API routes for cfg. A nil logger discards logs.
func NewHandler(cfg Config, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	doc, err := NewDocument(version.Get().Version)
	if err != nil {
		return nil, fmt.Errorf("building api description: %w", err)
	}

	h := &Handler{
		logger: logger,
		doc:    doc,
		cfg:    cfg,
	}

	h.router = h.routes()

	return h, nil
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(LogRequests(h.logger))
	r.Use(Recover(h.logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorResponse{Error: "Not found."})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed."})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/swagger.json", h.swaggerJSON)
		r.Get("/swagger.yaml", h.swaggerYAML)
		r.Get("/swagger", h.swaggerUI)
		r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, version.Get())
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireKey(h.cfg.APIKey))
			r.Use(LimitBody(h.cfg.MaxBodyBytes))

			for _, op := range h.operations() {
				r.Post("/"+op.name, h.serve(op))
			}
		})
	})

	return r
}

// serve adapts op to an [http.HandlerFunc]: it reads and parses the body,
// runs op, and maps failures onto the error envelope.
func (h *Handler) serve(op operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			h.fail(w, r, op, err)
			return
		}

		if len(data) == 0 {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: op.bodyMissing})
			return
		}

		body, err := jsonvalue.Parse(data)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: op.bodyInvalid})
			return
		}

		rep, err := op.run(r, body)
		if err != nil {
			h.fail(w, r, op, err)
			return
		}

		rep.write(w)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op operation, err error) {
	status, msg, ok := statusOf(err)
	if ok {
		h.logger.DebugContext(r.Context(), "rejected request",
			slog.String("operation", op.name),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		writeError(w, status, ErrorResponse{Error: msg})

		return
	}

	h.logger.ErrorContext(r.Context(), "operation failed",
		slog.String("operation", op.name),
		slog.String("request_id", GetRequestID(r.Context())),
		slog.Any("error", err),
	)
	writeError(w, http.StatusInternalServerError, ErrorResponse{Error: op.internal, Details: err.Error()})
}
