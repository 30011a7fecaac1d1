// Package middleware validates HTTP request bodies against a conform
// descriptor before they reach a handler.
package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reoring/conform"
	"github.com/reoring/conform/source"
)

// DefaultMaxBody caps the request body read by Validate.
const DefaultMaxBody int64 = 1 << 20

type ctxKeyBody struct{}

// ContextWithBody attaches a decoded, validated body to the context.
func ContextWithBody(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyBody{}, body{v})
}

// BodyFromContext retrieves the body stored by Validate.
func BodyFromContext(ctx context.Context) (any, bool) {
	v, ok := ctx.Value(ctxKeyBody{}).(body)
	if !ok {
		return nil, false
	}
	return v.v, true
}

// body boxes the decoded value so a JSON null body is still found.
type body struct{ v any }

// Issue is the wire form of one validation failure.
type Issue struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorPayload shapes a failed result for JSON responses. Paths are JSON
// Pointers.
func ErrorPayload(res conform.Result) map[string]any {
	issues := make([]Issue, 0, res.Len())
	for _, e := range res.Errors() {
		issues = append(issues, Issue{Path: e.Path.Pointer(), Kind: string(e.Kind), Message: e.Message})
	}
	return map[string]any{"issues": issues}
}

// Config tunes Validate.
type Config struct {
	MaxBody int64
	Numbers source.NumberMode
	Options []conform.Option
	Logger  *slog.Logger
}

// Validate decodes each JSON request body and checks it against t. Bodies
// over MaxBody get 413 and bodies that fail to decode get 400. Bodies that
// do not conform get 422 with an ErrorPayload. Conforming bodies are stored
// in the request context.
func Validate(t conform.Type, cfg Config, next http.Handler) http.Handler {
	if cfg.MaxBody <= 0 {
		cfg.MaxBody = DefaultMaxBody
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, cfg.MaxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.DebugContext(r.Context(), "request body too large", "limit", tooLarge.Limit)
				writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"error": "request body too large"})
				return
			}
			logger.DebugContext(r.Context(), "request body unreadable", "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unreadable body"})
			return
		}
		v, err := source.JSON(data, source.JSONOpt{Numbers: cfg.Numbers})
		if err != nil {
			logger.DebugContext(r.Context(), "request body rejected", "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
			return
		}
		res := conform.Validate(v, t, cfg.Options...)
		if !res.Valid() {
			logger.DebugContext(r.Context(), "request body does not conform", "type", t.Name(), "errors", res.Len())
			writeJSON(w, http.StatusUnprocessableEntity, ErrorPayload(res))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithBody(r.Context(), v)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
