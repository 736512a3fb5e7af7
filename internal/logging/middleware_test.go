package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLogger_ContextLogger(t *testing.T) {
	t.Parallel()

	var got *Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetLoggerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := RequestLogger(NewLogger(false))(next)

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == nil {
		t.Fatalf("no logger placed in request context")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	t.Parallel()

	// Handlers called outside the middleware chain still get a logger.
	if GetLoggerFromContext(context.Background()) == nil {
		t.Fatalf("expected fallback logger, got nil")
	}
}

func TestResponseWriter_StatusCapture(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // second call is ignored

	if rw.statusCode != http.StatusTeapot {
		t.Fatalf("captured status: got %d, want %d", rw.statusCode, http.StatusTeapot)
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("written status: got %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if _, err := rw.Write([]byte("hello")); err != nil {
		t.Fatalf("write error: %v", err)
	}

	if rw.statusCode != http.StatusOK {
		t.Fatalf("captured status: got %d, want %d", rw.statusCode, http.StatusOK)
	}
	if rec.Body.String() != "hello" {
		t.Fatalf("body: got %q", rec.Body.String())
	}
}
