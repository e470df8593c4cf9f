package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garnizeh/trivia/api"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.LoggingMiddleware(next)
	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "ok" {
		t.Fatalf("unexpected body: %q", string(b))
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.RequestID(r.Context())
	})
	handler := api.RequestIDMiddleware(next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || w.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected generated id echoed, ctx=%q header=%q", seen, w.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id")
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req)
	if seen != "client-id" || w2.Header().Get("X-Request-ID") != "client-id" {
		t.Fatalf("expected client id kept, got %q", seen)
	}
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	handler := api.CORSMiddleware(next)

	// OPTIONS should return 204 and not call next
	reqOpt := httptest.NewRequest(http.MethodOptions, "/cors", nil)
	wOpt := httptest.NewRecorder()
	handler.ServeHTTP(wOpt, reqOpt)
	resOpt := wOpt.Result()
	defer resOpt.Body.Close()
	if resOpt.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS, got %d", resOpt.StatusCode)
	}
	if called {
		t.Fatalf("preflight must not reach the next handler")
	}
	if got := resOpt.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}

	// GET should pass through and set headers
	reqGet := httptest.NewRequest(http.MethodGet, "/cors", nil)
	wGet := httptest.NewRecorder()
	handler.ServeHTTP(wGet, reqGet)
	resGet := wGet.Result()
	defer resGet.Body.Close()
	if resGet.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", resGet.StatusCode)
	}
	methods := resGet.Header.Get("Access-Control-Allow-Methods")
	for _, m := range []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"} {
		if !strings.Contains(methods, m) {
			t.Fatalf("expected Allow-Methods to include %s, got %q", m, methods)
		}
	}
	headers := resGet.Header.Get("Access-Control-Allow-Headers")
	if !strings.Contains(headers, "Content-Type") || !strings.Contains(headers, "Authorization") {
		t.Fatalf("unexpected Allow-Headers %q", headers)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	// handler that panics
	pan := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := api.RecoveryMiddleware(pan)
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 from panic recovery, got %d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode recovery body: %v", err)
	}
	if body["success"] != false || body["message"] != "unprocessable" {
		t.Fatalf("unexpected body for recovery: %v", body)
	}

	// normal handler should pass through
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler2 := api.RecoveryMiddleware(ok)
	w2 := httptest.NewRecorder()
	handler2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for normal path, got %d", w2.Result().StatusCode)
	}
}
