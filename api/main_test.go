package api_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/garnizeh/trivia/api"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	// verify no goroutine leaks across tests in this package
	goleak.VerifyTestMain(m)
}
