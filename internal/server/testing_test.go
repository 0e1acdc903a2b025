package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/courtboard/internal/court"
	"github.com/playperu/courtboard/internal/customize"
)

type testEnv struct {
	router chi.Router
	boards *Registry
	broker *Broker
	custom *customize.Service
	logs   *syncBuffer
}

// syncBuffer collects log output written from handler goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitForLog blocks until a log line containing msg has been written.
func (e *testEnv) waitForLog(t *testing.T, msg string) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		for _, line := range strings.Split(e.logs.String(), "\n") {
			if strings.Contains(line, msg) {
				return line
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("no log line containing %q", msg)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	custom, err := customize.NewService(context.Background(), customize.NewMemoryStore())
	if err != nil {
		t.Fatalf("customize service: %v", err)
	}
	logs := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	broker := NewBroker()
	boards := NewRegistry(logger, broker, court.Dimensions{Width: 348, Height: 180})
	return &testEnv{
		router: NewRouter(logger, boards, broker, custom, "", nil),
		boards: boards,
		broker: broker,
		custom: custom,
		logs:   logs,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// createBoard makes a 300x600 board and returns its ID.
func (e *testEnv) createBoard(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/boards", CreateBoardRequest{Width: 300, Height: 600})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create board: %d %s", rec.Code, rec.Body.String())
	}
	var st BoardState
	decode(t, rec, &st)
	return st.ID
}

func (e *testEnv) command(t *testing.T, method, path string, body any) CommandResponse {
	t.Helper()
	rec := e.do(t, method, path, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("%s %s: %d %s", method, path, rec.Code, rec.Body.String())
	}
	var resp CommandResponse
	decode(t, rec, &resp)
	return resp
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
}
