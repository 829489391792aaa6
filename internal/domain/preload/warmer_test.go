package preload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xpdesk/backend/internal/shared/types"
)

type staticPrograms []*types.ProgramConfig

func (p staticPrograms) List() []*types.ProgramConfig { return p }

func TestWarmFetchesRemoteRefs(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	programs := staticPrograms{
		{ID: "remote", ContentRef: srv.URL + "/content"},
		{ID: "local", ContentRef: "/apps/local/index.html"},
	}

	w := NewWarmer(programs, nil, time.Second)
	w.Warm(context.Background())

	if hits.Load() != 1 {
		t.Errorf("Expected exactly the remote ref fetched, got %d hits", hits.Load())
	}
}

func TestWarmToleratesFailures(t *testing.T) {
	programs := staticPrograms{
		{ID: "dead", ContentRef: "http://127.0.0.1:1/unreachable"},
	}

	w := NewWarmer(programs, nil, 200*time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Warm(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Warm should return after retries are exhausted")
	}
}

func TestWarmRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	w := NewWarmer(staticPrograms{{ID: "a", ContentRef: srv.URL}}, nil, time.Second)
	w.Warm(ctx) // must not hang or panic on a canceled context
}
