package preload

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/shared/types"
)

// ProgramLister enumerates registered programs
type ProgramLister interface {
	List() []*types.ProgramConfig
}

// Warmer issues best-effort GET requests against remote program content so
// the first window open hits a warm upstream cache. Failures are logged
// and otherwise ignored; warming never blocks startup.
type Warmer struct {
	programs ProgramLister
	logger   *zap.Logger
	client   *retryablehttp.Client
	timeout  time.Duration
}

// NewWarmer creates a content warmer over the given program registry
func NewWarmer(programs ProgramLister, logger *zap.Logger, timeout time.Duration) *Warmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	return &Warmer{
		programs: programs,
		logger:   logger,
		client:   client,
		timeout:  timeout,
	}
}

// Warm fetches every remote content ref concurrently and returns once all
// attempts finish or ctx is done. Local refs are skipped.
func (w *Warmer) Warm(ctx context.Context) {
	var wg sync.WaitGroup
	for _, cfg := range w.programs.List() {
		ref := cfg.ContentRef
		if !isRemote(ref) {
			continue
		}
		wg.Add(1)
		go func(program, url string) {
			defer wg.Done()
			w.fetch(ctx, program, url)
		}(cfg.ID, ref)
	}
	wg.Wait()
}

// WarmAsync starts warming in the background and returns immediately
func (w *Warmer) WarmAsync(ctx context.Context) {
	go w.Warm(ctx)
}

func (w *Warmer) fetch(ctx context.Context, program, url string) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		w.logger.Debug("Skipping unwarmable content ref",
			zap.String("program", program),
			zap.String("url", url),
			zap.Error(err),
		)
		return
	}

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Debug("Content warming failed",
			zap.String("program", program),
			zap.String("url", url),
			zap.Error(err),
		)
		return
	}
	resp.Body.Close()

	w.logger.Debug("Content warmed",
		zap.String("program", program),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
	)
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
