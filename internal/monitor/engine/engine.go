// Package engine performs network probes against monitored sites through a
// long-lived headless browser. Each probe runs in its own disposable
// incognito session so no cookies, cache, or page state leaks between
// probes, and every session is released on every exit path.
package engine

import (
	"context"
	"time"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

// Engine executes probes against a shared browser and owns its lifecycle.
//
// Probe never returns an error for ordinary network, timeout, HTTP, or
// content-check failures; those come back as a CheckResult with StatusCode
// 0 and the elapsed duration. The returned error is non-nil only when the
// engine itself is unusable (ErrEngineUnavailable), which tells the caller
// to restart it.
type Engine interface {
	Probe(ctx context.Context, url string, timeout time.Duration) (model.CheckResult, error)
	EnsureHealthy(ctx context.Context) error
	Restart(ctx context.Context) error
	Shutdown() error
	LiveSessions() int64
}
