package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

// ImmediateChecker probes a freshly registered site once, before the
// periodic scheduler ever observes it, so the registering caller gets a
// fresh status synchronously. Each check runs on its own short-lived engine
// that is torn down when the check returns, keeping registration bursts
// away from the scheduler's shared browser.
type ImmediateChecker struct {
	logger    *zap.Logger
	timeout   time.Duration
	newEngine func() Engine
}

func NewImmediateChecker(logger *zap.Logger, timeout time.Duration, newEngine func() Engine) *ImmediateChecker {
	if newEngine == nil {
		newEngine = func() Engine { return NewBrowserEngine(logger) }
	}
	return &ImmediateChecker{
		logger:    logger,
		timeout:   timeout,
		newEngine: newEngine,
	}
}

// Check runs one probe with the same classification contract as the
// scheduler's probes. Engine trouble is folded into a failed result here;
// there is no long-lived engine to restart.
func (c *ImmediateChecker) Check(ctx context.Context, url string) model.CheckResult {
	eng := c.newEngine()
	defer func() {
		if err := eng.Shutdown(); err != nil {
			c.logger.Warn("failed to shut down immediate-check engine", zap.Error(err))
		}
	}()

	start := time.Now()
	if err := eng.EnsureHealthy(ctx); err != nil {
		c.logger.Error("immediate-check engine failed to start", zap.Error(err))
		return failedResult(start)
	}
	res, err := eng.Probe(ctx, url, c.timeout)
	if err != nil {
		c.logger.Error("immediate-check probe lost its engine", zap.String("url", url), zap.Error(err))
		return failedResult(start)
	}
	return res
}
