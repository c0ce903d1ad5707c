package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

// Non-essential subresources are aborted during navigation to keep probe
// latency down; the probe only needs the document status and body text.
var blockedResourceTypes = map[network.ResourceType]bool{
	network.ResourceTypeImage:      true,
	network.ResourceTypeStylesheet: true,
	network.ResourceTypeFont:       true,
	network.ResourceTypeMedia:      true,
}

// BrowserEngine drives one shared headless browser. Probes open a fresh
// incognito browser context each, so sessions share no cookies or cache.
// The browser can be torn down and relaunched at any time without touching
// site state, which lives entirely in the registry.
type BrowserEngine struct {
	logger *zap.Logger

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browser       context.Context
	browserCancel context.CancelFunc

	sessions atomic.Int64
}

func NewBrowserEngine(logger *zap.Logger) *BrowserEngine {
	return &BrowserEngine{logger: logger}
}

func (e *BrowserEngine) launchLocked() error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return fmt.Errorf("BrowserEngine.launch: %w: %v", apperrors.ErrEngineUnavailable, err)
	}
	e.allocCancel = allocCancel
	e.browser = browserCtx
	e.browserCancel = browserCancel
	return nil
}

func (e *BrowserEngine) teardownLocked() {
	if e.browserCancel != nil {
		e.browserCancel()
		e.browserCancel = nil
	}
	if e.allocCancel != nil {
		e.allocCancel()
		e.allocCancel = nil
	}
	e.browser = nil
}

// EnsureHealthy launches the browser if it has never started or has died.
func (e *BrowserEngine) EnsureHealthy(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.browser != nil && e.browser.Err() == nil {
		return nil
	}
	e.teardownLocked()
	return e.launchLocked()
}

// Restart unconditionally tears the browser down and relaunches it.
func (e *BrowserEngine) Restart(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teardownLocked()
	return e.launchLocked()
}

func (e *BrowserEngine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teardownLocked()
	return nil
}

// LiveSessions reports how many probe sessions are currently open. It
// returns to zero between probes; a non-zero value at rest means a session
// leaked.
func (e *BrowserEngine) LiveSessions() int64 {
	return e.sessions.Load()
}

// Probe navigates to the URL in a disposable incognito session and
// classifies the outcome. Ordinary failures are folded into the result;
// only the browser itself dying surfaces as an error.
func (e *BrowserEngine) Probe(ctx context.Context, rawURL string, timeout time.Duration) (model.CheckResult, error) {
	start := time.Now()
	e.mu.Lock()
	browser := e.browser
	e.mu.Unlock()
	if browser == nil || browser.Err() != nil {
		return failedResult(start), fmt.Errorf("BrowserEngine.Probe: %w", apperrors.ErrEngineUnavailable)
	}

	e.sessions.Add(1)
	defer e.sessions.Add(-1)

	tabCtx, cancelTab := chromedp.NewContext(browser, chromedp.WithNewBrowserContext())
	defer cancelTab()
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	var docStatus atomic.Int64
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		switch ev := ev.(type) {
		case *network.EventResponseReceived:
			if ev.Type == network.ResourceTypeDocument {
				docStatus.CompareAndSwap(0, ev.Response.Status)
			}
		case *fetch.EventRequestPaused:
			go e.resolvePausedRequest(tabCtx, ev)
		}
	})

	var body string
	err := chromedp.Run(tabCtx,
		network.Enable(),
		fetch.Enable(),
		chromedp.Navigate(rawURL),
		chromedp.Text("body", &body, chromedp.ByQuery, chromedp.AtLeast(0)),
	)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		if browser.Err() != nil {
			e.logger.Error("browser died during probe", zap.String("url", rawURL), zap.Error(err))
			res := failedResult(start)
			res.DurationMs = elapsed
			return res, fmt.Errorf("BrowserEngine.Probe: %w", apperrors.ErrEngineUnavailable)
		}
		e.logger.Debug("probe failed", zap.String("url", rawURL), zap.Error(err))
		res := failedResult(start)
		res.DurationMs = elapsed
		return res, nil
	}

	return model.CheckResult{
		ObservedAt: start,
		StatusCode: classifyStatus(rawURL, int(docStatus.Load()), body),
		DurationMs: elapsed,
	}, nil
}

func (e *BrowserEngine) resolvePausedRequest(tabCtx context.Context, ev *fetch.EventRequestPaused) {
	c := chromedp.FromContext(tabCtx)
	execCtx := cdp.WithExecutor(tabCtx, c.Target)
	if blockedResourceTypes[ev.ResourceType] {
		_ = fetch.FailRequest(ev.RequestID, network.ErrorReasonBlockedByClient).Do(execCtx)
		return
	}
	_ = fetch.ContinueRequest(ev.RequestID).Do(execCtx)
}

func failedResult(start time.Time) model.CheckResult {
	return model.CheckResult{
		ObservedAt: start,
		StatusCode: 0,
		DurationMs: time.Since(start).Milliseconds(),
	}
}
