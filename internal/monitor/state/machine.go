// Package state implements the per-site monitoring lifecycle as a pure
// transition function. It performs no I/O; the scheduler feeds it probe
// results and persists whatever comes back.
package state

import (
	"time"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

type Config struct {
	NormalInterval           time.Duration
	DowntimeMonitoringWindow time.Duration
	PauseWindow              time.Duration
	AlertThreshold           int
	RecoveryThreshold        int
	HistoryCap               int
}

// Events carries at most one alert and one recovery per transition.
type Events struct {
	Alert    *model.DowntimeAlertEvent
	Recovery *model.RecoveryEvent
}

func (c Config) alertThreshold() int {
	if c.AlertThreshold <= 0 {
		return 3
	}
	return c.AlertThreshold
}

func (c Config) recoveryThreshold() int {
	if c.RecoveryThreshold <= 0 {
		return 3
	}
	return c.RecoveryThreshold
}

// Apply computes the site's next snapshot from one probe result.
//
// The downtime deadline is anchored at the first failure of an incident, so
// a single bad probe can never suspend a site immediately. The notified
// flag is not set here even when an alert event is emitted; the caller sets
// it only after the delivery was actually attempted, which is what makes a
// failed delivery retry naturally on the next qualifying evaluation.
func Apply(site model.MonitoredSite, result model.CheckResult, now time.Time, cfg Config) (model.MonitoredSite, Events) {
	var events Events
	prior := site.ConsecutiveFailures

	checked := now
	site.LastCheckedAt = &checked

	if result.Healthy() {
		site.ConsecutiveFailures = 0
		site.Status = model.SiteStatusUp
		site.DowntimeDeadline = nil
		site.Suspended = false
		site.NotifiedForCurrentIncident = false
		site.NextCheckAt = now.Add(cfg.NormalInterval)
		if prior >= cfg.recoveryThreshold() {
			events.Recovery = &model.RecoveryEvent{Site: site, Failures: prior}
		}
	} else {
		site.ConsecutiveFailures = prior + 1
		site.Status = model.SiteStatusDown
		switch {
		case site.DowntimeDeadline == nil:
			deadline := now.Add(cfg.DowntimeMonitoringWindow)
			site.DowntimeDeadline = &deadline
			site.NextCheckAt = now.Add(cfg.NormalInterval)
		case now.Before(*site.DowntimeDeadline):
			site.NextCheckAt = now.Add(cfg.NormalInterval)
		default:
			site.Suspended = true
			site.NextCheckAt = now.Add(cfg.PauseWindow)
			site.DowntimeDeadline = nil
		}
		if site.ConsecutiveFailures >= cfg.alertThreshold() && !site.NotifiedForCurrentIncident {
			events.Alert = &model.DowntimeAlertEvent{Site: site, Result: result}
		}
	}

	site.AppendHistory(result, cfg.HistoryCap)
	return site, events
}

// Resume lifts a suspension without probing. Failure count and the
// notified flag are untouched and no event is emitted; the site simply
// rejoins normal scheduling immediately.
func Resume(site model.MonitoredSite, now time.Time) model.MonitoredSite {
	site.Suspended = false
	site.DowntimeDeadline = nil
	site.NextCheckAt = now
	return site
}
