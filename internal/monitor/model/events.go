package model

import "time"

// DowntimeAlertEvent is emitted at most once per incident, when a site's
// consecutive failure count first reaches the alert threshold.
type DowntimeAlertEvent struct {
	Site   MonitoredSite
	Result CheckResult
}

// RecoveryEvent is emitted when a site returns healthy after an incident
// long enough to have crossed the recovery threshold.
type RecoveryEvent struct {
	Site     MonitoredSite
	Failures int // consecutive failures immediately before the recovery
}

// SiteUpdatedEvent is published best-effort after each persisted probe so
// interested clients can refresh without polling.
type SiteUpdatedEvent struct {
	SiteID     string    `json:"site_id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Suspended  bool      `json:"suspended"`
	StatusCode int       `json:"status_code"`
	DurationMs int64     `json:"duration_ms"`
	ObservedAt time.Time `json:"observed_at"`
}

// CheckEvent is the record written to the analytics stream for every probe.
type CheckEvent struct {
	SiteID        string    `json:"site_id"`
	Status        string    `json:"status"`
	StatusNumeric int       `json:"status_numeric"` // 1 while up, 0 otherwise
	StatusCode    int       `json:"status_code"`
	DurationMs    int64     `json:"duration_ms"`
	ObservedAt    time.Time `json:"observed_at"`
}
