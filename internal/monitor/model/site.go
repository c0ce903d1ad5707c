package model

import "time"

const (
	SiteStatusPending = "pending"
	SiteStatusUp      = "up"
	SiteStatusDown    = "down"
)

// DefaultHistoryCap bounds per-site check retention; insertion beyond the
// cap evicts the oldest entry.
const DefaultHistoryCap = 100

// CheckResult is one observation of a site. StatusCode 0 means the probe
// never produced an HTTP status: network error, timeout, or a health
// endpoint whose body failed the content check.
type CheckResult struct {
	ObservedAt time.Time `json:"observed_at"`
	StatusCode int       `json:"status_code"`
	DurationMs int64     `json:"duration_ms"`
}

// Healthy reports whether the observation counts as a passing check.
func (r CheckResult) Healthy() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}

type MonitoredSite struct {
	ID                         string `gorm:"default:(-)"`
	Name                       string
	URL                        string
	NotifyEmail                string
	Status                     string
	ConsecutiveFailures        int
	LastCheckedAt              *time.Time
	NextCheckAt                time.Time
	DowntimeDeadline           *time.Time
	Suspended                  bool
	NotifiedForCurrentIncident bool
	History                    []CheckResult `gorm:"serializer:json"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// AppendHistory records r as the newest entry, evicting the oldest entries
// so the history never exceeds cap. A cap <= 0 falls back to
// DefaultHistoryCap.
func (s *MonitoredSite) AppendHistory(r CheckResult, cap int) {
	if cap <= 0 {
		cap = DefaultHistoryCap
	}
	s.History = append(s.History, r)
	if overflow := len(s.History) - cap; overflow > 0 {
		s.History = append([]CheckResult(nil), s.History[overflow:]...)
	}
}

// LastResult returns the newest history entry, if any.
func (s *MonitoredSite) LastResult() (CheckResult, bool) {
	if len(s.History) == 0 {
		return CheckResult{}, false
	}
	return s.History[len(s.History)-1], true
}
