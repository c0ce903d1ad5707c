package response

import (
	"time"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

type Response struct {
	Message string `json:"message"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}

type CheckResultResponse struct {
	ObservedAt time.Time `json:"observed_at"`
	StatusCode int       `json:"status_code"`
	DurationMs int64     `json:"duration_ms"`
}

type SiteInfoResponse struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	URL                 string                `json:"url"`
	NotifyEmail         string                `json:"notify_email,omitempty"`
	Status              string                `json:"status"`
	ConsecutiveFailures int                   `json:"consecutive_failures"`
	Suspended           bool                  `json:"suspended"`
	LastCheckedAt       *time.Time            `json:"last_checked_at,omitempty"`
	NextCheckAt         time.Time             `json:"next_check_at"`
	History             []CheckResultResponse `json:"history,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

func NewSiteInfoResponse(site model.MonitoredSite, includeHistory bool) SiteInfoResponse {
	res := SiteInfoResponse{
		ID:                  site.ID,
		Name:                site.Name,
		URL:                 site.URL,
		NotifyEmail:         site.NotifyEmail,
		Status:              site.Status,
		ConsecutiveFailures: site.ConsecutiveFailures,
		Suspended:           site.Suspended,
		LastCheckedAt:       site.LastCheckedAt,
		NextCheckAt:         site.NextCheckAt,
		CreatedAt:           site.CreatedAt,
		UpdatedAt:           site.UpdatedAt,
	}
	if includeHistory {
		for _, check := range site.History {
			res.History = append(res.History, CheckResultResponse{
				ObservedAt: check.ObservedAt,
				StatusCode: check.StatusCode,
				DurationMs: check.DurationMs,
			})
		}
	}
	return res
}
