package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

var testConfig = Config{
	NormalInterval:           5 * time.Minute,
	DowntimeMonitoringWindow: 12 * time.Hour,
	PauseWindow:              6 * time.Hour,
	AlertThreshold:           3,
	RecoveryThreshold:        3,
	HistoryCap:               100,
}

func healthyResult(now time.Time) model.CheckResult {
	return model.CheckResult{ObservedAt: now, StatusCode: 200, DurationMs: 120}
}

func failedResult(now time.Time) model.CheckResult {
	return model.CheckResult{ObservedAt: now, StatusCode: 0, DurationMs: 30000}
}

func TestApply_HealthyResult(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(time.Hour)

	testCases := []struct {
		name         string
		site         model.MonitoredSite
		wantRecovery bool
	}{
		{
			name: "Success - Pending site comes up without recovery event",
			site: model.MonitoredSite{ID: "site-1", Status: model.SiteStatusPending},
		},
		{
			name: "Success - Up site stays up",
			site: model.MonitoredSite{ID: "site-1", Status: model.SiteStatusUp},
		},
		{
			name: "Success - Down site below recovery threshold emits no recovery",
			site: model.MonitoredSite{
				ID:                  "site-1",
				Status:              model.SiteStatusDown,
				ConsecutiveFailures: 2,
				DowntimeDeadline:    &deadline,
			},
		},
		{
			name: "Success - Down site at recovery threshold emits recovery",
			site: model.MonitoredSite{
				ID:                         "site-1",
				Status:                     model.SiteStatusDown,
				ConsecutiveFailures:        3,
				DowntimeDeadline:           &deadline,
				NotifiedForCurrentIncident: true,
			},
			wantRecovery: true,
		},
		{
			name: "Success - Suspended site clears suspension on healthy probe",
			site: model.MonitoredSite{
				ID:                  "site-1",
				Status:              model.SiteStatusDown,
				ConsecutiveFailures: 5,
				Suspended:           true,
			},
			wantRecovery: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prior := tc.site.ConsecutiveFailures
			updated, events := Apply(tc.site, healthyResult(now), now, testConfig)

			assert.Equal(t, model.SiteStatusUp, updated.Status)
			assert.Equal(t, 0, updated.ConsecutiveFailures)
			assert.Nil(t, updated.DowntimeDeadline)
			assert.False(t, updated.Suspended)
			assert.False(t, updated.NotifiedForCurrentIncident)
			assert.Equal(t, now.Add(testConfig.NormalInterval), updated.NextCheckAt)
			require.NotNil(t, updated.LastCheckedAt)
			assert.Equal(t, now, *updated.LastCheckedAt)
			assert.Nil(t, events.Alert)
			if tc.wantRecovery {
				require.NotNil(t, events.Recovery)
				assert.Equal(t, prior, events.Recovery.Failures)
			} else {
				assert.Nil(t, events.Recovery)
			}
		})
	}
}

func TestApply_UnhealthyResult(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success - First failure anchors the downtime deadline", func(t *testing.T) {
		site := model.MonitoredSite{ID: "site-1", Status: model.SiteStatusUp}

		updated, events := Apply(site, failedResult(now), now, testConfig)

		assert.Equal(t, model.SiteStatusDown, updated.Status)
		assert.Equal(t, 1, updated.ConsecutiveFailures)
		require.NotNil(t, updated.DowntimeDeadline)
		assert.Equal(t, now.Add(testConfig.DowntimeMonitoringWindow), *updated.DowntimeDeadline)
		assert.False(t, updated.Suspended)
		assert.Equal(t, now.Add(testConfig.NormalInterval), updated.NextCheckAt)
		assert.Nil(t, events.Alert)
		assert.Nil(t, events.Recovery)
	})

	t.Run("Success - Failures before the deadline keep the anchored deadline", func(t *testing.T) {
		deadline := now.Add(time.Hour)
		site := model.MonitoredSite{
			ID:                  "site-1",
			Status:              model.SiteStatusDown,
			ConsecutiveFailures: 1,
			DowntimeDeadline:    &deadline,
		}

		updated, events := Apply(site, failedResult(now), now, testConfig)

		assert.Equal(t, 2, updated.ConsecutiveFailures)
		require.NotNil(t, updated.DowntimeDeadline)
		assert.Equal(t, deadline, *updated.DowntimeDeadline)
		assert.False(t, updated.Suspended)
		assert.Nil(t, events.Alert)
	})

	t.Run("Success - Alert emitted once the threshold is reached", func(t *testing.T) {
		deadline := now.Add(time.Hour)
		site := model.MonitoredSite{
			ID:                  "site-1",
			Status:              model.SiteStatusDown,
			ConsecutiveFailures: 2,
			DowntimeDeadline:    &deadline,
		}

		updated, events := Apply(site, failedResult(now), now, testConfig)

		assert.Equal(t, 3, updated.ConsecutiveFailures)
		require.NotNil(t, events.Alert)
		assert.Equal(t, 3, events.Alert.Site.ConsecutiveFailures)
		assert.False(t, updated.NotifiedForCurrentIncident)
	})

	t.Run("Success - No second alert while the notified flag is set", func(t *testing.T) {
		deadline := now.Add(time.Hour)
		site := model.MonitoredSite{
			ID:                         "site-1",
			Status:                     model.SiteStatusDown,
			ConsecutiveFailures:        3,
			DowntimeDeadline:           &deadline,
			NotifiedForCurrentIncident: true,
		}

		_, events := Apply(site, failedResult(now), now, testConfig)

		assert.Nil(t, events.Alert)
	})

	t.Run("Success - Alert re-emitted when the flag was never set", func(t *testing.T) {
		deadline := now.Add(time.Hour)
		site := model.MonitoredSite{
			ID:                  "site-1",
			Status:              model.SiteStatusDown,
			ConsecutiveFailures: 4,
			DowntimeDeadline:    &deadline,
		}

		_, events := Apply(site, failedResult(now), now, testConfig)

		require.NotNil(t, events.Alert)
		assert.Equal(t, 5, events.Alert.Site.ConsecutiveFailures)
	})

	t.Run("Success - Failure past the deadline suspends the site", func(t *testing.T) {
		deadline := now.Add(-time.Minute)
		site := model.MonitoredSite{
			ID:                         "site-1",
			Status:                     model.SiteStatusDown,
			ConsecutiveFailures:        10,
			DowntimeDeadline:           &deadline,
			NotifiedForCurrentIncident: true,
		}

		updated, events := Apply(site, failedResult(now), now, testConfig)

		assert.True(t, updated.Suspended)
		assert.Nil(t, updated.DowntimeDeadline)
		assert.Equal(t, now.Add(testConfig.PauseWindow), updated.NextCheckAt)
		assert.Nil(t, events.Alert)
	})

	t.Run("Success - Failure exactly at the deadline suspends the site", func(t *testing.T) {
		deadline := now
		site := model.MonitoredSite{
			ID:                  "site-1",
			Status:              model.SiteStatusDown,
			ConsecutiveFailures: 6,
			DowntimeDeadline:    &deadline,
		}

		updated, _ := Apply(site, failedResult(now), now, testConfig)

		assert.True(t, updated.Suspended)
	})
}

func TestApply_DefaultThresholds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := Config{
		NormalInterval:           5 * time.Minute,
		DowntimeMonitoringWindow: 12 * time.Hour,
		PauseWindow:              6 * time.Hour,
	}
	deadline := now.Add(time.Hour)

	site := model.MonitoredSite{
		ID:                  "site-1",
		Status:              model.SiteStatusDown,
		ConsecutiveFailures: 2,
		DowntimeDeadline:    &deadline,
	}
	_, events := Apply(site, failedResult(now), now, cfg)
	require.NotNil(t, events.Alert)

	site.ConsecutiveFailures = 3
	_, events = Apply(site, healthyResult(now), now, cfg)
	require.NotNil(t, events.Recovery)
}

func TestApply_RecordsHistory(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	site := model.MonitoredSite{ID: "site-1"}

	result := healthyResult(now)
	updated, _ := Apply(site, result, now, testConfig)

	require.Len(t, updated.History, 1)
	assert.Equal(t, result, updated.History[0])
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	site := model.MonitoredSite{ID: "site-1", Status: model.SiteStatusUp}

	Apply(site, failedResult(now), now, testConfig)

	assert.Equal(t, model.SiteStatusUp, site.Status)
	assert.Equal(t, 0, site.ConsecutiveFailures)
	assert.Empty(t, site.History)
}

func TestResume(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)
	site := model.MonitoredSite{
		ID:                         "site-1",
		Status:                     model.SiteStatusDown,
		ConsecutiveFailures:        7,
		Suspended:                  true,
		DowntimeDeadline:           &deadline,
		NotifiedForCurrentIncident: true,
		NextCheckAt:                now.Add(5 * time.Hour),
	}

	resumed := Resume(site, now)

	assert.False(t, resumed.Suspended)
	assert.Nil(t, resumed.DowntimeDeadline)
	assert.Equal(t, now, resumed.NextCheckAt)
	assert.Equal(t, 7, resumed.ConsecutiveFailures)
	assert.True(t, resumed.NotifiedForCurrentIncident)
	assert.Equal(t, model.SiteStatusDown, resumed.Status)
}
