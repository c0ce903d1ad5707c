package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResult_Healthy(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{name: "200 is healthy", statusCode: 200, want: true},
		{name: "204 is healthy", statusCode: 204, want: true},
		{name: "301 is healthy", statusCode: 301, want: true},
		{name: "399 is healthy", statusCode: 399, want: true},
		{name: "400 is unhealthy", statusCode: 400, want: false},
		{name: "404 is unhealthy", statusCode: 404, want: false},
		{name: "500 is unhealthy", statusCode: 500, want: false},
		{name: "0 is unhealthy", statusCode: 0, want: false},
		{name: "199 is unhealthy", statusCode: 199, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := CheckResult{StatusCode: tc.statusCode}
			assert.Equal(t, tc.want, r.Healthy())
		})
	}
}

func TestMonitoredSite_AppendHistory(t *testing.T) {
	t.Run("Success - Appends below cap", func(t *testing.T) {
		site := MonitoredSite{}
		for i := 0; i < 5; i++ {
			site.AppendHistory(CheckResult{StatusCode: 200 + i}, 10)
		}
		require.Len(t, site.History, 5)
		assert.Equal(t, 200, site.History[0].StatusCode)
		assert.Equal(t, 204, site.History[4].StatusCode)
	})

	t.Run("Success - Evicts oldest entries at cap", func(t *testing.T) {
		site := MonitoredSite{}
		for i := 0; i < 7; i++ {
			site.AppendHistory(CheckResult{StatusCode: i}, 3)
		}
		require.Len(t, site.History, 3)
		assert.Equal(t, 4, site.History[0].StatusCode)
		assert.Equal(t, 6, site.History[2].StatusCode)
	})

	t.Run("Success - Non-positive cap falls back to default", func(t *testing.T) {
		site := MonitoredSite{}
		for i := 0; i < DefaultHistoryCap+10; i++ {
			site.AppendHistory(CheckResult{StatusCode: i}, 0)
		}
		require.Len(t, site.History, DefaultHistoryCap)
		assert.Equal(t, 10, site.History[0].StatusCode)
	})
}

func TestMonitoredSite_LastResult(t *testing.T) {
	t.Run("Success - Empty history", func(t *testing.T) {
		site := MonitoredSite{}
		_, ok := site.LastResult()
		assert.False(t, ok)
	})

	t.Run("Success - Returns newest entry", func(t *testing.T) {
		now := time.Now()
		site := MonitoredSite{}
		site.AppendHistory(CheckResult{StatusCode: 500}, 10)
		site.AppendHistory(CheckResult{ObservedAt: now, StatusCode: 200}, 10)

		last, ok := site.LastResult()
		require.True(t, ok)
		assert.Equal(t, 200, last.StatusCode)
		assert.Equal(t, now, last.ObservedAt)
	})
}
