package notify

import (
	"go.uber.org/zap"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

// Gate turns state-machine events into outbound deliveries. The at-most-one
// alert per incident guarantee does not live here; it lives in the
// NotifiedForCurrentIncident flag, which the scheduler sets only when
// OnDowntimeAlert reports the delivery was attempted. A failed delivery
// therefore retries on the next evaluation that still meets the threshold.
type Gate struct {
	notifier Notifier
	logger   *zap.Logger
}

func NewGate(notifier Notifier, logger *zap.Logger) *Gate {
	return &Gate{
		notifier: notifier,
		logger:   logger,
	}
}

// OnDowntimeAlert attempts the incident's alert and reports whether the
// attempt went through.
func (g *Gate) OnDowntimeAlert(ev model.DowntimeAlertEvent) bool {
	if ev.Site.NotifyEmail == "" {
		return false
	}
	if err := g.notifier.SendDowntimeAlert(ev.Site, ev.Result); err != nil {
		g.logger.Error("failed to deliver downtime alert",
			zap.String("site_id", ev.Site.ID),
			zap.Error(err))
		return false
	}
	g.logger.Info("downtime alert delivered",
		zap.String("site_id", ev.Site.ID),
		zap.Int("consecutive_failures", ev.Site.ConsecutiveFailures))
	return true
}

// OnRecovery sends the recovery notice best-effort, regardless of whether
// the incident's alert ever succeeded.
func (g *Gate) OnRecovery(ev model.RecoveryEvent) bool {
	if ev.Site.NotifyEmail == "" {
		return false
	}
	if err := g.notifier.SendRecoveryNotice(ev.Site); err != nil {
		g.logger.Error("failed to deliver recovery notice",
			zap.String("site_id", ev.Site.ID),
			zap.Error(err))
		return false
	}
	g.logger.Info("recovery notice delivered", zap.String("site_id", ev.Site.ID))
	return true
}
