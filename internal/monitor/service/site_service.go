package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/repository"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/state"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/mail"
)

// ImmediateProber runs the out-of-band probe performed at registration.
type ImmediateProber interface {
	Check(ctx context.Context, url string) model.CheckResult
}

type SiteService interface {
	RegisterSite(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error)
	GetSite(ctx context.Context, siteID string) (model.MonitoredSite, error)
	GetSites(ctx context.Context, status string, limit int, offset int) ([]model.MonitoredSite, error)
	DeleteSite(ctx context.Context, siteID string) error
	GetSiteUptimePercentage(ctx context.Context, siteID string, startDate time.Time, endDate time.Time) (float64, error)
	ReportSitesInformation(ctx context.Context, startDate time.Time, endDate time.Time, mail string) error
}

type siteService struct {
	siteRepo   repository.SiteRepository
	uptimeRepo repository.UptimeRepository
	prober     ImmediateProber
	mailSender mail.Sender
	stateCfg   state.Config
	now        func() time.Time
}

// RegisterSite creates the site in pending status with an immediately-due
// next check, then runs one out-of-band probe so the caller gets a fresh
// status instead of waiting for the next scheduler tick. The registration
// probe establishes status only; incident alerting starts with the
// periodic scheduler.
func (s *siteService) RegisterSite(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error) {
	now := s.now()
	site.Status = model.SiteStatusPending
	site.NextCheckAt = now

	created, err := s.siteRepo.CreateSite(ctx, site)
	if err != nil {
		return site, fmt.Errorf("SiteService.RegisterSite: %w", err)
	}

	if s.prober != nil {
		result := s.prober.Check(ctx, created.URL)
		updated, _ := state.Apply(created, result, s.now(), s.stateCfg)
		updated, err = s.siteRepo.Upsert(ctx, updated)
		if err != nil {
			return created, fmt.Errorf("SiteService.RegisterSite: %w", err)
		}
		return updated, nil
	}
	return created, nil
}

func (s *siteService) GetSite(ctx context.Context, siteID string) (model.MonitoredSite, error) {
	site, err := s.siteRepo.GetSiteByID(ctx, siteID)
	if err != nil {
		return site, fmt.Errorf("SiteService.GetSite: %w", err)
	}
	return site, nil
}

func (s *siteService) GetSites(ctx context.Context, status string, limit int, offset int) ([]model.MonitoredSite, error) {
	sites, err := s.siteRepo.GetSites(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("SiteService.GetSites: %w", err)
	}
	return sites, nil
}

// DeleteSite removes the site from the registry; the scheduler simply stops
// seeing it in due-selection from the next tick.
func (s *siteService) DeleteSite(ctx context.Context, siteID string) error {
	if err := s.siteRepo.DeleteSiteByID(ctx, siteID); err != nil {
		return fmt.Errorf("SiteService.DeleteSite: %w", err)
	}
	return nil
}

func (s *siteService) GetSiteUptimePercentage(ctx context.Context, siteID string, startDate time.Time, endDate time.Time) (float64, error) {
	res, err := s.uptimeRepo.GetSiteUptimePercentage(ctx, siteID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("SiteService.GetSiteUptimePercentage: %w", err)
	}
	return res, nil
}

// ReportSitesInformation mails a fleet-wide status summary for the given
// window to the given address.
func (s *siteService) ReportSitesInformation(ctx context.Context, startDate time.Time, endDate time.Time, mail string) error {
	sitesInfo, err := s.uptimeRepo.GetAllSitesHealthInformation(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("SiteService.ReportSitesInformation: %w", err)
	}
	textBody := generateReportTextBody(sitesInfo)
	htmlBody := generateReportHTMLBody(sitesInfo)
	subject := fmt.Sprintf("Sites Status Report From %s To %s", startDate, endDate.Add(-1*time.Second))
	err = s.mailSender.SendMail([]string{mail}, subject, htmlBody, textBody, nil)
	if err != nil {
		return fmt.Errorf("SiteService.ReportSitesInformation: %w", err)
	}
	return nil
}

func generateReportTextBody(sitesInfo repository.SitesHealthInformation) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Sites: %d\n"+
			"Up: %d\n"+
			"Down: %d\n"+
			"Pending: %d\n\n"+
			"Average Uptime Across All Sites: %.2f%%",
		sitesInfo.TotalSitesCnt,
		sitesInfo.UpSitesCnt,
		sitesInfo.DownSitesCnt,
		sitesInfo.PendingSitesCnt,
		sitesInfo.AverageUptimePercentage,
	)
}

func generateReportHTMLBody(sitesInfo repository.SitesHealthInformation) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Sites:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Up Sites:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Down Sites:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Pending Sites:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		sitesInfo.TotalSitesCnt,
		sitesInfo.UpSitesCnt,
		sitesInfo.DownSitesCnt,
		sitesInfo.PendingSitesCnt,
		sitesInfo.AverageUptimePercentage,
	)
}

func NewSiteService(siteRepo repository.SiteRepository, uptimeRepo repository.UptimeRepository, prober ImmediateProber, mailSender mail.Sender, stateCfg state.Config) SiteService {
	return &siteService{
		siteRepo:   siteRepo,
		uptimeRepo: uptimeRepo,
		prober:     prober,
		mailSender: mailSender,
		stateCfg:   stateCfg,
		now:        time.Now,
	}
}
