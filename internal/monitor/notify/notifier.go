package notify

import (
	"fmt"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/mail"
)

// Notifier delivers incident mails. Implementations return an error when
// delivery could not be attempted or was rejected; the gate decides what
// that means for retry.
type Notifier interface {
	SendDowntimeAlert(site model.MonitoredSite, result model.CheckResult) error
	SendRecoveryNotice(site model.MonitoredSite) error
}

type mailNotifier struct {
	sender mail.Sender
}

func (n *mailNotifier) SendDowntimeAlert(site model.MonitoredSite, result model.CheckResult) error {
	subject := fmt.Sprintf("[Uptime Sentinel] %s is DOWN", site.Name)
	text := generateAlertTextBody(site, result)
	html := generateAlertHTMLBody(site, result)
	if err := n.sender.SendMail([]string{site.NotifyEmail}, subject, html, text, nil); err != nil {
		return fmt.Errorf("MailNotifier.SendDowntimeAlert: %w", err)
	}
	return nil
}

func (n *mailNotifier) SendRecoveryNotice(site model.MonitoredSite) error {
	subject := fmt.Sprintf("[Uptime Sentinel] %s has recovered", site.Name)
	text := generateRecoveryTextBody(site)
	html := generateRecoveryHTMLBody(site)
	if err := n.sender.SendMail([]string{site.NotifyEmail}, subject, html, text, nil); err != nil {
		return fmt.Errorf("MailNotifier.SendRecoveryNotice: %w", err)
	}
	return nil
}

func generateAlertTextBody(site model.MonitoredSite, result model.CheckResult) string {
	return fmt.Sprintf(
		"--- DOWNTIME ALERT ---\n"+
			"Site: %s\n"+
			"URL: %s\n"+
			"Consecutive Failures: %d\n"+
			"Last Status Code: %d\n"+
			"Observed At: %s",
		site.Name,
		site.URL,
		site.ConsecutiveFailures,
		result.StatusCode,
		result.ObservedAt.Format("2006-01-02 15:04:05 MST"),
	)
}

func generateAlertHTMLBody(site model.MonitoredSite, result model.CheckResult) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Site:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">URL:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Consecutive Failures:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Last Status Code:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Observed At:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		site.Name,
		site.URL,
		site.ConsecutiveFailures,
		result.StatusCode,
		result.ObservedAt.Format("2006-01-02 15:04:05 MST"),
	)
}

func generateRecoveryTextBody(site model.MonitoredSite) string {
	return fmt.Sprintf(
		"--- RECOVERY ---\n"+
			"Site: %s\n"+
			"URL: %s\n"+
			"Status: %s",
		site.Name,
		site.URL,
		site.Status,
	)
}

func generateRecoveryHTMLBody(site model.MonitoredSite) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Site:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">URL:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Status:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat, site.Name, site.URL, site.Status)
}

func NewMailNotifier(sender mail.Sender) Notifier {
	return &mailNotifier{sender: sender}
}
