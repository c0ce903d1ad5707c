package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/mail"
)

func TestMailNotifier_SendDowntimeAlert(t *testing.T) {
	site := model.MonitoredSite{
		Name:                "Example",
		URL:                 "https://example.com",
		NotifyEmail:         "ops@example.com",
		ConsecutiveFailures: 3,
	}
	result := model.CheckResult{
		StatusCode: 503,
		ObservedAt: time.Date(2025, 5, 1, 12, 30, 0, 0, time.UTC),
	}

	testCases := []struct {
		name          string
		setupMocks    func(sender *mail.MockSender)
		expectedError string
	}{
		{
			name: "Delivered",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail([]string{"ops@example.com"}, "[Uptime Sentinel] Example is DOWN", gomock.Any(), gomock.Any(), nil).
					DoAndReturn(func(_ []string, _ string, htmlBody, textBody string, _ []mail.Attachment) error {
						assert.Contains(t, textBody, "--- DOWNTIME ALERT ---")
						assert.Contains(t, textBody, "Site: Example")
						assert.Contains(t, textBody, "URL: https://example.com")
						assert.Contains(t, textBody, "Consecutive Failures: 3")
						assert.Contains(t, textBody, "Last Status Code: 503")
						assert.Contains(t, textBody, "2025-05-01 12:30:00 UTC")
						assert.Contains(t, htmlBody, "https://example.com")
						assert.Contains(t, htmlBody, "Consecutive Failures:")
						return nil
					})
			},
		},
		{
			name: "SMTP failure",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp connection refused"))
			},
			expectedError: "MailNotifier.SendDowntimeAlert: smtp connection refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := mail.NewMockSender(ctrl)
			tc.setupMocks(sender)

			notifier := NewMailNotifier(sender)
			err := notifier.SendDowntimeAlert(site, result)
			if tc.expectedError != "" {
				assert.EqualError(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMailNotifier_SendRecoveryNotice(t *testing.T) {
	site := model.MonitoredSite{
		Name:        "Example",
		URL:         "https://example.com",
		NotifyEmail: "ops@example.com",
		Status:      model.SiteStatusUp,
	}

	testCases := []struct {
		name          string
		setupMocks    func(sender *mail.MockSender)
		expectedError string
	}{
		{
			name: "Delivered",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail([]string{"ops@example.com"}, "[Uptime Sentinel] Example has recovered", gomock.Any(), gomock.Any(), nil).
					DoAndReturn(func(_ []string, _ string, htmlBody, textBody string, _ []mail.Attachment) error {
						assert.Contains(t, textBody, "--- RECOVERY ---")
						assert.Contains(t, textBody, "URL: https://example.com")
						assert.Contains(t, textBody, "Status: up")
						assert.Contains(t, htmlBody, "https://example.com")
						return nil
					})
			},
		},
		{
			name: "SMTP failure",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp connection refused"))
			},
			expectedError: "MailNotifier.SendRecoveryNotice: smtp connection refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := mail.NewMockSender(ctrl)
			tc.setupMocks(sender)

			notifier := NewMailNotifier(sender)
			err := notifier.SendRecoveryNotice(site)
			if tc.expectedError != "" {
				assert.EqualError(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
