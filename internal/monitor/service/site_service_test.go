package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	mockrepository "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/mocks/repository"
	mockservice "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/mocks/service"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/repository"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/state"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/mail"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var testStateConfig = state.Config{
	NormalInterval:           5 * time.Minute,
	DowntimeMonitoringWindow: 12 * time.Hour,
	PauseWindow:              6 * time.Hour,
	AlertThreshold:           3,
	RecoveryThreshold:        3,
	HistoryCap:               100,
}

func newTestSiteService(siteRepo *mockrepository.MockSiteRepository, uptimeRepo *mockrepository.MockUptimeRepository, prober ImmediateProber) *siteService {
	return &siteService{
		siteRepo:   siteRepo,
		uptimeRepo: uptimeRepo,
		prober:     prober,
		stateCfg:   testStateConfig,
		now:        func() time.Time { return testNow },
	}
}

func TestSiteService_RegisterSite(t *testing.T) {
	input := model.MonitoredSite{
		Name:        "Example",
		URL:         "https://example.com",
		NotifyEmail: "owner@example.com",
	}

	t.Run("Success - Site created and immediately probed healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
		mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)
		mockProber := mockservice.NewMockImmediateProber(ctrl)

		created := input
		created.ID = "site-1"
		created.Status = model.SiteStatusPending
		created.NextCheckAt = testNow

		mockSiteRepo.EXPECT().CreateSite(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, site model.MonitoredSite) (model.MonitoredSite, error) {
				assert.Equal(t, model.SiteStatusPending, site.Status)
				assert.Equal(t, testNow, site.NextCheckAt)
				return created, nil
			})
		mockProber.EXPECT().Check(gomock.Any(), created.URL).
			Return(model.CheckResult{ObservedAt: testNow, StatusCode: 200, DurationMs: 110})
		mockSiteRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, site model.MonitoredSite) (model.MonitoredSite, error) {
				assert.Equal(t, model.SiteStatusUp, site.Status)
				assert.Len(t, site.History, 1)
				return site, nil
			})

		svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, mockProber)
		site, err := svc.RegisterSite(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "site-1", site.ID)
		assert.Equal(t, model.SiteStatusUp, site.Status)
	})

	t.Run("Success - Failed immediate probe records down without alerting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
		mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)
		mockProber := mockservice.NewMockImmediateProber(ctrl)

		created := input
		created.ID = "site-1"
		created.Status = model.SiteStatusPending

		mockSiteRepo.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Return(created, nil)
		mockProber.EXPECT().Check(gomock.Any(), created.URL).
			Return(model.CheckResult{ObservedAt: testNow, StatusCode: 0, DurationMs: 15000})
		mockSiteRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, site model.MonitoredSite) (model.MonitoredSite, error) {
				assert.Equal(t, model.SiteStatusDown, site.Status)
				assert.Equal(t, 1, site.ConsecutiveFailures)
				assert.False(t, site.NotifiedForCurrentIncident)
				return site, nil
			})

		svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, mockProber)
		site, err := svc.RegisterSite(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, model.SiteStatusDown, site.Status)
	})

	t.Run("Failure - Duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
		mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)
		mockProber := mockservice.NewMockImmediateProber(ctrl)

		mockSiteRepo.EXPECT().CreateSite(gomock.Any(), gomock.Any()).
			Return(model.MonitoredSite{}, apperrors.ErrSiteNameAlreadyExists)

		svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, mockProber)
		_, err := svc.RegisterSite(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrSiteNameAlreadyExists)
	})

	t.Run("Success - Nil prober skips the immediate check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
		mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)

		created := input
		created.ID = "site-1"
		created.Status = model.SiteStatusPending

		mockSiteRepo.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Return(created, nil)

		svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, nil)
		site, err := svc.RegisterSite(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, model.SiteStatusPending, site.Status)
	})
}

func TestSiteService_GetSite(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(mockSiteRepo *mockrepository.MockSiteRepository)
		wantErr    error
	}{
		{
			name: "Success",
			setupMocks: func(mockSiteRepo *mockrepository.MockSiteRepository) {
				mockSiteRepo.EXPECT().GetSiteByID(gomock.Any(), "site-1").
					Return(model.MonitoredSite{ID: "site-1", Name: "Example"}, nil)
			},
		},
		{
			name: "Failure - Site not found",
			setupMocks: func(mockSiteRepo *mockrepository.MockSiteRepository) {
				mockSiteRepo.EXPECT().GetSiteByID(gomock.Any(), "site-1").
					Return(model.MonitoredSite{}, apperrors.ErrSiteNotFound)
			},
			wantErr: apperrors.ErrSiteNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
			mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)
			tc.setupMocks(mockSiteRepo)

			svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, nil)
			site, err := svc.GetSite(context.Background(), "site-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "site-1", site.ID)
			}
		})
	}
}

func TestSiteService_GetSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
	mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)

	expected := []model.MonitoredSite{{ID: "site-1"}, {ID: "site-2"}}
	mockSiteRepo.EXPECT().GetSites(gomock.Any(), model.SiteStatusUp, 10, 0).Return(expected, nil)

	svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, nil)
	sites, err := svc.GetSites(context.Background(), model.SiteStatusUp, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, sites)
}

func TestSiteService_DeleteSite(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(mockSiteRepo *mockrepository.MockSiteRepository)
		wantErr    error
	}{
		{
			name: "Success",
			setupMocks: func(mockSiteRepo *mockrepository.MockSiteRepository) {
				mockSiteRepo.EXPECT().DeleteSiteByID(gomock.Any(), "site-1").Return(nil)
			},
		},
		{
			name: "Failure - Site not found",
			setupMocks: func(mockSiteRepo *mockrepository.MockSiteRepository) {
				mockSiteRepo.EXPECT().DeleteSiteByID(gomock.Any(), "site-1").Return(apperrors.ErrSiteNotFound)
			},
			wantErr: apperrors.ErrSiteNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
			mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)
			tc.setupMocks(mockSiteRepo)

			svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, nil)
			err := svc.DeleteSite(context.Background(), "site-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSiteService_GetSiteUptimePercentage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSiteRepo := mockrepository.NewMockSiteRepository(ctrl)
	mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mockUptimeRepo.EXPECT().GetSiteUptimePercentage(gomock.Any(), "site-1", start, end).Return(99.5, nil)

	svc := newTestSiteService(mockSiteRepo, mockUptimeRepo, nil)
	res, err := svc.GetSiteUptimePercentage(context.Background(), "site-1", start, end)

	require.NoError(t, err)
	assert.Equal(t, 99.5, res)
}

func TestSiteService_ReportSitesInformation(t *testing.T) {
	start := time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	info := repository.SitesHealthInformation{
		TotalSitesCnt:           4,
		UpSitesCnt:              2,
		DownSitesCnt:            1,
		PendingSitesCnt:         1,
		AverageUptimePercentage: 87.5,
	}

	testCases := []struct {
		name          string
		setupMocks    func(uptimeRepo *mockrepository.MockUptimeRepository, sender *mail.MockSender)
		expectedError bool
	}{
		{
			name: "Success",
			setupMocks: func(uptimeRepo *mockrepository.MockUptimeRepository, sender *mail.MockSender) {
				uptimeRepo.EXPECT().GetAllSitesHealthInformation(gomock.Any(), start, end).Return(info, nil)
				sender.EXPECT().SendMail([]string{"admin@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), nil).
					DoAndReturn(func(_ []string, subject, htmlBody, textBody string, _ []mail.Attachment) error {
						assert.Contains(t, subject, "Sites Status Report")
						assert.Contains(t, textBody, "--- SUMMARY ---")
						assert.Contains(t, textBody, "Total Sites: 4")
						assert.Contains(t, textBody, "Up: 2")
						assert.Contains(t, textBody, "Down: 1")
						assert.Contains(t, textBody, "Average Uptime Across All Sites: 87.50%")
						assert.Contains(t, htmlBody, "Up Sites:")
						assert.Contains(t, htmlBody, "87.50%")
						return nil
					})
			},
		},
		{
			name: "Aggregation failure",
			setupMocks: func(uptimeRepo *mockrepository.MockUptimeRepository, sender *mail.MockSender) {
				uptimeRepo.EXPECT().GetAllSitesHealthInformation(gomock.Any(), start, end).
					Return(repository.SitesHealthInformation{}, errors.New("elasticsearch unavailable"))
			},
			expectedError: true,
		},
		{
			name: "Mail failure",
			setupMocks: func(uptimeRepo *mockrepository.MockUptimeRepository, sender *mail.MockSender) {
				uptimeRepo.EXPECT().GetAllSitesHealthInformation(gomock.Any(), start, end).Return(info, nil)
				sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp connection refused"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUptimeRepo := mockrepository.NewMockUptimeRepository(ctrl)
			mockSender := mail.NewMockSender(ctrl)
			tc.setupMocks(mockUptimeRepo, mockSender)

			svc := newTestSiteService(nil, mockUptimeRepo, nil)
			svc.mailSender = mockSender
			err := svc.ReportSitesInformation(context.Background(), start, end, "admin@example.com")
			if tc.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
