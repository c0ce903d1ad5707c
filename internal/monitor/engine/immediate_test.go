package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	mockengine "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/mocks/engine"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

func TestImmediateChecker_Check(t *testing.T) {
	url := "https://example.com"

	testCases := []struct {
		name        string
		setupMocks  func(mockEng *mockengine.MockEngine)
		wantHealthy bool
	}{
		{
			name: "Success - Probe result passed through",
			setupMocks: func(mockEng *mockengine.MockEngine) {
				gomock.InOrder(
					mockEng.EXPECT().EnsureHealthy(gomock.Any()).Return(nil),
					mockEng.EXPECT().Probe(gomock.Any(), url, 15*time.Second).
						Return(model.CheckResult{ObservedAt: time.Now(), StatusCode: 200, DurationMs: 100}, nil),
					mockEng.EXPECT().Shutdown().Return(nil),
				)
			},
			wantHealthy: true,
		},
		{
			name: "Failure - Engine fails to start",
			setupMocks: func(mockEng *mockengine.MockEngine) {
				gomock.InOrder(
					mockEng.EXPECT().EnsureHealthy(gomock.Any()).Return(errors.New("browser failed to launch")),
					mockEng.EXPECT().Shutdown().Return(nil),
				)
			},
			wantHealthy: false,
		},
		{
			name: "Failure - Engine dies mid-probe",
			setupMocks: func(mockEng *mockengine.MockEngine) {
				gomock.InOrder(
					mockEng.EXPECT().EnsureHealthy(gomock.Any()).Return(nil),
					mockEng.EXPECT().Probe(gomock.Any(), url, 15*time.Second).
						Return(model.CheckResult{}, apperrors.ErrEngineUnavailable),
					mockEng.EXPECT().Shutdown().Return(nil),
				)
			},
			wantHealthy: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEng := mockengine.NewMockEngine(ctrl)
			tc.setupMocks(mockEng)

			checker := NewImmediateChecker(zap.NewNop(), 15*time.Second, func() Engine { return mockEng })
			result := checker.Check(context.Background(), url)

			assert.Equal(t, tc.wantHealthy, result.Healthy())
		})
	}
}
