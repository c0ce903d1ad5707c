package indexer

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/infra"
)

func newKafkaMessage(t *testing.T, siteID string, statusNumeric int) kafka.Message {
	event := model.CheckEvent{
		SiteID:        siteID,
		Status:        model.SiteStatusUp,
		StatusNumeric: statusNumeric,
		StatusCode:    200,
	}
	value, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafka.Message{Key: []byte(siteID), Value: value}
}

func TestConsumer_Start(t *testing.T) {
	validMessage := newKafkaMessage(t, "site-1", 1)
	invalidJSONMessage := kafka.Message{Value: []byte("{not-a-json'")}
	nilValueMessage := kafka.Message{Value: nil}

	testCases := []struct {
		name       string
		setupMocks func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer)
	}{
		{
			name: "Success Process valid message",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(validMessage, nil),
					mockIndexer.EXPECT().IndexCheck(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), validMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure FetchMessage returns a generic error",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("kafka broker unavailable")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Message value is nil",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(nilValueMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure JSON unmarshal fails and commit succeeds",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(invalidJSONMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), invalidJSONMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure IndexCheck returns an error",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(validMessage, nil),
					mockIndexer.EXPECT().IndexCheck(gomock.Any(), gomock.Any()).Return(errors.New("elasticsearch timeout")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure CommitMessages fails after successful indexing",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockIndexer *MockCheckIndexer) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(validMessage, nil),
					mockIndexer.EXPECT().IndexCheck(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), validMessage).Return(errors.New("failed to commit offset")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockReader := infra.NewMockKafkaReader(ctrl)
			mockIndexer := NewMockCheckIndexer(ctrl)
			logger := zap.NewNop()

			tc.setupMocks(mockReader, mockIndexer)

			consumer := NewConsumer(mockReader, mockIndexer, logger)
			consumer.Start()

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestConsumer_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := infra.NewMockKafkaReader(ctrl)
	logger := zap.NewNop()

	mockReader.EXPECT().Close().Times(1)

	consumer := NewConsumer(mockReader, nil, logger)
	consumer.Stop()
}
