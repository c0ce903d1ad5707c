// Package events writes one record per persisted probe to the analytics
// stream consumed by the history indexer.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/infra"
)

type Stream interface {
	PublishCheck(ctx context.Context, ev model.CheckEvent) error
	Close() error
}

type kafkaStream struct {
	writer infra.KafkaWriter
}

func (s *kafkaStream) PublishCheck(ctx context.Context, ev model.CheckEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("KafkaStream.PublishCheck: %w", err)
	}
	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.SiteID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("KafkaStream.PublishCheck: %w", err)
	}
	return nil
}

func (s *kafkaStream) Close() error {
	return s.writer.Close()
}

func NewKafkaStream(writer infra.KafkaWriter) Stream {
	return &kafkaStream{writer: writer}
}
