package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/infra"
)

type Consumer interface {
	Start()
	Stop()
}

type consumer struct {
	kafkaReader infra.KafkaReader
	indexer     CheckIndexer
	logger      *zap.Logger
}

func (c *consumer) Start() {
	go func() {
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("indexer.Consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err = c.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("indexer.Consumer.Start: %w", err)
					c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			var event model.CheckEvent
			if err = json.Unmarshal(m.Value, &event); err != nil {
				err = fmt.Errorf("indexer.Consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				err = c.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("indexer.Consumer.Start: %w", err)
					c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			if err = c.indexer.IndexCheck(ctx, event); err != nil {
				cancel()
				err = fmt.Errorf("indexer.Consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to index check event", zap.Error(err))
				continue
			}
			err = c.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("indexer.Consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func (c *consumer) Stop() {
	c.kafkaReader.Close()
}

func NewConsumer(reader infra.KafkaReader, checkIndexer CheckIndexer, logger *zap.Logger) Consumer {
	return &consumer{
		kafkaReader: reader,
		indexer:     checkIndexer,
		logger:      logger,
	}
}
