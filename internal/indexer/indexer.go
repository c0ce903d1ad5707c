// Package indexer consumes the check-event stream and materializes it in
// elasticsearch, where uptime queries aggregate over it.
package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

const esCheckIndexName = "site_checks"

type CheckIndexer interface {
	IndexCheck(ctx context.Context, ev model.CheckEvent) error
}

type esCheckIndexer struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func (i *esCheckIndexer) IndexCheck(ctx context.Context, ev model.CheckEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("CheckIndexer.IndexCheck: %w", err)
	}
	res, err := i.es.Index(
		esCheckIndexName,
		bytes.NewReader(b),
		i.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("CheckIndexer.IndexCheck: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("CheckIndexer.IndexCheck decode err response: %w", err)
		}
		return fmt.Errorf("CheckIndexer.IndexCheck: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func NewCheckIndexer(es *elasticsearch.Client) CheckIndexer {
	return &esCheckIndexer{es: es}
}
