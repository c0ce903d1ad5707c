package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

const esCheckIndexName = "site_checks"

// SitesHealthInformation summarizes the whole fleet over a report window.
// The per-site counts classify each site by its most recent check in the
// window.
type SitesHealthInformation struct {
	TotalSitesCnt           int
	UpSitesCnt              int
	DownSitesCnt            int
	PendingSitesCnt         int
	AverageUptimePercentage float64
}

// UptimeRepository answers uptime queries over the check-event stream the
// indexer maintains in elasticsearch.
type UptimeRepository interface {
	GetSiteUptimePercentage(ctx context.Context, siteID string, startTime time.Time, endTime time.Time) (float64, error)
	GetAllSitesHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (SitesHealthInformation, error)
}

type uptimeRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (r *uptimeRepository) GetSiteUptimePercentage(ctx context.Context, siteID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"site_id": siteID,
						},
					},
					{
						"range": map[string]interface{}{
							"observed_at": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "status_numeric",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("UptimeRepository.GetSiteUptimePercentage encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esCheckIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("UptimeRepository.GetSiteUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return 0, fmt.Errorf("UptimeRepository.GetSiteUptimePercentage decode err response: %w", err)
		}
		return 0, fmt.Errorf("UptimeRepository.GetSiteUptimePercentage: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var uptimeRes esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeRes); err != nil {
		return 0, fmt.Errorf("UptimeRepository.GetSiteUptimePercentage decode response body: %w", err)
	}
	return uptimeRes.Aggregations.UptimePercentage.Value * 100, nil
}

type esSitesHealthResponse struct {
	Aggregations struct {
		AvgUptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"avg_uptime_percentage"`
		Sites struct {
			Buckets []struct {
				Key         string `json:"key"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source struct {
								Status string `json:"status"`
							} `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"sites"`
	} `json:"aggregations"`
}

func (r *uptimeRepository) GetAllSitesHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (SitesHealthInformation, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"observed_at": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"avg_uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "status_numeric",
				},
			},
			"sites": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "site_id",
					"size":  20000,
				},
				"aggs": map[string]interface{}{
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"observed_at": map[string]interface{}{
										"order": "desc",
									},
								},
							},
							"_source": map[string]interface{}{
								"includes": "status",
							},
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return SitesHealthInformation{}, fmt.Errorf("UptimeRepository.GetAllSitesHealthInformation encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esCheckIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return SitesHealthInformation{}, fmt.Errorf("UptimeRepository.GetAllSitesHealthInformation: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return SitesHealthInformation{}, fmt.Errorf("UptimeRepository.GetAllSitesHealthInformation decode err response: %w", err)
		}
		return SitesHealthInformation{}, fmt.Errorf("UptimeRepository.GetAllSitesHealthInformation: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var healthRes esSitesHealthResponse
	if err = json.NewDecoder(res.Body).Decode(&healthRes); err != nil {
		return SitesHealthInformation{}, fmt.Errorf("UptimeRepository.GetAllSitesHealthInformation decode response body: %w", err)
	}
	sitesHealth := SitesHealthInformation{
		TotalSitesCnt:           len(healthRes.Aggregations.Sites.Buckets),
		AverageUptimePercentage: healthRes.Aggregations.AvgUptimePercentage.Value * 100,
	}
	for _, bucket := range healthRes.Aggregations.Sites.Buckets {
		if len(bucket.LatestCheck.Hits.Hits) == 0 {
			continue
		}
		switch bucket.LatestCheck.Hits.Hits[0].Source.Status {
		case model.SiteStatusUp:
			sitesHealth.UpSitesCnt++
		case model.SiteStatusDown:
			sitesHealth.DownSitesCnt++
		default:
			sitesHealth.PendingSitesCnt++
		}
	}
	return sitesHealth, nil
}

func NewUptimeRepository(es *elasticsearch.Client) UptimeRepository {
	return &uptimeRepository{es: es}
}
