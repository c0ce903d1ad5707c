package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

// SiteRepository is the durable site registry. Upsert is the only mutation
// path the scheduler uses; it is atomic at the granularity of one site row.
type SiteRepository interface {
	CreateSite(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error)
	GetSiteByID(ctx context.Context, siteID string) (model.MonitoredSite, error)
	GetSites(ctx context.Context, status string, limit int, offset int) ([]model.MonitoredSite, error)
	ListDue(ctx context.Context, now time.Time) ([]model.MonitoredSite, error)
	ListResumable(ctx context.Context, now time.Time) ([]model.MonitoredSite, error)
	Upsert(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error)
	DeleteSiteByID(ctx context.Context, siteID string) error
}

type siteRepository struct {
	db *gorm.DB
}

func (r *siteRepository) CreateSite(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error) {
	result := r.db.WithContext(ctx).Create(&site)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "monitored_sites_name_key" {
				return site, fmt.Errorf("SiteRepository.CreateSite: %w", apperrors.ErrSiteNameAlreadyExists)
			}
		}
		return site, fmt.Errorf("SiteRepository.CreateSite: %w", result.Error)
	}
	return site, nil
}

func (r *siteRepository) GetSiteByID(ctx context.Context, siteID string) (model.MonitoredSite, error) {
	var site model.MonitoredSite
	result := r.db.WithContext(ctx).First(&site, "id = ?", siteID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return site, fmt.Errorf("SiteRepository.GetSiteByID: %w", apperrors.ErrSiteNotFound)
		}
		return site, fmt.Errorf("SiteRepository.GetSiteByID: %w", result.Error)
	}
	return site, nil
}

func (r *siteRepository) GetSites(ctx context.Context, status string, limit int, offset int) ([]model.MonitoredSite, error) {
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var sites []model.MonitoredSite
	result := query.Order("name asc").Limit(limit).Offset(offset).Find(&sites)
	if result.Error != nil {
		return nil, fmt.Errorf("SiteRepository.GetSites: %w", result.Error)
	}
	return sites, nil
}

// ListDue returns non-suspended sites whose next check time has elapsed.
func (r *siteRepository) ListDue(ctx context.Context, now time.Time) ([]model.MonitoredSite, error) {
	var sites []model.MonitoredSite
	result := r.db.WithContext(ctx).
		Where("suspended = ? AND next_check_at <= ?", false, now).
		Order("next_check_at asc").
		Find(&sites)
	if result.Error != nil {
		return nil, fmt.Errorf("SiteRepository.ListDue: %w", result.Error)
	}
	return sites, nil
}

// ListResumable returns suspended sites whose pause window has elapsed.
// The downtime deadline is cleared at suspension time, so eligibility is
// carried by next_check_at; a lingering deadline at or before now also
// qualifies.
func (r *siteRepository) ListResumable(ctx context.Context, now time.Time) ([]model.MonitoredSite, error) {
	var sites []model.MonitoredSite
	result := r.db.WithContext(ctx).
		Where("suspended = ? AND (downtime_deadline IS NULL OR downtime_deadline <= ?)", true, now).
		Where("next_check_at <= ?", now).
		Find(&sites)
	if result.Error != nil {
		return nil, fmt.Errorf("SiteRepository.ListResumable: %w", result.Error)
	}
	return sites, nil
}

func (r *siteRepository) Upsert(ctx context.Context, site model.MonitoredSite) (model.MonitoredSite, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&site)
	if result.Error != nil {
		return site, fmt.Errorf("SiteRepository.Upsert: %w", result.Error)
	}
	return site, nil
}

func (r *siteRepository) DeleteSiteByID(ctx context.Context, siteID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", siteID).Delete(&model.MonitoredSite{})
	if result.Error != nil {
		return fmt.Errorf("SiteRepository.DeleteSiteByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("SiteRepository.DeleteSiteByID: %w", apperrors.ErrSiteNotFound)
	}
	return nil
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}
