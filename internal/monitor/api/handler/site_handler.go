package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/api/dto/request"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/api/dto/response"
	apperrors "github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/errors"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/service"
)

type SiteHandler interface {
	RegisterSite() gin.HandlerFunc
	GetSites() gin.HandlerFunc
	GetSite() gin.HandlerFunc
	DeleteSite() gin.HandlerFunc
	GetSiteUptimePercentage() gin.HandlerFunc
	ExportSitesToExcelFile() gin.HandlerFunc
}

type siteHandler struct {
	logger      Logger
	siteService service.SiteService
}

func (*siteHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid URL", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// RegisterSite creates the site and runs one immediate probe, so the
// response carries a fresh status rather than pending-until-next-tick.
func (s *siteHandler) RegisterSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.RegisterSiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validationErrors[0]),
				})
				return
			}
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		site, err := s.siteService.RegisterSite(c, model.MonitoredSite{
			Name:        req.Name,
			URL:         req.URL,
			NotifyEmail: req.NotifyEmail,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNameAlreadyExists) {
				c.JSON(http.StatusConflict, response.Response{
					Message: "Site name already exists",
				})
				return
			}
			err = fmt.Errorf("SiteHandler.RegisterSite: %w", err)
			s.logger.LoggingError(c, err, "failed to register site", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, response.NewSiteInfoResponse(site, true))
	}
}

func (s *siteHandler) GetSites() gin.HandlerFunc {
	return func(c *gin.Context) {
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		status := c.Query("status")
		if status != "" && status != model.SiteStatusPending && status != model.SiteStatusUp && status != model.SiteStatusDown {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		sites, err := s.siteService.GetSites(c, status, l, o)
		if err != nil {
			err = fmt.Errorf("SiteHandler.GetSites: %w", err)
			s.logger.LoggingError(c, err, "failed to get sites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := make([]response.SiteInfoResponse, 0, len(sites))
		for _, site := range sites {
			res = append(res, response.NewSiteInfoResponse(site, false))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (s *siteHandler) GetSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		site, err := s.siteService.GetSite(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Site not found",
				})
				return
			}
			err = fmt.Errorf("SiteHandler.GetSite: %w", err)
			s.logger.LoggingError(c, err, "failed to get site", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewSiteInfoResponse(site, true))
	}
}

func (s *siteHandler) DeleteSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.siteService.DeleteSite(c, id); err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Site not found",
				})
				return
			}
			err = fmt.Errorf("SiteHandler.DeleteSite: %w", err)
			s.logger.LoggingError(c, err, "failed to delete site", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *siteHandler) GetSiteUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		startDate := c.Query("start_date")
		startTime, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endDate := c.Query("end_date")
		endTime, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		res, err := s.siteService.GetSiteUptimePercentage(c, id, startTime, endTimeFinal)
		if err != nil {
			err = fmt.Errorf("SiteHandler.GetSiteUptimePercentage: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of site %s from %s to %s", id, startTime, endTime), zapcore.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func (s *siteHandler) ExportSitesToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		if status != "" && status != model.SiteStatusPending && status != model.SiteStatusUp && status != model.SiteStatusDown {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		sites, err := s.siteService.GetSites(c, status, 10000, 0)
		if err != nil {
			err = fmt.Errorf("SiteHandler.ExportSitesToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export sites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := s.generateExcelFile(sites)
		if err != nil {
			err = fmt.Errorf("SiteHandler.ExportSitesToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export sites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("sites-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("SiteHandler.ExportSitesToExcelFile: %w", err)
			s.logger.LoggingError(c, err, "failed to export sites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (s *siteHandler) generateExcelFile(sites []model.MonitoredSite) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Sites"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "url", "status", "consecutive_failures", "suspended", "last_checked_at", "next_check_at", "created_at"}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, site := range sites {
		lastChecked := ""
		if site.LastCheckedAt != nil {
			lastChecked = site.LastCheckedAt.Format("2006-01-02 15:04:05")
		}
		rowData := []interface{}{
			site.ID,
			site.Name,
			site.URL,
			site.Status,
			site.ConsecutiveFailures,
			site.Suspended,
			lastChecked,
			site.NextCheckAt.Format("2006-01-02 15:04:05"),
			site.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &rowData); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func NewSiteHandler(logger Logger, siteService service.SiteService) SiteHandler {
	return &siteHandler{
		logger:      logger,
		siteService: siteService,
	}
}
