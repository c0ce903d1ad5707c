package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/api/handler"
)

func AddSiteRoutes(r *gin.Engine, handler handler.SiteHandler) {
	siteRoutes := r.Group("/sites")
	siteRoutes.POST("", handler.RegisterSite())
	siteRoutes.GET("", handler.GetSites())
	siteRoutes.GET("/export", handler.ExportSitesToExcelFile())
	siteRoutes.GET("/:id", handler.GetSite())
	siteRoutes.DELETE("/:id", handler.DeleteSite())
	siteRoutes.GET("/:id/uptime", handler.GetSiteUptimePercentage())
}
