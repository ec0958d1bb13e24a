package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware())

	// Публичное чтение сбоев
	outages := api.Group("/outages")
	{
		outages.GET("", h.listOutages)
		outages.GET("/history", h.outageHistory)
		outages.GET("/:id", h.getOutage)
	}

	api.GET("/regions", h.listRegions)
	api.GET("/operators", h.listOperators)

	// Сообщения пользователей: отправка ограничена по частоте
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.POST("", h.limiter.RateLimitMiddleware(h.logger), h.submitReport)
		reports.GET("/hotspots", h.listHotspots)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/mttr", h.getMTTR)
		analytics.GET("/reliability", h.getReliability)
	}

	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, "admin", h.logger))
	{
		admin.GET("/scrapers", h.scraperStatus)
		admin.POST("/reports/:id/verify", h.verifyReport)
		admin.POST("/reports/:id/reject", h.rejectReport)
		admin.POST("/purge", h.purge)
		admin.POST("/ingest", h.runIngest)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
