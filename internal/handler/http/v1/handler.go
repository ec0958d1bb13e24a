package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/config"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
	"github.com/sirupsen/logrus"
)

// CycleRunner запускает один цикл загрузки по требованию администратора
type CycleRunner interface {
	RunCycle(ctx context.Context) models.IngestReport
}

type Handler struct {
	outageService    service.OutageService
	reportService    service.ReportService
	hotspotService   service.HotspotService
	retentionService service.RetentionService
	ingest           CycleRunner
	limiter          *ipRateLimiter
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

// NewHandler собирает обработчики API. ingest может быть nil, тогда ручной запуск загрузки недоступен.
func NewHandler(
	outageService service.OutageService,
	reportService service.ReportService,
	hotspotService service.HotspotService,
	retentionService service.RetentionService,
	ingest CycleRunner,
	clock clockwork.Clock,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		outageService:    outageService,
		reportService:    reportService,
		hotspotService:   hotspotService,
		retentionService: retentionService,
		ingest:           ingest,
		limiter:          newIPRateLimiter(cfg.ReportRatePerSecond, cfg.ReportBurst, clock),
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError переводит доменные ошибки в HTTP-статусы
func respondError(c *gin.Context, log *logrus.Entry, err error, notFound string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, e.ErrConflict):
		log.WithError(err).Warn("Conflicting state")
		c.JSON(http.StatusConflict, gin.H{"error": "resource is not in a state that allows this operation"})
	case errors.Is(err, e.ErrInvalidInput):
		log.WithError(err).Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// queryFloat разбирает необязательный числовой параметр запроса
func queryFloat(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// @Summary List outages
// @Description List reconciled outages filtered by operator and status, optionally within a radius of a point.
// @Tags Outages
// @Produce json
// @Param operator query string false "Operator name"
// @Param status query string false "Outage status"
// @Param lat query number false "Latitude of the search point"
// @Param lon query number false "Longitude of the search point"
// @Param radius_km query number false "Search radius in kilometers"
// @Param limit query int false "Maximum number of outages" default(100)
// @Success 200 {array} OutageResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages [get]
func (h *Handler) listOutages(c *gin.Context) {
	log := h.logger.WithField("method", "listOutages")

	filter := models.OutageFilter{
		Operator: c.Query("operator"),
		Status:   models.OutageStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	lat, err := queryFloat(c, "lat")
	if err != nil || (lat != nil && (*lat < -90 || *lat > 90)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}
	lon, err := queryFloat(c, "lon")
	if err != nil || (lon != nil && (*lon < -180 || *lon > 180)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon"})
		return
	}
	if (lat == nil) != (lon == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be provided together"})
		return
	}
	radius, err := queryFloat(c, "radius_km")
	if err != nil || (radius != nil && *radius <= 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
		return
	}
	filter.Latitude, filter.Longitude = lat, lon
	if radius != nil {
		filter.RadiusKm = *radius
	} else if lat != nil {
		filter.RadiusKm = 50
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	outages, err := h.outageService.ListOutages(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err, "outages not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToOutageResponses(outages))
}

// @Summary Get outage by ID
// @Description Get a single reconciled outage by its ID.
// @Tags Outages
// @Produce json
// @Param id path int true "Outage ID"
// @Success 200 {object} OutageResponse
// @Failure 400 {object} map[string]string "Invalid outage ID"
// @Failure 404 {object} map[string]string "Outage not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages/{id} [get]
func (h *Handler) getOutage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid outage ID"})
		return
	}
	log := h.logger.WithField("method", "getOutage").WithField("id", id)

	outage, err := h.outageService.GetOutage(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "outage not found")
		return
	}
	c.JSON(http.StatusOK, ModelToOutageResponse(outage))
}

// @Summary Outage history
// @Description List resolved outages over the last N days.
// @Tags Outages
// @Produce json
// @Param operator query string false "Operator name"
// @Param days query int false "Number of days" default(7)
// @Success 200 {array} OutageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages/history [get]
func (h *Handler) outageHistory(c *gin.Context) {
	log := h.logger.WithField("method", "outageHistory")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	outages, err := h.outageService.History(c.Request.Context(), c.Query("operator"), days)
	if err != nil {
		respondError(c, log, err, "history not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToOutageResponses(outages))
}

// @Summary List regions
// @Description List counties with the number of unresolved outages.
// @Tags Reference
// @Produce json
// @Success 200 {array} RegionResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	log := h.logger.WithField("method", "listRegions")

	regions, err := h.outageService.ListRegions(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "regions not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary List operators
// @Tags Reference
// @Produce json
// @Success 200 {array} models.Operator
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operators [get]
func (h *Handler) listOperators(c *gin.Context) {
	log := h.logger.WithField("method", "listOperators")

	operators, err := h.outageService.ListOperators(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "operators not found")
		return
	}
	c.JSON(http.StatusOK, operators)
}

// @Summary Submit a user report
// @Description Submit a connectivity problem report. The report is stored as pending. Rate limited per client IP.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body SubmitReportRequest true "User report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.SubmitReport(c.Request.Context(), DTOToReportSubmission(input))
	if err != nil {
		respondError(c, log, err, "report not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary List user reports
// @Tags Reports
// @Produce json
// @Param status query string false "Moderation status" Enums(pending, verified, rejected)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	status := models.ReportStatus(c.Query("status"))
	switch status {
	case "", models.ReportPending, models.ReportVerified, models.ReportRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	reports, err := h.reportService.ListReports(c.Request.Context(), status, page, pageSize)
	if err != nil {
		respondError(c, log, err, "reports not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Current hotspots
// @Description Clusters of pending user reports and external crowd signals.
// @Tags Reports
// @Produce json
// @Success 200 {array} HotspotResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")

	hotspots, err := h.hotspotService.DetectHotspots(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "hotspots not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary Mean time to repair
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.MTTRStat
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/mttr [get]
func (h *Handler) getMTTR(c *gin.Context) {
	log := h.logger.WithField("method", "getMTTR")

	stats, err := h.outageService.MTTR(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Operator reliability
// @Tags Analytics
// @Produce json
// @Param days query int false "Number of days" default(30)
// @Success 200 {array} models.ReliabilityStat
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/reliability [get]
func (h *Handler) getReliability(c *gin.Context) {
	log := h.logger.WithField("method", "getReliability")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	stats, err := h.outageService.Reliability(c.Request.Context(), days)
	if err != nil {
		respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Scraper freshness
// @Description Last captured raw signal per operator. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ScraperStatus
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/scrapers [get]
func (h *Handler) scraperStatus(c *gin.Context) {
	log := h.logger.WithField("method", "scraperStatus")

	status, err := h.outageService.ScraperStatus(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "scraper status not found")
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Verify a user report
// @Description Move a pending report to verified. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report is not pending"
// @Router /admin/reports/{id}/verify [post]
func (h *Handler) verifyReport(c *gin.Context) {
	h.moderateReport(c, models.ReportVerified)
}

// @Summary Reject a user report
// @Description Move a pending report to rejected. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report is not pending"
// @Router /admin/reports/{id}/reject [post]
func (h *Handler) rejectReport(c *gin.Context) {
	h.moderateReport(c, models.ReportRejected)
}

func (h *Handler) moderateReport(c *gin.Context, status models.ReportStatus) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "moderateReport", "id": id, "status": status})

	report, err := h.reportService.ModerateReport(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, log, err, "report not found")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Purge expired data
// @Description Delete resolved outages and raw signals older than the retention period. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PurgeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/purge [post]
func (h *Handler) purge(c *gin.Context) {
	log := h.logger.WithField("method", "purge")

	res, err := h.retentionService.PurgeExpired(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "nothing to purge")
		return
	}
	c.JSON(http.StatusOK, PurgeResponse{
		Cutoff:            res.Cutoff,
		OutagesDeleted:    res.OutagesDeleted,
		RawSignalsDeleted: res.RawSignalsDeleted,
	})
}

// @Summary Run an ingestion cycle
// @Description Fetch every configured source once and reconcile the results. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.IngestReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Ingestion is not configured"
// @Router /admin/ingest [post]
func (h *Handler) runIngest(c *gin.Context) {
	if h.ingest == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingestion is not configured"})
		return
	}
	report := h.ingest.RunCycle(c.Request.Context())
	h.logger.WithFields(logrus.Fields{
		"method":  "runIngest",
		"created": report.Created,
		"updated": report.Updated,
		"failed":  report.Failed,
	}).Info("Manual ingestion cycle finished")
	c.JSON(http.StatusOK, report)
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
