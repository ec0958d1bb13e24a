package v1

import (
	"time"

	"github.com/shenikar/telecom_outage_system/internal/models"
)

// SubmitReportRequest DTO для пользовательского сообщения о проблеме со связью
// @Description DTO для пользовательского сообщения о проблеме со связью
type SubmitReportRequest struct {
	OperatorName *string  `json:"operator_name,omitempty" validate:"omitempty,min=2,max=64"`
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
}

// OutageResponse DTO для ответа с информацией о сбое
// @Description DTO для ответа с информацией о сбое
type OutageResponse struct {
	ID               int64                 `json:"id"`
	IncidentID       *string               `json:"incident_id,omitempty"`
	OperatorName     string                `json:"operator_name"`
	RegionID         *int64                `json:"region_id,omitempty"`
	RegionName       *models.BilingualText `json:"region_name,omitempty"`
	Title            models.BilingualText  `json:"title"`
	Description      *models.BilingualText `json:"description,omitempty"`
	Status           string                `json:"status" enums:"detecting,active,investigating,identified,monitoring,resolved,scheduled"`
	Severity         string                `json:"severity" enums:"minor,major,critical,unknown"`
	SeverityScore    float64               `json:"severity_score"`
	StartTime        *time.Time            `json:"start_time,omitempty"`
	EndTime          *time.Time            `json:"end_time,omitempty"`
	EstimatedFixTime *time.Time            `json:"estimated_fix_time,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Latitude         *float64              `json:"latitude,omitempty"`
	Longitude        *float64              `json:"longitude,omitempty"`
	AffectedServices []string              `json:"affected_services"`
	UpdatedAt        *time.Time            `json:"updated_at,omitempty"`
}

// HotspotResponse DTO для очага жалоб
// @Description DTO для очага жалоб
type HotspotResponse struct {
	OperatorName string                `json:"operator_name"`
	RegionName   *models.BilingualText `json:"region_name,omitempty"`
	ReportCount  int                   `json:"report_count"`
	Type         string                `json:"type" enums:"USER_CLUSTER,EXTERNAL_SIGNAL"`
	Source       *string               `json:"source,omitempty"`
	Latitude     *float64              `json:"latitude,omitempty"`
	Longitude    *float64              `json:"longitude,omitempty"`
	DetectedAt   time.Time             `json:"detected_at"`
}

// ReportResponse DTO для пользовательского сообщения
// @Description DTO для пользовательского сообщения
type ReportResponse struct {
	ID           int64                 `json:"id"`
	OperatorName *string               `json:"operator_name,omitempty"`
	RegionName   *models.BilingualText `json:"region_name,omitempty"`
	Title        string                `json:"title"`
	Description  *string               `json:"description,omitempty"`
	Latitude     float64               `json:"latitude"`
	Longitude    float64               `json:"longitude"`
	Status       string                `json:"status" enums:"pending,verified,rejected"`
	CreatedAt    time.Time             `json:"created_at"`
}

// RegionResponse DTO для региона с количеством незакрытых сбоев
// @Description DTO для региона с количеством незакрытых сбоев
type RegionResponse struct {
	ID            int64                `json:"id"`
	Name          models.BilingualText `json:"name"`
	Latitude      float64              `json:"latitude"`
	Longitude     float64              `json:"longitude"`
	ActiveOutages int                  `json:"active_outages"`
}

// PurgeResponse DTO для итогов очистки
// @Description DTO для итогов очистки
type PurgeResponse struct {
	Cutoff            time.Time `json:"cutoff"`
	OutagesDeleted    int64     `json:"outages_deleted"`
	RawSignalsDeleted int64     `json:"raw_signals_deleted"`
}

// HealthResponse DTO для health-check
type HealthResponse struct {
	Status string `json:"status"`
}
