package models

import "time"

// ReportStatus - статус модерации пользовательского сообщения
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportVerified ReportStatus = "verified"
	ReportRejected ReportStatus = "rejected"
)

// UserReport - сообщение пользователя о проблеме со связью
type UserReport struct {
	ID           int64          `json:"id"`
	OperatorID   *int64         `json:"operator_id,omitempty"`
	OperatorName *string        `json:"operator_name,omitempty"`
	RegionID     *int64         `json:"region_id,omitempty"`
	RegionName   *BilingualText `json:"region_name,omitempty"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Status       ReportStatus   `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ReportSubmission - входные данные нового сообщения
type ReportSubmission struct {
	OperatorName *string
	Title        string
	Description  *string
	Latitude     float64
	Longitude    float64
}

// HotspotType различает кластеры пользовательских сообщений и внешние сигналы
type HotspotType string

const (
	HotspotUserCluster    HotspotType = "USER_CLUSTER"
	HotspotExternalSignal HotspotType = "EXTERNAL_SIGNAL"
)

// Hotspot - вычисляемая, нехранимая точка концентрации проблем
type Hotspot struct {
	OperatorName string         `json:"operator_name"`
	RegionID     *int64         `json:"region_id,omitempty"`
	RegionName   *BilingualText `json:"region_name,omitempty"`
	ReportCount  int            `json:"report_count"`
	Type         HotspotType    `json:"type"`
	Source       *string        `json:"source,omitempty"`
	Latitude     *float64       `json:"latitude,omitempty"`
	Longitude    *float64       `json:"longitude,omitempty"`
	DetectedAt   time.Time      `json:"detected_at"`
}

// CrowdSignal - агрегированный сигнал внешнего краудсорсингового источника
type CrowdSignal struct {
	Operator   string    `json:"operator"`
	RegionName *string   `json:"region_name,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	Count      int       `json:"count"`
	SourceName string    `json:"source_name"`
	DetectedAt time.Time `json:"detected_at"`
}
