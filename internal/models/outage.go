package models

import (
	"errors"
	"fmt"
	"time"
)

// OutageStatus - жизненный цикл сбоя
type OutageStatus string

const (
	StatusDetecting     OutageStatus = "detecting"
	StatusActive        OutageStatus = "active"
	StatusInvestigating OutageStatus = "investigating"
	StatusIdentified    OutageStatus = "identified"
	StatusMonitoring    OutageStatus = "monitoring"
	StatusResolved      OutageStatus = "resolved"
	StatusScheduled     OutageStatus = "scheduled"
)

// Valid сообщает, входит ли статус в известное множество
func (s OutageStatus) Valid() bool {
	switch s {
	case StatusDetecting, StatusActive, StatusInvestigating, StatusIdentified,
		StatusMonitoring, StatusResolved, StatusScheduled:
		return true
	}
	return false
}

// Severity - внутренний уровень серьезности, который выставляют адаптеры
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Public отображает внутренний уровень на публичную шкалу API: minor, major, critical, unknown.
func (s Severity) Public() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh, SeverityMedium:
		return "major"
	case SeverityLow:
		return "minor"
	}
	return "unknown"
}

// Канонические названия затронутых услуг
const (
	ServiceMobile    = "mobile"
	ServiceInternet  = "internet"
	ServiceVoIP      = "voip"
	ServiceData      = "data"
	ServiceVoice     = "voice"
	ServiceSMS       = "sms"
	ServiceBroadband = "broadband"
	ServiceFiber     = "fiber"
	Service5G        = "5g"
	Service4G        = "4g"
	Service3G        = "3g"
	Service2G        = "2g"
)

// BilingualText - пара шведский/английский
type BilingualText struct {
	SV string `json:"sv"`
	EN string `json:"en"`
}

var ErrMalformedRecord = errors.New("malformed canonical record")

// CanonicalOutage - нормализованная запись, которую отдает адаптер оператора
type CanonicalOutage struct {
	Operator         string
	IncidentKey      string
	Title            BilingualText
	Description      *BilingualText
	Status           OutageStatus
	Severity         Severity
	StartTime        *time.Time
	EndTime          *time.Time
	EstimatedFixTime *time.Time
	Location         string
	Latitude         *float64
	Longitude        *float64
	AffectedServices []string
	SourceURL        string
}

// Validate проверяет минимальный набор полей, без которого запись нельзя сверить
func (c CanonicalOutage) Validate() error {
	switch {
	case c.Operator == "":
		return fmt.Errorf("%w: operator is empty", ErrMalformedRecord)
	case c.Title.SV == "" && c.Title.EN == "":
		return fmt.Errorf("%w: title is empty", ErrMalformedRecord)
	case !c.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrMalformedRecord, c.Status)
	}
	return nil
}

// Outage - сверенная запись о сбое, хранимая в бд
type Outage struct {
	ID               int64          `json:"id"`
	IncidentKey      *string        `json:"incident_key,omitempty"`
	OperatorID       int64          `json:"operator_id"`
	OperatorName     string         `json:"operator_name"`
	RegionID         *int64         `json:"region_id,omitempty"`
	RegionName       *BilingualText `json:"region_name,omitempty"`
	RawSignalID      *int64         `json:"raw_signal_id,omitempty"`
	Title            BilingualText  `json:"title"`
	Description      *BilingualText `json:"description,omitempty"`
	Status           OutageStatus   `json:"status"`
	Severity         Severity       `json:"severity"`
	SeverityScore    float64        `json:"severity_score"`
	StartTime        *time.Time     `json:"start_time,omitempty"`
	EndTime          *time.Time     `json:"end_time,omitempty"`
	EstimatedFixTime *time.Time     `json:"estimated_fix_time,omitempty"`
	Location         *string        `json:"location,omitempty"`
	Latitude         *float64       `json:"latitude,omitempty"`
	Longitude        *float64       `json:"longitude,omitempty"`
	AffectedServices []string       `json:"affected_services"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
}

// OutageFilter - параметры выборки списка сбоев
type OutageFilter struct {
	Operator  string
	Status    OutageStatus
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Box       *BoundingBox // грубое ограничение по координатам для выборки из БД
	Limit     int
}

// BoundingBox - прямоугольник в градусах, включающий границы
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// StatusTransition публикуется, когда сверка меняет статус существующего сбоя
type StatusTransition struct {
	EventID     string       `json:"event_id"`
	OutageID    int64        `json:"outage_id"`
	Operator    string       `json:"operator"`
	IncidentKey string       `json:"incident_key"`
	From        OutageStatus `json:"from"`
	To          OutageStatus `json:"to"`
	At          time.Time    `json:"at"`
}
