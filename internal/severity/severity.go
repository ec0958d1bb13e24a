// Package severity оценивает серьезность сбоя по уровню и затронутым услугам.
package severity

import (
	"math"
	"strings"

	"github.com/shenikar/telecom_outage_system/internal/models"
)

const (
	maxScore       = 10.0
	scale          = 5.0
	defaultWeight  = 0.5
	criticalBoost  = 0.5
	secondaryBoost = 0.2
)

var weights = map[models.Severity]float64{
	models.SeverityCritical: 1.0,
	models.SeverityHigh:     0.8,
	models.SeverityMedium:   0.5,
	models.SeverityLow:      0.2,
}

// Score возвращает оценку в диапазоне [0, 10].
// Мобильная связь, интернет и VoIP увеличивают множитель на 0.5, остальные услуги на 0.2.
func Score(level models.Severity, services []string) float64 {
	weight, ok := weights[level]
	if !ok {
		weight = defaultWeight
	}

	multiplier := 1.0
	for _, s := range services {
		switch strings.ToLower(s) {
		case models.ServiceMobile, models.ServiceInternet, models.ServiceVoIP:
			multiplier += criticalBoost
		default:
			multiplier += secondaryBoost
		}
	}

	return math.Min(maxScore, weight*multiplier*scale)
}

var (
	criticalKeywords = []string{"kritisk", "critical", "allvarlig", "omfattande", "stor störning", "major"}
	highKeywords     = []string{"stor", "high", "betydande", "viktig", "omfattar"}
	lowKeywords      = []string{"liten", "minor", "begränsad", "lokal"}
)

// FromText определяет уровень по ключевым словам текста оператора, по умолчанию medium
func FromText(text string) models.Severity {
	lower := strings.ToLower(text)
	switch {
	case lower == "":
		return models.SeverityMedium
	case containsAny(lower, criticalKeywords):
		return models.SeverityCritical
	case containsAny(lower, highKeywords):
		return models.SeverityHigh
	case containsAny(lower, lowKeywords):
		return models.SeverityLow
	}
	return models.SeverityMedium
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
