// Package crowd находит концентрации пользовательских сообщений и принимает внешние краудсорсинговые сигналы.
package crowd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/telecom_outage_system/internal/bilingual"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
)

const (
	DefaultThreshold = 5
	DefaultWindow    = 30 * time.Minute
	unknownOperator  = "Unknown"
)

// SignalSource - внешний агрегатор сигналов о сбоях
type SignalSource interface {
	Name() string
	FetchSignals(ctx context.Context) ([]models.CrowdSignal, error)
}

type clusterKey struct {
	operator string
	regionID int64
	hasID    bool
}

// DetectUserClusters группирует ожидающие модерации сообщения окна [now-window, now]
// по оператору и региону и возвращает группы размером не меньше threshold.
// Результат упорядочен по убыванию числа сообщений, затем по оператору и региону.
func DetectUserClusters(reports []models.UserReport, window time.Duration, threshold int, now time.Time) []models.Hotspot {
	if threshold < 1 {
		threshold = 1
	}
	cutoff := now.Add(-window)

	counts := make(map[clusterKey]int)
	names := make(map[clusterKey]*models.BilingualText)
	for _, r := range reports {
		if r.Status != models.ReportPending || r.CreatedAt.Before(cutoff) || r.CreatedAt.After(now) {
			continue
		}
		key := clusterKey{operator: unknownOperator}
		if r.OperatorName != nil && *r.OperatorName != "" {
			key.operator = *r.OperatorName
		}
		if r.RegionID != nil {
			key.regionID, key.hasID = *r.RegionID, true
		}
		counts[key]++
		if names[key] == nil && r.RegionName != nil {
			n := *r.RegionName
			names[key] = &n
		}
	}

	out := make([]models.Hotspot, 0)
	for key, n := range counts {
		if n < threshold {
			continue
		}
		h := models.Hotspot{
			OperatorName: key.operator,
			ReportCount:  n,
			Type:         models.HotspotUserCluster,
			DetectedAt:   now,
			RegionName:   names[key],
		}
		if key.hasID {
			id := key.regionID
			h.RegionID = &id
		}
		if h.RegionName == nil {
			unspecified := region.Unspecified()
			h.RegionName = &unspecified
		}
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ReportCount != b.ReportCount {
			return a.ReportCount > b.ReportCount
		}
		if a.OperatorName != b.OperatorName {
			return a.OperatorName < b.OperatorName
		}
		return regionOrder(a) < regionOrder(b)
	})
	return out
}

func regionOrder(h models.Hotspot) int64 {
	if h.RegionID == nil {
		return -1
	}
	return *h.RegionID
}

// AggregateExternalSignals отображает каждый сигнал источника в хотспот EXTERNAL_SIGNAL один к одному.
// Название региона сопоставляется со справочником, если это возможно.
func AggregateExternalSignals(ctx context.Context, src SignalSource, in *region.Inferrer) ([]models.Hotspot, error) {
	signals, err := src.FetchSignals(ctx)
	if err != nil {
		return nil, fmt.Errorf("crowd: fetch signals from %s: %w", src.Name(), err)
	}

	out := make([]models.Hotspot, 0, len(signals))
	for _, s := range signals {
		source := s.SourceName
		if source == "" {
			source = src.Name()
		}
		h := models.Hotspot{
			OperatorName: s.Operator,
			ReportCount:  s.Count,
			Type:         models.HotspotExternalSignal,
			Source:       &source,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			DetectedAt:   s.DetectedAt,
		}
		if s.RegionName != nil && *s.RegionName != "" {
			if r := in.ByName(*s.RegionName); r != nil {
				name := r.Name
				h.RegionName = &name
				if r.ID != 0 {
					id := r.ID
					h.RegionID = &id
				}
			} else {
				name := bilingual.New(*s.RegionName)
				h.RegionName = &name
			}
		}
		out = append(out, h)
	}
	return out, nil
}
