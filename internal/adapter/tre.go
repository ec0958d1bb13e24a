package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/bilingual"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/shenikar/telecom_outage_system/internal/severity"
	"golang.org/x/net/html"
)

const (
	treStartMarker   = "Arbete startar:"
	treEndMarker     = "Arbete klart:"
	treUpdatedMarker = "Senast uppdaterat:"
	treDescMarker    = "Beskrivning:"
)

var treBlockMarkers = []string{"Arbete startar", "påverka täckning", "Driftstörning", "Senast uppdaterat"}

type treItem struct {
	Text                json.RawMessage `json:"text"`
	NotificationMessage json.RawMessage `json:"notificationMessage"`
}

type treNextData struct {
	Props struct {
		PageProps struct {
			Page struct {
				Blocks []struct {
					Items []treItem `json:"items"`
				} `json:"blocks"`
			} `json:"page"`
		} `json:"pageProps"`
	} `json:"props"`
}

// TreAdapter разбирает страницу плановых работ Tre: JSON __NEXT_DATA__ или HTML с ним.
type TreAdapter struct {
	inferrer *region.Inferrer
	clock    clockwork.Clock
}

func NewTre(in *region.Inferrer, clock clockwork.Clock) *TreAdapter {
	return &TreAdapter{inferrer: in, clock: clock}
}

func (a *TreAdapter) Operator() string { return OperatorTre }

func (a *TreAdapter) Normalize(payload []byte) ([]models.CanonicalOutage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, errors.New("empty payload")
	}
	if trimmed[0] == '<' {
		script, err := nextDataScript(trimmed)
		if err != nil {
			return nil, fmt.Errorf("tre: %w", err)
		}
		trimmed = script
	}

	var doc treNextData
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("tre: decode next data: %w", err)
	}

	now := a.clock.Now()
	out := make([]models.CanonicalOutage, 0)
	for _, block := range doc.Props.PageProps.Page.Blocks {
		for _, item := range block.Items {
			text := itemText(item)
			if text == "" || !containsAny(text, treBlockMarkers) {
				continue
			}
			out = append(out, a.parseMarkdown(text, now)...)
		}
	}
	return out, nil
}

func itemText(item treItem) string {
	for _, raw := range []json.RawMessage{item.Text, item.NotificationMessage} {
		var s string
		if len(raw) > 0 && json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}
	return ""
}

// parseMarkdown разбирает список вида
//
//	### __Stad__
//	- __Arbete startar:__ 2025-12-15 Kl 00:00
//	- __Arbete klart:__ 2025-12-15 Kl 06:00
//	- __Beskrivning:__ ...
func (a *TreAdapter) parseMarkdown(text string, now time.Time) []models.CanonicalOutage {
	out := make([]models.CanonicalOutage, 0)
	for _, chunk := range strings.Split(text, "### ") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.Split(chunk, "\n")
		place := strings.TrimSpace(strings.ReplaceAll(lines[0], "__", ""))

		var start, end *time.Time
		var desc string
		warning := false
		for _, line := range lines[1:] {
			clean := strings.TrimSpace(strings.Trim(strings.ReplaceAll(line, "__", ""), "- "))
			switch {
			case strings.Contains(clean, treStartMarker):
				start = parseTreDate(after(clean, treStartMarker))
			case strings.Contains(clean, treEndMarker):
				end = parseTreDate(after(clean, treEndMarker))
			case strings.Contains(clean, treUpdatedMarker):
				start = parseTreDate(after(clean, treUpdatedMarker))
				warning = true
			case strings.Contains(clean, treDescMarker):
				desc = after(clean, treDescMarker)
			}
		}
		if place == "" || (start == nil && end == nil) {
			continue
		}

		anchor := start
		if anchor == nil {
			anchor = end
		}
		status := treStatus(start, end, warning, now)

		rec := models.CanonicalOutage{
			Operator:         OperatorTre,
			IncidentKey:      fmt.Sprintf("tre_%s_%s", place, anchor.In(stockholm).Format("2006-01-02T15:04:05")),
			Title:            treTitle(place, warning),
			Description:      bilingual.NewPtr(desc),
			Status:           status,
			Severity:         severity.FromText(desc),
			StartTime:        start,
			EstimatedFixTime: end,
			Location:         place,
			AffectedServices: treServices(desc),
		}
		if status == models.StatusResolved {
			rec.EndTime = end
		}
		if r := a.inferrer.Infer(place); r != nil {
			lat, lon := r.Latitude, r.Longitude
			rec.Latitude, rec.Longitude = &lat, &lon
		}
		out = append(out, rec)
	}
	return out
}

// treStatus: предупреждение о сбое активно сразу, работы активны внутри окна и закрыты после него
func treStatus(start, end *time.Time, warning bool, now time.Time) models.OutageStatus {
	switch {
	case warning:
		return models.StatusActive
	case end != nil && end.Before(now):
		return models.StatusResolved
	case start != nil && !start.After(now):
		return models.StatusActive
	}
	return models.StatusScheduled
}

func treTitle(place string, warning bool) models.BilingualText {
	if warning {
		return bilingual.New(fmt.Sprintf("Driftstörning i %s", place), fmt.Sprintf("Service disruption in %s", place))
	}
	return bilingual.New(fmt.Sprintf("Planerat arbete i %s", place), fmt.Sprintf("Planned maintenance in %s", place))
}

func treServices(desc string) []string {
	lower := strings.ToLower(desc)
	out := make([]string, 0)
	for _, g := range []string{models.Service5G, models.Service4G, models.Service3G, models.Service2G} {
		if strings.Contains(lower, g) {
			out = append(out, g)
		}
	}
	if containsAny(lower, []string{"data", "surf", "internet"}) {
		out = append(out, models.ServiceData)
	}
	if containsAny(lower, []string{"samtal", "röst", "telefoni"}) {
		out = append(out, models.ServiceVoice)
	}
	if strings.Contains(lower, "sms") {
		out = append(out, models.ServiceSMS)
	}
	if len(out) == 0 {
		out = append(out, models.ServiceMobile)
	}
	return out
}

// parseTreDate: "2025-12-15 Kl 00:00", время местное
func parseTreDate(s string) *time.Time {
	clean := strings.ReplaceAll(strings.ToLower(s), "kl", "")
	clean = strings.Join(strings.Fields(clean), " ")
	t, err := time.ParseInLocation("2006-01-02 15:04", clean, stockholm)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func after(s, marker string) string {
	_, rest, _ := strings.Cut(s, marker)
	return strings.TrimSpace(rest)
}

// nextDataScript извлекает содержимое <script id="__NEXT_DATA__">
func nextDataScript(payload []byte) ([]byte, error) {
	z := html.NewTokenizer(bytes.NewReader(payload))
	inScript := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return nil, errors.New("__NEXT_DATA__ script not found")
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "script" || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "id" && string(val) == "__NEXT_DATA__" {
					inScript = true
				}
				if !more {
					break
				}
			}
		case html.TextToken:
			if inScript {
				return bytes.Clone(bytes.TrimSpace(z.Text())), nil
			}
		case html.EndTagToken:
			inScript = false
		}
	}
}
