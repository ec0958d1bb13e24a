package adapter

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shenikar/telecom_outage_system/internal/bilingual"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/severity"
	"golang.org/x/net/html"
)

const incidentContextLen = 500

var (
	incidentIDPattern = regexp.MustCompile(`INCSE\d+`)
	countyPattern     = regexp.MustCompile(`[A-ZÅÄÖ][a-zåäö]+(?:\s+[a-zåäö]+)*\s+län`)
	// "Sat, Dec 27, 22:44"
	portalDatePattern = regexp.MustCompile(`[A-Z][a-z]{2},\s+([A-Z][a-z]{2})\s+(\d{1,2}),\s+(\d{2}:\d{2})`)
)

// normalizeHTML разбирает страницу покрытия Telia: каждый INCSE-номер дает одну запись,
// контекстом служит текст после номера до следующего номера.
func (a *EnghouseAdapter) normalizeHTML(payload []byte) ([]models.CanonicalOutage, error) {
	text, err := visibleText(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: parse html: %w", a.operator, err)
	}

	locs := incidentIDPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []models.CanonicalOutage{}, nil
	}

	now := a.clock.Now()
	seen := make(map[string]bool)
	out := make([]models.CanonicalOutage, 0, len(locs))
	for i, loc := range locs {
		id := text[loc[0]:loc[1]]
		if seen[id] {
			continue
		}
		seen[id] = true

		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		snippet := text[loc[1]:end]
		if len(snippet) > incidentContextLen {
			snippet = truncateUTF8(snippet, incidentContextLen)
		}
		snippet = strings.Join(strings.Fields(snippet), " ")

		place, found := extractLocation(a.inferrer, snippet)
		if !found {
			if m := countyPattern.FindString(snippet); m != "" {
				place, found = location{sv: m, en: bilingual.Translate(m)}, true
			}
		}

		rec := models.CanonicalOutage{
			Operator:         a.operator,
			IncidentKey:      id,
			Title:            outageTitle(place, found),
			Description:      bilingual.NewPtr(snippet),
			Status:           detectStatus(snippet, models.StatusActive),
			Severity:         severity.FromText(snippet),
			AffectedServices: detectServices(snippet),
		}
		if found {
			rec.Location = place.sv
		}

		dates := portalDatePattern.FindAllStringSubmatch(snippet, 2)
		if len(dates) > 0 {
			rec.StartTime = parsePortalDate(dates[0], now)
		}
		if len(dates) > 1 {
			rec.EstimatedFixTime = parsePortalDate(dates[1], now)
		}
		out = append(out, rec)
	}
	return out, nil
}

// parsePortalDate дополняет дату без года текущим годом.
// Дата дальше чем на полгода в будущем относится к прошлому году.
func parsePortalDate(m []string, now time.Time) *time.Time {
	local := now.In(stockholm)
	s := fmt.Sprintf("%d %s %s %s", local.Year(), m[1], m[2], m[3])
	t, err := time.ParseInLocation("2006 Jan 2 15:04", s, stockholm)
	if err != nil {
		return nil
	}
	if t.Sub(now) > 183*24*time.Hour {
		t = t.AddDate(-1, 0, 0)
	}
	t = t.UTC()
	return &t
}

// visibleText собирает текстовые узлы документа без script и style
func visibleText(payload []byte) (string, error) {
	z := html.NewTokenizer(bytes.NewReader(payload))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return b.String(), nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if t := strings.TrimSpace(string(z.Text())); t != "" {
				b.WriteString(t)
				b.WriteByte('\n')
			}
		}
	}
}

func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
