// Package bilingual переводит шведские тексты операторов на английский по словарю фраз.
package bilingual

import (
	"sort"
	"strings"

	"github.com/shenikar/telecom_outage_system/internal/models"
)

var phrases = map[string]string{
	// типы сбоев
	"störning":          "disruption",
	"avbrott":           "outage",
	"planerat avbrott":  "planned outage",
	"oplanerat avbrott": "unplanned outage",
	"driftstörning":     "service disruption",
	"fel":               "fault",
	"kabelfel":          "cable fault",

	// сети
	"mobilnät":     "mobile network",
	"mobila nätet": "mobile network",
	"fasta nätet":  "fixed network",
	"bredband":     "broadband",
	"fiber":        "fiber",
	"telefoni":     "telephony",

	// статусы
	"aktiv":        "active",
	"löst":         "resolved",
	"pågående":     "ongoing",
	"undersökning": "investigating",
	"åtgärdas":     "being fixed",
	"planerad":     "scheduled",

	// серьезность
	"allvarlig":  "severe",
	"omfattande": "extensive",
	"stor":       "major",
	"liten":      "minor",
	"begränsad":  "limited",
	"lokal":      "local",

	// услуги
	"4g":     "4G",
	"5g":     "5G",
	"lte":    "LTE",
	"3g":     "3G",
	"2g":     "2G",
	"surf":   "data",
	"samtal": "calls",
	"sms":    "SMS",
	"mms":    "MMS",

	// места
	"län":    "county",
	"kommun": "municipality",
	"område": "area",
	"region": "region",
	"plats":  "location",

	// время
	"beräknad åtgärdstid": "estimated fix time",
	"starttid":            "start time",
	"sluttid":             "end time",

	// частые фразы
	"på grund av":        "due to",
	"kan du uppleva":     "you may experience",
	"vi arbetar med att": "we are working to",
	"åtgärda":            "fix",
	"felet":              "the fault",
	"i ditt område":      "in your area",
}

type phrase struct {
	sv string
	en string
}

// ordered - словарь, отсортированный от длинных фраз к коротким
var ordered = func() []phrase {
	out := make([]phrase, 0, len(phrases))
	for sv, en := range phrases {
		out = append(out, phrase{sv: sv, en: en})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].sv) != len(out[j].sv) {
			return len(out[i].sv) > len(out[j].sv)
		}
		return out[i].sv < out[j].sv
	})
	return out
}()

type span struct {
	start, end int
	en         string
}

// Translate заменяет известные шведские фразы английскими без учета регистра.
// Более длинные фразы занимают свои позиции первыми, поэтому короткая фраза
// не может испортить уже найденную длинную. Текст вне словаря не меняется.
func Translate(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		// смещения в нижнем регистре не совпадают с исходными
		text = lower
	}

	claimed := make([]bool, len(lower))
	spans := make([]span, 0)
	for _, p := range ordered {
		from := 0
		for from < len(lower) {
			i := strings.Index(lower[from:], p.sv)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(p.sv)
			if isFree(claimed[start:end]) {
				for k := start; k < end; k++ {
					claimed[k] = true
				}
				spans = append(spans, span{start: start, end: end, en: p.en})
				from = end
				continue
			}
			from = start + 1
		}
	}
	if len(spans) == 0 {
		return text
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.start])
		b.WriteString(s.en)
		prev = s.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

func isFree(claimed []bool) bool {
	for _, c := range claimed {
		if c {
			return false
		}
	}
	return true
}

// New строит двуязычный текст. Если перевод не передан, он вычисляется через Translate.
func New(primary string, translated ...string) models.BilingualText {
	if len(translated) > 0 && translated[0] != "" {
		return models.BilingualText{SV: primary, EN: translated[0]}
	}
	return models.BilingualText{SV: primary, EN: Translate(primary)}
}

// NewPtr - то же, что New, но для необязательных полей: пустой текст дает nil.
func NewPtr(primary string) *models.BilingualText {
	if strings.TrimSpace(primary) == "" {
		return nil
	}
	t := New(primary)
	return &t
}
