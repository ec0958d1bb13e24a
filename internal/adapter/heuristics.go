package adapter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/shenikar/telecom_outage_system/internal/bilingual"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
)

var stockholm = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		return time.UTC
	}
	return loc
}()

var (
	resolvedKeywords      = []string{"löst", "resolved", "åtgärdad", "åtgärdat", "fixed"}
	scheduledKeywords     = []string{"planerad", "planerat", "scheduled", "underhåll"}
	investigatingKeywords = []string{"undersök", "investigating", "utred"}
)

// detectStatus классифицирует текст по ключевым словам, иначе возвращает fallback
func detectStatus(text string, fallback models.OutageStatus) models.OutageStatus {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, resolvedKeywords):
		return models.StatusResolved
	case containsAny(lower, scheduledKeywords):
		return models.StatusScheduled
	case containsAny(lower, investigatingKeywords):
		return models.StatusInvestigating
	}
	return fallback
}

type serviceKeyword struct {
	keywords []string
	service  string
}

// порядок определяет порядок услуг в записи
var serviceKeywords = []serviceKeyword{
	{[]string{"mobilnät", "mobil", "mobile"}, models.ServiceMobile},
	{[]string{"5g"}, models.Service5G},
	{[]string{"4g", "lte"}, models.Service4G},
	{[]string{"3g"}, models.Service3G},
	{[]string{"2g"}, models.Service2G},
	{[]string{"surf", "data"}, models.ServiceData},
	{[]string{"internet"}, models.ServiceInternet},
	{[]string{"samtal", "röst", "telefoni"}, models.ServiceVoice},
	{[]string{"sms"}, models.ServiceSMS},
	{[]string{"bredband", "broadband"}, models.ServiceBroadband},
	{[]string{"fiber"}, models.ServiceFiber},
}

// detectServices находит затронутые услуги в тексте, по умолчанию мобильная сеть
func detectServices(text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0)
	for _, sk := range serviceKeywords {
		if containsAny(lower, sk.keywords) {
			out = append(out, sk.service)
		}
	}
	if len(out) == 0 {
		out = append(out, models.ServiceMobile)
	}
	return out
}

var cityPattern = regexp.MustCompile(`(?:\bi|\bvid|område)\s+([A-ZÅÄÖ][a-zåäö]+(?:\s+[A-ZÅÄÖ][a-zåäö]+)?)`)

// location описывает место, найденное в тексте
type location struct {
	sv string
	en string
}

// extractLocation ищет лен или город по справочнику, затем по шаблону "i Stad"
func extractLocation(in *region.Inferrer, text string) (location, bool) {
	if r := in.Infer(text); r != nil {
		return location{sv: r.Name.SV, en: r.Name.EN}, true
	}
	if m := cityPattern.FindStringSubmatch(text); m != nil {
		return location{sv: m[1], en: m[1]}, true
	}
	return location{}, false
}

// outageTitle строит заголовок "Störning i X" / "Outage in X"
func outageTitle(loc location, ok bool) models.BilingualText {
	if !ok {
		return bilingual.New("Störning i Sverige", "Outage in Sweden")
	}
	return bilingual.New(fmt.Sprintf("Störning i %s", loc.sv), fmt.Sprintf("Outage in %s", loc.en))
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var aspNetDate = regexp.MustCompile(`^/Date\((-?\d+)`)

// parseTimestamp понимает ISO 8601 с зоной и без нее, а также формат /Date(ms)/.
// Время без зоны считается стокгольмским.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if m := aspNetDate.FindStringSubmatch(s); m != nil {
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil
		}
		t := time.UnixMilli(ms).UTC()
		return &t
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, stockholm); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
