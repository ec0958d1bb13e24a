package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/bilingual"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/shenikar/telecom_outage_system/internal/severity"
)

// flexString принимает в JSON как строку, так и число
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// enghouseTicket - элемент AreaTicketList / ImportantMessages порталов Enghouse
type enghouseTicket struct {
	FaultID            flexString `json:"FaultId"`
	ExternalID         flexString `json:"ExternalId"`
	Text               string     `json:"Text"`
	EventTime          flexString `json:"EventTime"`
	EstimatedCloseTime flexString `json:"EstimatedCloseTime"`
	Latitude           *float64   `json:"Latitude"`
	Longitude          *float64   `json:"Longitude"`
}

func (t enghouseTicket) key() string {
	if id := strings.TrimSpace(string(t.FaultID)); id != "" {
		return id
	}
	return strings.TrimSpace(string(t.ExternalID))
}

// EnghouseAdapter разбирает тикеты порталов покрытия Enghouse (Telia, Lycamobile).
type EnghouseAdapter struct {
	operator   string
	inferrer   *region.Inferrer
	requireKey bool
	// htmlFallback разбирает HTML страницы покрытия, если ответ не JSON
	htmlFallback bool
	clock        clockwork.Clock
}

// NewTelia - тикеты Telia, с разбором HTML страницы как запасным вариантом
func NewTelia(in *region.Inferrer, clock clockwork.Clock) *EnghouseAdapter {
	return &EnghouseAdapter{
		operator:     OperatorTelia,
		inferrer:     in,
		htmlFallback: true,
		clock:        clock,
	}
}

// NewLycamobile - тикеты портала Telenor, которым пользуется Lycamobile. Тикеты без идентификатора пропускаются.
func NewLycamobile(in *region.Inferrer) *EnghouseAdapter {
	return &EnghouseAdapter{
		operator:   OperatorLycamobile,
		inferrer:   in,
		requireKey: true,
	}
}

func (a *EnghouseAdapter) Operator() string { return a.operator }

func (a *EnghouseAdapter) Normalize(payload []byte) ([]models.CanonicalOutage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, errors.New("empty payload")
	}

	if trimmed[0] != '[' && trimmed[0] != '{' {
		if !a.htmlFallback {
			return nil, fmt.Errorf("%s: payload is not JSON", a.operator)
		}
		return a.normalizeHTML(trimmed)
	}

	tickets, err := decodeTickets(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s: decode tickets: %w", a.operator, err)
	}

	out := make([]models.CanonicalOutage, 0, len(tickets))
	var errs []error
	for i, raw := range tickets {
		var t enghouseTicket
		if err := json.Unmarshal(raw, &t); err != nil {
			errs = append(errs, fmt.Errorf("%s: ticket %d: %w", a.operator, i, err))
			continue
		}
		rec, ok := a.fromTicket(t)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, errors.Join(errs...)
}

func (a *EnghouseAdapter) fromTicket(t enghouseTicket) (models.CanonicalOutage, bool) {
	key := t.key()
	text := strings.TrimSpace(t.Text)
	if key == "" && (a.requireKey || text == "") {
		return models.CanonicalOutage{}, false
	}

	loc, found := extractLocation(a.inferrer, text)
	rec := models.CanonicalOutage{
		Operator:         a.operator,
		IncidentKey:      key,
		Title:            outageTitle(loc, found),
		Description:      bilingual.NewPtr(text),
		Status:           detectStatus(text, models.StatusActive),
		Severity:         severity.FromText(text),
		StartTime:        parseTimestamp(string(t.EventTime)),
		EstimatedFixTime: parseTimestamp(string(t.EstimatedCloseTime)),
		Latitude:         t.Latitude,
		Longitude:        t.Longitude,
		AffectedServices: detectServices(text),
	}
	if found {
		rec.Location = loc.sv
	}
	return rec, true
}

// decodeTickets принимает массив тикетов, объект с массивом внутри или одиночный тикет
func decodeTickets(payload []byte) ([]json.RawMessage, error) {
	if payload[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(payload, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil, err
	}
	for _, k := range []string{"Tickets", "tickets", "Items", "items", "Messages", "messages"} {
		if inner, ok := obj[k]; ok {
			var list []json.RawMessage
			if err := json.Unmarshal(inner, &list); err != nil {
				return nil, fmt.Errorf("field %s: %w", k, err)
			}
			return list, nil
		}
	}
	return []json.RawMessage{json.RawMessage(payload)}, nil
}
