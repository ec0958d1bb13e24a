package models

import "time"

// RawSignal - неизменяемый снимок ответа источника оператора
type RawSignal struct {
	ID         int64     `json:"id"`
	Operator   string    `json:"operator"`
	SourceURL  string    `json:"source_url"`
	Payload    []byte    `json:"-"`
	CapturedAt time.Time `json:"captured_at"`
}

// RawFetchResult - результат одного обращения к источнику до сохранения
type RawFetchResult struct {
	Operator  string
	SourceURL string
	Payload   []byte
	FetchedAt time.Time
}

// IngestReport - итоги одного цикла загрузки
type IngestReport struct {
	Sources    int `json:"sources"`
	FetchFails int `json:"fetch_failures"`
	RawSignals int `json:"raw_signals"`
	Records    int `json:"records"`
	Created    int `json:"created"`
	Updated    int `json:"updated"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// Merge складывает счетчики другого отчета
func (r *IngestReport) Merge(other IngestReport) {
	r.Sources += other.Sources
	r.FetchFails += other.FetchFails
	r.RawSignals += other.RawSignals
	r.Records += other.Records
	r.Created += other.Created
	r.Updated += other.Updated
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

// ScraperStatus - время последнего сохраненного снимка по оператору
type ScraperStatus struct {
	Operator      string    `json:"operator"`
	LastScrapedAt time.Time `json:"last_scraped_at"`
}

// PurgeResult - итоги очистки по сроку хранения
type PurgeResult struct {
	Cutoff            time.Time `json:"cutoff"`
	OutagesDeleted    int64     `json:"outages_deleted"`
	RawSignalsDeleted int64     `json:"raw_signals_deleted"`
}
