package models

// Region - шведский лен с центроидом и альтернативными названиями (города)
type Region struct {
	ID        int64         `json:"id"`
	Name      BilingualText `json:"name"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Aliases   []string      `json:"aliases,omitempty"`
}

// RegionSummary - регион с количеством незакрытых сбоев
type RegionSummary struct {
	Region
	ActiveOutages int `json:"active_outages"`
}

// Operator - оператор связи
type Operator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MTTRStat - среднее время восстановления по оператору
type MTTRStat struct {
	OperatorName     string  `json:"operator_name"`
	ResolvedOutages  int     `json:"resolved_outages"`
	AverageMTTRHours float64 `json:"average_mttr_hours"`
}

// ReliabilityStat - число сбоев и суммарный простой оператора за период
type ReliabilityStat struct {
	OperatorName       string  `json:"operator_name"`
	OutageCount        int     `json:"outage_count"`
	TotalDowntimeHours float64 `json:"total_downtime_hours"`
}
