package models

import "time"

// KPIs основные показатели дашборда
type KPIs struct {
	TotalIncidents int     `json:"total_incidents"`
	HomicideRate   float64 `json:"homicide_rate"`
	CriticalZones  int     `json:"critical_zones"`
	Population     int     `json:"population"`
}

// TrendPoint помесячная динамика
type TrendPoint struct {
	Month     string `json:"name"`
	Homicides int    `json:"homicides"`
	Others    int    `json:"others"`
}

// NamedCount пара имя/количество для распределений
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// HomicideRate уровень убийств на 100 тыс. жителей за период
type HomicideRate struct {
	Category   string  `json:"category"`
	Total      int     `json:"total"`
	RatePer100 float64 `json:"rate_per_100k"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Population int     `json:"population"`
}

// CategoryCount количество по категории (для сравнения периодов)
type CategoryCount struct {
	Category string
	Count    int
}

// Alert сигнал раннего предупреждения
type Alert struct {
	Category string  `json:"category"`
	Level    string  `json:"level"`
	Message  string  `json:"message"`
	Current  int     `json:"current"`
	Previous int     `json:"previous"`
	Increase float64 `json:"increase_pct"`
}

// InsightSnapshot данные, по которым строится аналитическая справка
type InsightSnapshot struct {
	Total       int
	Homicides   int
	TopLocality string
	TopCount    int
}

// Period необязательный интервал дат, границы включительно
type Period struct {
	Start *time.Time
	End   *time.Time
}

// SummaryItem строка сводного списка инцидентов
type SummaryItem struct {
	ID          string `json:"id"`
	Date        string `json:"fecha"`
	Category    string `json:"tipo"`
	Locality    string `json:"barrio"`
	Description string `json:"descripcion"`
	Status      string `json:"estado"`
}

// AlertReport ответ системы раннего предупреждения
type AlertReport struct {
	Alerts    []Alert   `json:"alerts"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// Narrative аналитическая справка от генератора текста
type Narrative struct {
	Insight  string `json:"insight"`
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
	Cached   bool   `json:"cached"`
	Detail   string `json:"detail,omitempty"`
}
