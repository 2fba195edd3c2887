package models

import "fmt"

const (
	IngestionStatusSuccess        = "success"
	IngestionStatusPartialSuccess = "partial_success"
)

// RawRecord одна строка входного пакета: из таблицы или из JSON массива.
// Ключи - имена колонок в нижнем регистре (tipo, delito, fecha, hora, latitud, longitud, barrio, ...)
type RawRecord map[string]any

// Get возвращает значение поля или nil
func (r RawRecord) Get(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// RowError ошибка конкретной строки пакета
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// IngestionReport итог загрузки пакета
type IngestionReport struct {
	Total        int        `json:"total"`
	SuccessCount int        `json:"success_count"`
	ErrorCount   int        `json:"error_count"`
	Errors       []RowError `json:"errors"`
}

// IngestionResult ответ точки входа загрузки
type IngestionResult struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Report  IngestionReport `json:"report"`
}

// NewIngestionResult собирает ответ по готовому отчету
func NewIngestionResult(report IngestionReport) *IngestionResult {
	status := IngestionStatusSuccess
	if report.ErrorCount > 0 {
		status = IngestionStatusPartialSuccess
	}
	if report.Errors == nil {
		report.Errors = []RowError{}
	}
	return &IngestionResult{
		Status:  status,
		Message: fmt.Sprintf("Load completed: %d succeeded, %d failed.", report.SuccessCount, report.ErrorCount),
		Report:  report,
	}
}
