package models

import "fmt"

// FetchError - источник оператора недоступен или ответил ошибкой
type FetchError struct {
	Operator  string
	SourceURL string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Operator, e.SourceURL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError - снимок не удалось разобрать адаптером
type ParseError struct {
	Operator    string
	RawSignalID int64
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s raw_signal=%d: %v", e.Operator, e.RawSignalID, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReconciliationError - запись не удалось сверить с хранилищем
type ReconciliationError struct {
	Operator    string
	IncidentKey string
	RawSignalID int64
	Err         error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconcile %s key=%q raw_signal=%d: %v", e.Operator, e.IncidentKey, e.RawSignalID, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }
