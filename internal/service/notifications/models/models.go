package models

// NotifyResponse результат ручной рассылки
type NotifyResponse struct {
	Message    string `json:"message"`
	Sent       bool   `json:"sent"`
	AlertCount int    `json:"alert_count"`
}
