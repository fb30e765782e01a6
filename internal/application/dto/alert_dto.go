package dto

import (
	"time"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// AlertResponse representación JSON de una alerta.
type AlertResponse struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"product_id"`
	UserID     string     `json:"user_id"`
	Category   string     `json:"category"`
	Priority   string     `json:"priority"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Active     bool       `json:"active"`
	Read       bool       `json:"read"`
	Resolved   bool       `json:"resolved"`
	CreatedAt  time.Time  `json:"created_at"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// ToAlertResponse construye la respuesta de una alerta.
func ToAlertResponse(a *entity.Alert) *AlertResponse {
	return &AlertResponse{
		ID:         a.ID,
		ProductID:  a.ProductID,
		UserID:     a.UserID,
		Category:   string(a.Category),
		Priority:   string(a.Priority),
		Title:      a.Title,
		Message:    a.Message,
		Active:     a.Active,
		Read:       a.Read,
		Resolved:   a.Resolved,
		CreatedAt:  a.CreatedAt,
		ReadAt:     a.ReadAt,
		ResolvedAt: a.ResolvedAt,
	}
}

// SweepResultResponse resultado de un barrido de alertas.
type SweepResultResponse struct {
	Created      int              `json:"created"`
	Skipped      int              `json:"skipped"`
	NotEvaluated []string         `json:"not_evaluated,omitempty"`
	Alerts       []*AlertResponse `json:"alerts"`
	ExecutedAt   time.Time        `json:"executed_at"`
}
