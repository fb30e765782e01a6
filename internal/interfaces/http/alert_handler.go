package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davidmtzc/inventra-api/internal/application/alerts"
	"github.com/davidmtzc/inventra-api/internal/application/dto"
	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// AlertHandler maneja las peticiones HTTP de alertas.
type AlertHandler struct {
	lifecycle *alerts.LifecycleUseCase
	sweep     *alerts.SweepUseCase
	retention time.Duration
}

// NewAlertHandler construye el handler. retention es el corte por defecto de la purga.
func NewAlertHandler(lifecycle *alerts.LifecycleUseCase, sweep *alerts.SweepUseCase, retention time.Duration) *AlertHandler {
	return &AlertHandler{lifecycle: lifecycle, sweep: sweep, retention: retention}
}

// List lista alertas con filtros y paginación.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	filter := repository.AlertFilter{
		ProductID:  c.Query("product_id"),
		ActiveOnly: c.QueryBool("active"),
		UnreadOnly: c.QueryBool("unread"),
		Category:   entity.AlertCategory(c.Query("category")),
		Priority:   entity.AlertPriority(c.Query("priority")),
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}
	list, total, err := h.lifecycle.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := make([]*dto.AlertResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, dto.ToAlertResponse(a))
	}
	return c.JSON(fiber.Map{"total": total, "alerts": resp})
}

// GetByID obtiene una alerta por ID.
func (h *AlertHandler) GetByID(c *fiber.Ctx) error {
	alert, err := h.lifecycle.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToAlertResponse(alert))
}

// CountUnread cuenta las alertas no leídas.
func (h *AlertHandler) CountUnread(c *fiber.Ctx) error {
	count, err := h.lifecycle.CountUnread(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"unread": count})
}

// MarkRead marca una alerta como leída (idempotente).
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	alert, err := h.lifecycle.MarkRead(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToAlertResponse(alert))
}

// Resolve resuelve una alerta (idempotente): deja de estar activa y libera
// su categoría para futuras alertas del producto.
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alert, err := h.lifecycle.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToAlertResponse(alert))
}

// Generate dispara un barrido de alertas a demanda firmado por el usuario autenticado.
func (h *AlertHandler) Generate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	result, err := h.sweep.Run(c.Context(), userID)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := dto.SweepResultResponse{
		Created:      result.Created,
		Skipped:      result.Skipped,
		NotEvaluated: result.NotEvaluated,
		Alerts:       make([]*dto.AlertResponse, 0, len(result.Alerts)),
		ExecutedAt:   result.ExecutedAt,
	}
	for _, a := range result.Alerts {
		resp.Alerts = append(resp.Alerts, dto.ToAlertResponse(a))
	}
	return c.JSON(resp)
}

// Purge elimina alertas resueltas con antigüedad mayor al corte configurado.
// days (query) permite sobreescribir el corte.
func (h *AlertHandler) Purge(c *fiber.Ctx) error {
	olderThan := h.retention
	if days := c.QueryInt("days", 0); days > 0 {
		olderThan = time.Duration(days) * 24 * time.Hour
	}
	deleted, err := h.lifecycle.Purge(c.Context(), olderThan)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "corte de purga inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
