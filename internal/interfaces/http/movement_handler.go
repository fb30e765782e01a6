package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davidmtzc/inventra-api/internal/application/dto"
	"github.com/davidmtzc/inventra-api/internal/application/inventory"
	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

// MovementHandler maneja la consulta del historial de movimientos.
type MovementHandler struct {
	uc *inventory.MovementHistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementHistoryUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List lista movimientos con filtros y paginación.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID: c.Query("product_id"),
		UserID:    c.Query("user_id"),
		Type:      entity.MovementType(c.Query("type")),
		Limit:     c.QueryInt("limit", 20),
		Offset:    c.QueryInt("offset", 0),
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}

	movements, total, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": total, "movements": toMovementResponses(movements)})
}

// GetByID obtiene un movimiento por ID.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToMovementResponse(mov))
}

// ListByProduct lista el historial de un producto (más recientes primero).
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	movements, total, err := h.uc.ListByProduct(c.Context(), c.Params("id"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": total, "movements": toMovementResponses(movements)})
}

// Stats estadísticas agregadas de movimientos por tipo para un período.
func (h *MovementHandler) Stats(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}

	stats, err := h.uc.Stats(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := dto.MovementStatsResponse{
		TotalMovements: stats.InCount + stats.OutCount + stats.AdjustCount,
		InCount:        stats.InCount,
		InValue:        stats.InValue,
		OutCount:       stats.OutCount,
		OutValue:       stats.OutValue,
		AdjustCount:    stats.AdjustCount,
	}
	if from != nil {
		s := from.Format("2006-01-02")
		resp.From = &s
	}
	if to != nil {
		s := to.Format("2006-01-02")
		resp.To = &s
	}
	return c.JSON(resp)
}

func toMovementResponses(movements []*entity.Movement) []*dto.MovementResponse {
	list := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		list = append(list, dto.ToMovementResponse(m))
	}
	return list
}

// parseDateQuery interpreta un query param de fecha YYYY-MM-DD opcional.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
