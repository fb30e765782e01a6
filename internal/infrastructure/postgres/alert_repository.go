package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/davidmtzc/inventra-api/internal/domain"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, product_id, user_id, category, priority, title, message,
	active, read, resolved, created_at, read_at, resolved_at`

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
// El índice único parcial sobre (product_id, category) WHERE active cierra la
// carrera entre barridos concurrentes: el segundo insert recibe 23505.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta. Devuelve domain.ErrDuplicate si ya hay una
// alerta activa de la misma categoría para el producto.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, product_id, user_id, category, priority, title, message,
			active, read, resolved, created_at, read_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.UserID, alert.Category, alert.Priority,
		alert.Title, alert.Message, alert.Active, alert.Read, alert.Resolved,
		alert.CreatedAt, alert.ReadAt, alert.ResolvedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ProductID, &a.UserID, &a.Category, &a.Priority, &a.Title, &a.Message,
		&a.Active, &a.Read, &a.Resolved, &a.CreatedAt, &a.ReadAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// Update persiste los flags de ciclo de vida de una alerta.
func (r *AlertRepo) Update(alert *entity.Alert) error {
	query := `
		UPDATE alerts SET active = $2, read = $3, resolved = $4, read_at = $5, resolved_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Active, alert.Read, alert.Resolved, alert.ReadAt, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	return nil
}

// List lista alertas según filtro (más recientes primero) con el total sin paginar.
func (r *AlertRepo) List(filter repository.AlertFilter) ([]*entity.Alert, int, error) {
	var conds []string
	var args []any
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, "product_id = $"+strconv.Itoa(len(args)))
	}
	if filter.ActiveOnly {
		conds = append(conds, "active = true")
	}
	if filter.UnreadOnly {
		conds = append(conds, "read = false")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		conds = append(conds, "priority = $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM alerts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count alerts: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := `SELECT ` + alertColumns + ` FROM alerts` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.UserID, &a.Category, &a.Priority, &a.Title, &a.Message,
			&a.Active, &a.Read, &a.Resolved, &a.CreatedAt, &a.ReadAt, &a.ResolvedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

// ActiveCategories devuelve las categorías con alerta activa para un producto.
func (r *AlertRepo) ActiveCategories(productID string) (map[entity.AlertCategory]bool, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category FROM alerts WHERE product_id = $1 AND active = true`, productID)
	if err != nil {
		return nil, fmt.Errorf("active alert categories: %w", err)
	}
	defer rows.Close()

	categories := make(map[entity.AlertCategory]bool)
	for rows.Next() {
		var c entity.AlertCategory
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan alert category: %w", err)
		}
		categories[c] = true
	}
	return categories, rows.Err()
}

// CountUnread cuenta las alertas no leídas.
func (r *AlertRepo) CountUnread() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM alerts WHERE read = false`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return count, nil
}

// DeleteResolvedBefore elimina alertas resueltas con fecha de resolución
// estrictamente anterior al corte. Devuelve cuántas eliminó.
func (r *AlertRepo) DeleteResolvedBefore(cutoff time.Time) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM alerts WHERE resolved = true AND resolved_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete resolved alerts: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
