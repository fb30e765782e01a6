package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, user_id, type, quantity, unit_price, reason,
	reference, notes, stock_before, stock_after, created_at`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Los movimientos son inmutables: solo inserción y lectura.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, user_id, type, quantity, unit_price, reason,
			reference, notes, stock_before, stock_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.UserID, movement.Type, movement.Quantity,
		movement.UnitPrice, movement.Reason, movement.Reference, movement.Notes,
		movement.StockBefore, movement.StockAfter, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &m.UnitPrice,
		&m.Reason, &m.Reference, &m.Notes, &m.StockBefore, &m.StockAfter, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List devuelve los movimientos (más recientes primero) y el total sin paginar.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, int, error) {
	var conds []string
	var args []any
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, "product_id = $"+strconv.Itoa(len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, "type = $"+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, "created_at <= $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM movements`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := `SELECT ` + movementColumns + ` FROM movements` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &m.UnitPrice,
			&m.Reason, &m.Reference, &m.Notes, &m.StockBefore, &m.StockAfter, &m.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}

// Stats agrega conteos por tipo y valor total de entradas/salidas con precio,
// en el rango de fechas dado (ambos extremos opcionales).
func (r *MovementRepo) Stats(from, to *time.Time) (*repository.MovementStats, error) {
	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, "created_at <= $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	query := `
		SELECT
			count(*) FILTER (WHERE type = 'in'),
			count(*) FILTER (WHERE type = 'out'),
			count(*) FILTER (WHERE type = 'adjust'),
			COALESCE(sum(quantity * unit_price) FILTER (WHERE type = 'in' AND unit_price IS NOT NULL), 0),
			COALESCE(sum(quantity * unit_price) FILTER (WHERE type = 'out' AND unit_price IS NOT NULL), 0)
		FROM movements` + where
	var stats repository.MovementStats
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&stats.InCount, &stats.OutCount, &stats.AdjustCount, &stats.InValue, &stats.OutValue,
	)
	if err != nil {
		return nil, fmt.Errorf("movement stats: %w", err)
	}
	return &stats, nil
}
