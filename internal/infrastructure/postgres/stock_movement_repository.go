package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, item_id, item_name, type, quantity, date,
	hospital_id, hospital_name, unit_id, unit_name,
	patient_id, patient_name, notes, user_id, user_name, created_at`

// StockMovementRepo implementação do porto StockMovementRepository sobre
// PostgreSQL (usável com pool ou tx). Somente INSERT e SELECT: o registro
// de auditoria é append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste um movimento confirmado.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, item_id, item_name, type, quantity, date,
			hospital_id, hospital_name, unit_id, unit_name,
			patient_id, patient_name, notes, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''), $10,
			NULLIF($11, ''), $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.ItemName, movement.Type, movement.Quantity, movement.Date,
		movement.HospitalID, movement.HospitalName, movement.UnitID, movement.UnitName,
		movement.PatientID, movement.PatientName, movement.Notes, movement.UserID, movement.UserName,
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List devolve os movimentos que batem com o filtro, mais recentes primeiro.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var conditions []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.ItemID != "" {
		add("item_id = $%d", filter.ItemID)
	}
	if filter.HospitalID != "" {
		add("hospital_id = $%d", filter.HospitalID)
	}
	if filter.UnitID != "" {
		add("unit_id = $%d", filter.UnitID)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date <= $%d", *filter.To)
	}

	query := `SELECT ` + movementColumns + ` FROM stock_movements`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SumConsumption agrega o consumo confirmado por item no período,
// opcionalmente restrito a um hospital/unidade.
func (r *StockMovementRepo) SumConsumption(hospitalID, unitID string, from, to time.Time) ([]repository.ConsumptionTotal, error) {
	query := `
		SELECT item_id, item_name, COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE type = $1 AND date >= $2 AND date <= $3`
	args := []any{entity.MovementTypeConsumption, from, to}
	if hospitalID != "" {
		args = append(args, hospitalID)
		query += fmt.Sprintf(" AND hospital_id = $%d", len(args))
	}
	if unitID != "" {
		args = append(args, unitID)
		query += fmt.Sprintf(" AND unit_id = $%d", len(args))
	}
	query += " GROUP BY item_id, item_name ORDER BY 3 DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum consumption: %w", err)
	}
	defer rows.Close()

	var totals []repository.ConsumptionTotal
	for rows.Next() {
		var t repository.ConsumptionTotal
		if err := rows.Scan(&t.ItemID, &t.ItemName, &t.Total); err != nil {
			return nil, fmt.Errorf("scan consumption total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func scanMovement(rows pgx.Rows) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var hospitalID, unitID, patientID *string
	if err := rows.Scan(
		&m.ID, &m.ItemID, &m.ItemName, &m.Type, &m.Quantity, &m.Date,
		&hospitalID, &m.HospitalName, &unitID, &m.UnitName,
		&patientID, &m.PatientName, &m.Notes, &m.UserID, &m.UserName, &m.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan stock movement: %w", err)
	}
	if hospitalID != nil {
		m.HospitalID = *hospitalID
	}
	if unitID != nil {
		m.UnitID = *unitID
	}
	if patientID != nil {
		m.PatientID = *patientID
	}
	return &m, nil
}
