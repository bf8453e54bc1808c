package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

var _ repository.ServedUnitRepository = (*ServedUnitRepo)(nil)

// ServedUnitRepo implementação do porto ServedUnitRepository sobre PostgreSQL.
type ServedUnitRepo struct {
	pool *pgxpool.Pool
}

// NewServedUnitRepository constrói o adaptador de unidades atendidas.
func NewServedUnitRepository(pool *pgxpool.Pool) *ServedUnitRepo {
	return &ServedUnitRepo{pool: pool}
}

// Create persiste uma nova unidade atendida.
func (r *ServedUnitRepo) Create(unit *entity.ServedUnit) error {
	query := `
		INSERT INTO served_units (id, hospital_id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		unit.ID, unit.HospitalID, unit.Name, unit.Location, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert served unit: %w", err)
	}
	return nil
}

// Update atualiza nome e localização de uma unidade.
func (r *ServedUnitRepo) Update(unit *entity.ServedUnit) error {
	query := `UPDATE served_units SET name = $2, location = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Location, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update served unit: %w", err)
	}
	return nil
}

// GetByID busca uma unidade pelo ID. Devolve nil quando não existe.
func (r *ServedUnitRepo) GetByID(id string) (*entity.ServedUnit, error) {
	query := `SELECT id, hospital_id, name, location, created_at, updated_at FROM served_units WHERE id = $1`
	var u entity.ServedUnit
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.HospitalID, &u.Name, &u.Location, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get served unit: %w", err)
	}
	return &u, nil
}

// ListByHospital lista as unidades de um hospital por nome.
func (r *ServedUnitRepo) ListByHospital(hospitalID string) ([]*entity.ServedUnit, error) {
	query := `
		SELECT id, hospital_id, name, location, created_at, updated_at
		FROM served_units WHERE hospital_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list served units: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServedUnit
	for rows.Next() {
		var u entity.ServedUnit
		if err := rows.Scan(&u.ID, &u.HospitalID, &u.Name, &u.Location, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan served unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
