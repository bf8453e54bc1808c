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

var _ repository.HospitalRepository = (*HospitalRepo)(nil)

// HospitalRepo implementação do porto HospitalRepository sobre PostgreSQL.
type HospitalRepo struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository constrói o adaptador de hospitais.
func NewHospitalRepository(pool *pgxpool.Pool) *HospitalRepo {
	return &HospitalRepo{pool: pool}
}

// Create persiste um novo hospital ou UBS.
func (r *HospitalRepo) Create(hospital *entity.Hospital) error {
	query := `
		INSERT INTO hospitals (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		hospital.ID, hospital.Name, hospital.Address, hospital.CreatedAt, hospital.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// Update atualiza nome e endereço de um hospital.
func (r *HospitalRepo) Update(hospital *entity.Hospital) error {
	query := `UPDATE hospitals SET name = $2, address = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		hospital.ID, hospital.Name, hospital.Address, hospital.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hospital: %w", err)
	}
	return nil
}

// GetByID busca um hospital pelo ID. Devolve nil quando não existe.
func (r *HospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM hospitals WHERE id = $1`
	var h entity.Hospital
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	return &h, nil
}

// List lista todos os hospitais por nome.
func (r *HospitalRepo) List() ([]*entity.Hospital, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM hospitals ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Hospital
	for rows.Next() {
		var h entity.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
