package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

const patientColumns = "id, name, birth_date, cns, registered_ubs_id, created_at, updated_at"

// PatientRepo implementação do porto PatientRepository sobre PostgreSQL.
type PatientRepo struct {
	pool *pgxpool.Pool
}

// NewPatientRepository constrói o adaptador de pacientes.
func NewPatientRepository(pool *pgxpool.Pool) *PatientRepo {
	return &PatientRepo{pool: pool}
}

// Create persiste um novo paciente. CNS é único.
func (r *PatientRepo) Create(patient *entity.Patient) error {
	query := `
		INSERT INTO patients (id, name, birth_date, cns, registered_ubs_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.BirthDate, patient.CNS,
		patient.RegisteredUBSID, patient.CreatedAt, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// Update atualiza um paciente.
func (r *PatientRepo) Update(patient *entity.Patient) error {
	query := `
		UPDATE patients SET name = $2, birth_date = $3, cns = $4, registered_ubs_id = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.BirthDate, patient.CNS,
		patient.RegisteredUBSID, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

// GetByID busca um paciente pelo ID. Devolve nil quando não existe.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	var p entity.Patient
	var ubsID *string
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.BirthDate, &p.CNS, &ubsID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if ubsID != nil {
		p.RegisteredUBSID = *ubsID
	}
	return &p, nil
}

// List lista pacientes por nome com paginação.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		var ubsID *string
		if err := rows.Scan(&p.ID, &p.Name, &p.BirthDate, &p.CNS, &ubsID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		if ubsID != nil {
			p.RegisteredUBSID = *ubsID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
