package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

var _ repository.StockConfigRepository = (*StockConfigRepo)(nil)

const stockConfigColumns = "key, item_id, hospital_id, unit_id, quantity, min_quantity, strategic_quantity, updated_at"

// StockConfigRepo implementação do porto StockConfigRepository sobre
// PostgreSQL (usável com pool ou tx). Get/GetForUpdate devolvem nil quando
// o local nunca foi abastecido.
type StockConfigRepo struct {
	q Querier
}

// NewStockConfigRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockConfigRepository(q Querier) *StockConfigRepo {
	return &StockConfigRepo{q: q}
}

// Get busca o registro de quantidade pela chave do local.
func (r *StockConfigRepo) Get(key string) (*entity.StockConfig, error) {
	query := `SELECT ` + stockConfigColumns + ` FROM stock_configs WHERE key = $1`
	return r.scanOne(query, key)
}

// GetForUpdate busca o registro bloqueando a linha (SELECT FOR UPDATE).
func (r *StockConfigRepo) GetForUpdate(key string) (*entity.StockConfig, error) {
	query := `SELECT ` + stockConfigColumns + ` FROM stock_configs WHERE key = $1 FOR UPDATE`
	return r.scanOne(query, key)
}

// Upsert insere ou atualiza o registro de quantidade do local.
func (r *StockConfigRepo) Upsert(config *entity.StockConfig) error {
	query := `
		INSERT INTO stock_configs (key, item_id, hospital_id, unit_id, quantity, min_quantity, strategic_quantity, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, now())
		ON CONFLICT (key)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              min_quantity = EXCLUDED.min_quantity,
		              strategic_quantity = EXCLUDED.strategic_quantity,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		config.Key, config.ItemID, config.HospitalID, config.UnitID,
		config.Quantity, config.MinQuantity, config.StrategicQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock config: %w", err)
	}
	return nil
}

// ListByHospital lista os registros de todos os locais de um hospital.
func (r *StockConfigRepo) ListByHospital(hospitalID string) ([]*entity.StockConfig, error) {
	query := `SELECT ` + stockConfigColumns + ` FROM stock_configs WHERE hospital_id = $1 ORDER BY key`
	rows, err := r.q.Query(context.Background(), query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list stock configs by hospital: %w", err)
	}
	defer rows.Close()
	return scanStockConfigs(rows)
}

// ListByItem lista os registros de um item em todos os locais.
func (r *StockConfigRepo) ListByItem(itemID string) ([]*entity.StockConfig, error) {
	query := `SELECT ` + stockConfigColumns + ` FROM stock_configs WHERE item_id = $1 ORDER BY key`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock configs by item: %w", err)
	}
	defer rows.Close()
	return scanStockConfigs(rows)
}

// ListBelowMinimum devolve registros com quantidade no limite mínimo ou
// abaixo. Locais sem mínimo configurado (zero) não entram.
func (r *StockConfigRepo) ListBelowMinimum() ([]*entity.StockConfig, error) {
	query := `
		SELECT ` + stockConfigColumns + ` FROM stock_configs
		WHERE min_quantity > 0 AND quantity <= min_quantity
		ORDER BY key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock configs below minimum: %w", err)
	}
	defer rows.Close()
	return scanStockConfigs(rows)
}

func (r *StockConfigRepo) scanOne(query, key string) (*entity.StockConfig, error) {
	var c entity.StockConfig
	var hospitalID, unitID *string
	err := r.q.QueryRow(context.Background(), query, key).Scan(
		&c.Key, &c.ItemID, &hospitalID, &unitID,
		&c.Quantity, &c.MinQuantity, &c.StrategicQuantity, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // local nunca abastecido
		}
		return nil, fmt.Errorf("get stock config: %w", err)
	}
	if hospitalID != nil {
		c.HospitalID = *hospitalID
	}
	if unitID != nil {
		c.UnitID = *unitID
	}
	return &c, nil
}

func scanStockConfigs(rows pgx.Rows) ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for rows.Next() {
		var c entity.StockConfig
		var hospitalID, unitID *string
		if err := rows.Scan(
			&c.Key, &c.ItemID, &hospitalID, &unitID,
			&c.Quantity, &c.MinQuantity, &c.StrategicQuantity, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock config: %w", err)
		}
		if hospitalID != nil {
			c.HospitalID = *hospitalID
		}
		if unitID != nil {
			c.UnitID = *unitID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
