package report_test

import (
	"time"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios usados pelos relatórios. Só leitura:
// os testes montam o estado direto nos mapas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (r *fakeItemRepo) Create(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) Update(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, nil
}
func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Code == code {
			return item, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.items {
		list = append(list, item)
	}
	return list, nil
}
func (r *fakeItemRepo) UpdateCentralQuantity(id string, quantity int64) error {
	r.items[id].CurrentQuantityCentral = quantity
	return nil
}
func (r *fakeItemRepo) ListBelowMinimumCentral() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.items {
		if item.MinQuantity > 0 && item.CurrentQuantityCentral <= item.MinQuantity {
			list = append(list, item)
		}
	}
	return list, nil
}

type fakeConfigRepo struct {
	configs map[string]*entity.StockConfig
}

func (r *fakeConfigRepo) Get(key string) (*entity.StockConfig, error) {
	if cfg, ok := r.configs[key]; ok {
		return cfg, nil
	}
	return nil, nil
}
func (r *fakeConfigRepo) GetForUpdate(key string) (*entity.StockConfig, error) { return r.Get(key) }
func (r *fakeConfigRepo) Upsert(config *entity.StockConfig) error {
	r.configs[config.Key] = config
	return nil
}
func (r *fakeConfigRepo) ListByHospital(hospitalID string) ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for _, cfg := range r.configs {
		if cfg.HospitalID == hospitalID {
			list = append(list, cfg)
		}
	}
	return list, nil
}
func (r *fakeConfigRepo) ListByItem(itemID string) ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for _, cfg := range r.configs {
		if cfg.ItemID == itemID {
			list = append(list, cfg)
		}
	}
	return list, nil
}
func (r *fakeConfigRepo) ListBelowMinimum() ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for _, cfg := range r.configs {
		if cfg.MinQuantity > 0 && cfg.Quantity <= cfg.MinQuantity {
			list = append(list, cfg)
		}
	}
	return list, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) SumConsumption(hospitalID, unitID string, from, to time.Time) ([]repository.ConsumptionTotal, error) {
	order := []string{}
	totals := map[string]*repository.ConsumptionTotal{}
	for _, m := range r.movements {
		if m.Type != entity.MovementTypeConsumption {
			continue
		}
		if hospitalID != "" && m.HospitalID != hospitalID {
			continue
		}
		if unitID != "" && m.UnitID != unitID {
			continue
		}
		if m.Date.Before(from) || m.Date.After(to) {
			continue
		}
		t, ok := totals[m.ItemID]
		if !ok {
			t = &repository.ConsumptionTotal{ItemID: m.ItemID, ItemName: m.ItemName}
			totals[m.ItemID] = t
			order = append(order, m.ItemID)
		}
		t.Total += m.Quantity
	}
	list := make([]repository.ConsumptionTotal, 0, len(order))
	for _, id := range order {
		list = append(list, *totals[id])
	}
	return list, nil
}

type fakeHospitalRepo struct {
	hospitals map[string]*entity.Hospital
}

func (r *fakeHospitalRepo) Create(h *entity.Hospital) error { r.hospitals[h.ID] = h; return nil }
func (r *fakeHospitalRepo) Update(h *entity.Hospital) error { r.hospitals[h.ID] = h; return nil }
func (r *fakeHospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	if h, ok := r.hospitals[id]; ok {
		return h, nil
	}
	return nil, nil
}
func (r *fakeHospitalRepo) List() ([]*entity.Hospital, error) {
	var list []*entity.Hospital
	for _, h := range r.hospitals {
		list = append(list, h)
	}
	return list, nil
}

type fakeUnitRepo struct {
	units map[string]*entity.ServedUnit
}

func (r *fakeUnitRepo) Create(u *entity.ServedUnit) error { r.units[u.ID] = u; return nil }
func (r *fakeUnitRepo) Update(u *entity.ServedUnit) error { r.units[u.ID] = u; return nil }
func (r *fakeUnitRepo) GetByID(id string) (*entity.ServedUnit, error) {
	if u, ok := r.units[id]; ok {
		return u, nil
	}
	return nil, nil
}
func (r *fakeUnitRepo) ListByHospital(hospitalID string) ([]*entity.ServedUnit, error) {
	var list []*entity.ServedUnit
	for _, u := range r.units {
		if u.HospitalID == hospitalID {
			list = append(list, u)
		}
	}
	return list, nil
}
