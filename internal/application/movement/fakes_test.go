package movement_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência. O txRunner fake tira um
// snapshot do estado antes do callback e restaura em caso de erro,
// reproduzindo o Commit/Rollback do runner real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items     map[string]*entity.Item
	configs   map[string]*entity.StockConfig
	movements []*entity.StockMovement
	hospitals map[string]*entity.Hospital
	units     map[string]*entity.ServedUnit
	patients  map[string]*entity.Patient
	users     map[string]*entity.User
}

func newMemStore() *memStore {
	return &memStore{
		items:     map[string]*entity.Item{},
		configs:   map[string]*entity.StockConfig{},
		hospitals: map[string]*entity.Hospital{},
		units:     map[string]*entity.ServedUnit{},
		patients:  map[string]*entity.Patient{},
		users:     map[string]*entity.User{},
	}
}

func (s *memStore) snapshot() *memStore {
	clone := newMemStore()
	for k, v := range s.items {
		c := *v
		clone.items[k] = &c
	}
	for k, v := range s.configs {
		c := *v
		clone.configs[k] = &c
	}
	clone.movements = append([]*entity.StockMovement(nil), s.movements...)
	clone.hospitals = s.hospitals
	clone.units = s.units
	clone.patients = s.patients
	clone.users = s.users
	return clone
}

func (s *memStore) restore(snap *memStore) {
	s.items = snap.items
	s.configs = snap.configs
	s.movements = snap.movements
}

// totalQuantity soma central + todos os locais de um item (propriedade de
// conservação nas transferências).
func (s *memStore) totalQuantity(itemID string) int64 {
	total := s.items[itemID].CurrentQuantityCentral
	for _, cfg := range s.configs {
		if cfg.ItemID == itemID {
			total += cfg.Quantity
		}
	}
	return total
}

// ── txRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	configRepo repository.StockConfigRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(&fakeItemRepo{r.store}, &fakeConfigRepo{r.store}, &fakeMovementRepo{r.store})
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ── repositórios ──────────────────────────────────────────────────────────────

type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) Create(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}
func (r *fakeItemRepo) Update(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if item, ok := r.s.items[id]; ok {
		c := *item
		return &c, nil
	}
	return nil, nil
}
func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.s.items {
		if item.Code == code {
			c := *item
			return &c, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.s.items {
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}
func (r *fakeItemRepo) UpdateCentralQuantity(id string, quantity int64) error {
	r.s.items[id].CurrentQuantityCentral = quantity
	return nil
}
func (r *fakeItemRepo) ListBelowMinimumCentral() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.s.items {
		if item.CurrentQuantityCentral <= item.MinQuantity {
			list = append(list, item)
		}
	}
	return list, nil
}

type fakeConfigRepo struct{ s *memStore }

func (r *fakeConfigRepo) Get(key string) (*entity.StockConfig, error) {
	if cfg, ok := r.s.configs[key]; ok {
		c := *cfg
		return &c, nil
	}
	return nil, nil
}
func (r *fakeConfigRepo) GetForUpdate(key string) (*entity.StockConfig, error) {
	return r.Get(key)
}
func (r *fakeConfigRepo) Upsert(config *entity.StockConfig) error {
	c := *config
	r.s.configs[config.Key] = &c
	return nil
}
func (r *fakeConfigRepo) ListByHospital(hospitalID string) ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for _, cfg := range r.s.configs {
		if cfg.HospitalID == hospitalID {
			list = append(list, cfg)
		}
	}
	return list, nil
}
func (r *fakeConfigRepo) ListByItem(itemID string) ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for _, cfg := range r.s.configs {
		if cfg.ItemID == itemID {
			list = append(list, cfg)
		}
	}
	return list, nil
}
func (r *fakeConfigRepo) ListBelowMinimum() ([]*entity.StockConfig, error) {
	var list []*entity.StockConfig
	for _, cfg := range r.s.configs {
		if cfg.Quantity <= cfg.MinQuantity {
			list = append(list, cfg)
		}
	}
	return list, nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	c := *movement
	r.s.movements = append(r.s.movements, &c)
	return nil
}
func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		if filter.HospitalID != "" && m.HospitalID != filter.HospitalID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		list = append(list, m)
	}
	return list, nil
}
func (r *fakeMovementRepo) SumConsumption(hospitalID, unitID string, from, to time.Time) ([]repository.ConsumptionTotal, error) {
	totals := map[string]*repository.ConsumptionTotal{}
	for _, m := range r.s.movements {
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
		}
		t.Total += m.Quantity
	}
	var list []repository.ConsumptionTotal
	for _, t := range totals {
		list = append(list, *t)
	}
	sort.Slice(list, func(i, j int) bool { return strings.Compare(list[i].ItemID, list[j].ItemID) < 0 })
	return list, nil
}

type fakeHospitalRepo struct{ s *memStore }

func (r *fakeHospitalRepo) Create(h *entity.Hospital) error {
	r.s.hospitals[h.ID] = h
	return nil
}
func (r *fakeHospitalRepo) Update(h *entity.Hospital) error {
	r.s.hospitals[h.ID] = h
	return nil
}
func (r *fakeHospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	if h, ok := r.s.hospitals[id]; ok {
		return h, nil
	}
	return nil, nil
}
func (r *fakeHospitalRepo) List() ([]*entity.Hospital, error) {
	var list []*entity.Hospital
	for _, h := range r.s.hospitals {
		list = append(list, h)
	}
	return list, nil
}

type fakeUnitRepo struct{ s *memStore }

func (r *fakeUnitRepo) Create(u *entity.ServedUnit) error {
	r.s.units[u.ID] = u
	return nil
}
func (r *fakeUnitRepo) Update(u *entity.ServedUnit) error {
	r.s.units[u.ID] = u
	return nil
}
func (r *fakeUnitRepo) GetByID(id string) (*entity.ServedUnit, error) {
	if u, ok := r.s.units[id]; ok {
		return u, nil
	}
	return nil, nil
}
func (r *fakeUnitRepo) ListByHospital(hospitalID string) ([]*entity.ServedUnit, error) {
	var list []*entity.ServedUnit
	for _, u := range r.s.units {
		if u.HospitalID == hospitalID {
			list = append(list, u)
		}
	}
	return list, nil
}

type fakePatientRepo struct{ s *memStore }

func (r *fakePatientRepo) Create(p *entity.Patient) error {
	r.s.patients[p.ID] = p
	return nil
}
func (r *fakePatientRepo) Update(p *entity.Patient) error {
	r.s.patients[p.ID] = p
	return nil
}
func (r *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	if p, ok := r.s.patients[id]; ok {
		return p, nil
	}
	return nil, nil
}
func (r *fakePatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	var list []*entity.Patient
	for _, p := range r.s.patients {
		list = append(list, p)
	}
	return list, nil
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.s.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
