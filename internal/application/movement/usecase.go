package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/location"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// Rótulos sintetizados gravados no registro de auditoria.
const (
	labelCentral = "Almoxarifado Central"
)

// Line é uma linha de item de um lote de movimentação.
type Line struct {
	ItemID   string
	Quantity int64
}

// Input é um lote de movimentação: uma ou mais linhas de item
// compartilhando um local e uma data.
type Input struct {
	Type         string // entry | exit | consumption
	Date         time.Time
	HospitalID   string // vazio = almoxarifado central
	UnitID       string
	GeneralStock bool // estoque geral de UBS (sem unidade específica)
	PatientID    string
	Notes        string
	Lines        []Line
}

// ProcessMovementUseCase é o motor de movimentação: executa
// leitura → validação → escrita como uma unidade atômica contra o razão
// de quantidades, com trilha de auditoria na mesma transação.
//
// Protocolo em três fases dentro de TxRunner.Run:
//
//	fase 1: SELECT FOR UPDATE de cada Item e StockConfig tocado; o
//	        bloqueio de linha serializa submissões concorrentes sobre os
//	        mesmos registros e mantém o snapshot válido até a escrita;
//	fase 2: validação pura sobre a projeção em memória (papel, destino,
//	        suficiência); qualquer linha inválida aborta o lote inteiro;
//	fase 3: persiste as projeções e anexa um StockMovement por linha.
type ProcessMovementUseCase struct {
	txRunner     TxRunner
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	unitRepo     repository.ServedUnitRepository
	patientRepo  repository.PatientRepository
}

// NewProcessMovementUseCase constrói o motor.
func NewProcessMovementUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	unitRepo repository.ServedUnitRepository,
	patientRepo repository.PatientRepository,
) *ProcessMovementUseCase {
	return &ProcessMovementUseCase{
		txRunner:     txRunner,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		unitRepo:     unitRepo,
		patientRepo:  patientRepo,
	}
}

// destination é a seleção de local resolvida com os nomes de exibição
// que o registro de auditoria grava.
type destination struct {
	loc          location.Location
	hospitalName string
	unitName     string
}

// Process valida e confirma um lote de movimentação. Em qualquer falha o
// lote inteiro é desfeito sem efeito observável.
func (uc *ProcessMovementUseCase) Process(ctx context.Context, userID string, in Input) error {
	if !entity.ValidMovementType(in.Type) {
		return fmt.Errorf("tipo de movimento %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if len(in.Lines) == 0 {
		return fmt.Errorf("lote sem linhas de item: %w", domain.ErrInvalidInput)
	}
	for _, line := range in.Lines {
		if line.ItemID == "" || line.Quantity <= 0 {
			return fmt.Errorf("linha exige item e quantidade positiva: %w", domain.ErrInvalidInput)
		}
	}
	if in.PatientID != "" && in.Type != entity.MovementTypeConsumption {
		return fmt.Errorf("paciente só se vincula a consumo: %w", domain.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	dest, err := uc.resolveDestination(in)
	if err != nil {
		return err
	}
	if err := authorize(user, in.Type, dest.loc); err != nil {
		return err
	}

	var patientName string
	if in.PatientID != "" {
		patient, err := uc.patientRepo.GetByID(in.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return fmt.Errorf("paciente %s: %w", in.PatientID, domain.ErrNotFound)
		}
		patientName = patient.Name
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()

	// Transação: Commit se tudo ok, Rollback se algo falhar (TxRunner.Run)
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		configRepo repository.StockConfigRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		records := make(map[string]*ledgerRecord)
		items := make(map[string]*entity.Item)

		loadItem := func(itemID string) (*entity.Item, error) {
			if item, ok := items[itemID]; ok {
				return item, nil
			}
			item, err := itemRepo.GetForUpdate(itemID)
			if err != nil {
				return nil, err
			}
			if item == nil {
				return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
			}
			items[itemID] = item
			return item, nil
		}
		loadRecord := func(loc location.Location, item *entity.Item) (*ledgerRecord, error) {
			key := loc.ConfigKey(item.ID)
			if rec, ok := records[key]; ok {
				return rec, nil
			}
			var rec *ledgerRecord
			if loc.IsCentral() {
				rec = newCentralRecord(item)
			} else {
				cfg, err := configRepo.GetForUpdate(key)
				if err != nil {
					return nil, err
				}
				rec = newLocationRecord(loc, item, cfg)
			}
			records[key] = rec
			return rec, nil
		}

		// Fases 1 e 2: leitura com bloqueio de linha e validação sobre a
		// projeção. Nenhuma escrita acontece antes de todas as linhas
		// passarem.
		for _, line := range in.Lines {
			item, err := loadItem(line.ItemID)
			if err != nil {
				return err
			}
			central, err := loadRecord(location.Central(), item)
			if err != nil {
				return err
			}

			switch in.Type {
			case entity.MovementTypeEntry:
				// entrada não tem checagem de suficiência
				central.credit(line.Quantity)

			case entity.MovementTypeExit:
				// a origem de saída/transferência é sempre o central
				if err := central.debit(line.Quantity); err != nil {
					return err
				}
				if !dest.loc.IsCentral() {
					rec, err := loadRecord(dest.loc, item)
					if err != nil {
						return err
					}
					rec.credit(line.Quantity)
				}

			case entity.MovementTypeConsumption:
				rec := central
				if !dest.loc.IsCentral() {
					rec, err = loadRecord(dest.loc, item)
					if err != nil {
						return err
					}
				}
				if err := rec.debit(line.Quantity); err != nil {
					return err
				}
			}
		}

		// Fase 3: persistir projeções e anexar a trilha de auditoria.
		for _, rec := range records {
			if err := rec.flush(itemRepo, configRepo, now); err != nil {
				return err
			}
		}
		for _, line := range in.Lines {
			mov := &entity.StockMovement{
				ID:           uuid.New().String(),
				ItemID:       line.ItemID,
				ItemName:     items[line.ItemID].Name,
				Type:         in.Type,
				Quantity:     line.Quantity,
				Date:         date,
				HospitalID:   dest.loc.HospitalID(),
				HospitalName: dest.hospitalName,
				UnitID:       dest.loc.UnitID(),
				UnitName:     dest.unitName,
				PatientID:    in.PatientID,
				PatientName:  patientName,
				Notes:        in.Notes,
				UserID:       user.ID,
				UserName:     user.Name,
				CreatedAt:    now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
}

// resolveDestination aplica as regras de boa formação do local:
//
//   - entrada é sempre no almoxarifado central;
//   - saída sem hospital é baixa direta no central;
//   - estoque geral só é seleção legal em UBS;
//   - hospital que não é UBS exige unidade explícita em saída/consumo;
//   - a unidade precisa pertencer ao hospital informado.
func (uc *ProcessMovementUseCase) resolveDestination(in Input) (destination, error) {
	if in.Type == entity.MovementTypeEntry {
		if in.HospitalID != "" || in.UnitID != "" || in.GeneralStock {
			return destination{}, fmt.Errorf("entrada é sempre no almoxarifado central: %w", domain.ErrInvalidDestination)
		}
		return destination{loc: location.Central(), unitName: labelCentral}, nil
	}

	if in.HospitalID == "" {
		if in.UnitID != "" || in.GeneralStock {
			return destination{}, fmt.Errorf("unidade ou estoque geral exigem hospital: %w", domain.ErrInvalidDestination)
		}
		return destination{loc: location.Central(), unitName: labelCentral}, nil
	}

	hospital, err := uc.hospitalRepo.GetByID(in.HospitalID)
	if err != nil {
		return destination{}, err
	}
	if hospital == nil {
		return destination{}, fmt.Errorf("hospital %s: %w", in.HospitalID, domain.ErrNotFound)
	}

	if in.UnitID != "" {
		if in.GeneralStock {
			return destination{}, fmt.Errorf("estoque geral não aceita unidade: %w", domain.ErrInvalidDestination)
		}
		unit, err := uc.unitRepo.GetByID(in.UnitID)
		if err != nil {
			return destination{}, err
		}
		if unit == nil {
			return destination{}, fmt.Errorf("unidade %s: %w", in.UnitID, domain.ErrNotFound)
		}
		if unit.HospitalID != hospital.ID {
			return destination{}, fmt.Errorf("unidade %s não pertence ao hospital %s: %w",
				unit.Name, hospital.Name, domain.ErrInvalidDestination)
		}
		return destination{
			loc:          location.AtUnit(hospital.ID, unit.ID),
			hospitalName: hospital.Name,
			unitName:     unit.Name,
		}, nil
	}

	// Sem unidade: só resta o estoque geral, exclusivo de UBS.
	if !hospital.IsUBS() {
		return destination{}, fmt.Errorf("hospital %s não é UBS e exige unidade em saída/consumo: %w",
			hospital.Name, domain.ErrInvalidDestination)
	}
	return destination{
		loc:          location.UBSGeneral(hospital.ID),
		hospitalName: hospital.Name,
		unitName:     fmt.Sprintf("Estoque Geral (%s)", hospital.Name),
	}, nil
}
