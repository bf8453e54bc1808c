package movement

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// ImportRow é uma linha tabular já extraída do arquivo de importação.
// Nomes de hospital/unidade são resolvidos por nome (sem acentos, sem
// caixa); o item é resolvido pelo código de catálogo.
type ImportRow struct {
	Line         int    // número da linha no arquivo, para o relatório
	ItemCode     string
	Type         string // aceita o enum ou os rótulos entrada/saida/consumo
	Quantity     int64
	Date         string // 2006-01-02 ou 02/01/2006; vazio = hoje
	HospitalName string
	UnitName     string
	GeneralStock bool
	Notes        string
}

// ImportRowResult resultado de uma linha do relatório de importação.
type ImportRowResult struct {
	Line    int    `json:"line"`
	Status  string `json:"status"` // ok | error
	Message string `json:"message,omitempty"`
}

// ImportReport relatório acumulado da importação.
type ImportReport struct {
	Processed int               `json:"processed"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Rows      []ImportRowResult `json:"rows"`
}

// ImportUseCase processa importação em lote: cada linha vira um lote de
// movimentação próprio, validado e confirmado na sua própria transação.
// Falha em uma linha não aborta as demais; o relatório acumula o resultado
// linha a linha.
type ImportUseCase struct {
	engine       *ProcessMovementUseCase
	itemRepo     repository.ItemRepository
	hospitalRepo repository.HospitalRepository
	unitRepo     repository.ServedUnitRepository
}

// NewImportUseCase constrói o caso de uso de importação.
func NewImportUseCase(
	engine *ProcessMovementUseCase,
	itemRepo repository.ItemRepository,
	hospitalRepo repository.HospitalRepository,
	unitRepo repository.ServedUnitRepository,
) *ImportUseCase {
	return &ImportUseCase{
		engine:       engine,
		itemRepo:     itemRepo,
		hospitalRepo: hospitalRepo,
		unitRepo:     unitRepo,
	}
}

// Import processa as linhas uma a uma em nome do usuário informado.
func (uc *ImportUseCase) Import(ctx context.Context, userID string, rows []ImportRow) ImportReport {
	report := ImportReport{Rows: make([]ImportRowResult, 0, len(rows))}
	for _, row := range rows {
		report.Processed++
		if err := uc.importRow(ctx, userID, row); err != nil {
			report.Failed++
			report.Rows = append(report.Rows, ImportRowResult{
				Line: row.Line, Status: "error", Message: err.Error(),
			})
			continue
		}
		report.Succeeded++
		report.Rows = append(report.Rows, ImportRowResult{Line: row.Line, Status: "ok"})
	}
	return report
}

func (uc *ImportUseCase) importRow(ctx context.Context, userID string, row ImportRow) error {
	movType, err := parseMovementType(row.Type)
	if err != nil {
		return err
	}
	if row.Quantity <= 0 {
		return fmt.Errorf("quantidade deve ser positiva: %w", domain.ErrInvalidInput)
	}
	date, err := parseDate(row.Date)
	if err != nil {
		return err
	}

	item, err := uc.itemRepo.GetByCode(strings.TrimSpace(row.ItemCode))
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("código de item %q: %w", row.ItemCode, domain.ErrNotFound)
	}

	in := Input{
		Type:         movType,
		Date:         date,
		GeneralStock: row.GeneralStock,
		Notes:        row.Notes,
		Lines:        []Line{{ItemID: item.ID, Quantity: row.Quantity}},
	}

	if row.HospitalName != "" {
		hospital, err := uc.findHospitalByName(row.HospitalName)
		if err != nil {
			return err
		}
		in.HospitalID = hospital.ID
		if row.UnitName != "" {
			unit, err := uc.findUnitByName(hospital.ID, row.UnitName)
			if err != nil {
				return err
			}
			in.UnitID = unit.ID
		}
	} else if row.UnitName != "" {
		return fmt.Errorf("unidade %q sem hospital: %w", row.UnitName, domain.ErrInvalidDestination)
	}

	return uc.engine.Process(ctx, userID, in)
}

// findHospitalByName resolve o hospital por nome normalizado.
func (uc *ImportUseCase) findHospitalByName(name string) (*entity.Hospital, error) {
	hospitals, err := uc.hospitalRepo.List()
	if err != nil {
		return nil, err
	}
	want := normalizeName(name)
	for _, h := range hospitals {
		if normalizeName(h.Name) == want {
			return h, nil
		}
	}
	return nil, fmt.Errorf("hospital %q: %w", name, domain.ErrNotFound)
}

// findUnitByName resolve a unidade por nome normalizado dentro do hospital.
func (uc *ImportUseCase) findUnitByName(hospitalID, name string) (*entity.ServedUnit, error) {
	units, err := uc.unitRepo.ListByHospital(hospitalID)
	if err != nil {
		return nil, err
	}
	want := normalizeName(name)
	for _, u := range units {
		if normalizeName(u.Name) == want {
			return u, nil
		}
	}
	return nil, fmt.Errorf("unidade %q: %w", name, domain.ErrNotFound)
}

// parseMovementType aceita o enum interno e os rótulos em português das
// planilhas exportadas pelo sistema anterior.
func parseMovementType(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.MovementTypeEntry, "entrada":
		return entity.MovementTypeEntry, nil
	case entity.MovementTypeExit, "saida", "saída":
		return entity.MovementTypeExit, nil
	case entity.MovementTypeConsumption, "consumo":
		return entity.MovementTypeConsumption, nil
	}
	return "", fmt.Errorf("tipo de movimento %q: %w", s, domain.ErrInvalidInput)
}

// parseDate aceita ISO (2006-01-02) e o formato brasileiro (02/01/2006).
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data %q: %w", s, domain.ErrInvalidInput)
}

// stripAccents decompõe (NFD), remove marcas combinantes e recompõe.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName normaliza um nome para comparação: sem acentos, sem caixa,
// espaços colapsados.
func normalizeName(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
