// seed popula o banco com dados de demonstração: usuário admin, hospitais
// (incluindo uma UBS), unidades atendidas e o catálogo inicial de insumos.
//
// Uso: go run ./cmd/seed
// Idempotente: registros que já existem (mesmo e-mail ou código) são pulados.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/infrastructure/postgres"
	"github.com/rafaelfarias/almoxarifado-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	hospitalRepo := postgres.NewHospitalRepository(pool)
	unitRepo := postgres.NewServedUnitRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)

	// ── Usuário admin ────────────────────────────────────────────────────────
	adminEmail := "admin@almoxarifado.local"
	if existing, err := userRepo.GetByEmail(adminEmail); err != nil {
		fmt.Fprintf(os.Stderr, "Consultar admin: %v\n", err)
		os.Exit(1)
	} else if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Gerar hash: %v\n", err)
			os.Exit(1)
		}
		admin := &entity.User{
			ID:           uuid.NewString(),
			Email:        adminEmail,
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			Status:       "active",
		}
		if err := userRepo.Create(admin); err != nil {
			fmt.Fprintf(os.Stderr, "Criar admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuário admin criado: %s / admin123 (troque a senha)\n", adminEmail)
	} else {
		fmt.Println("Usuário admin já existe, pulando")
	}

	// ── Hospitais e UBS ──────────────────────────────────────────────────────
	hospitals := []*entity.Hospital{
		{ID: uuid.NewString(), Name: "Hospital Municipal São Lucas", Address: "Av. Brasil, 1200 - Centro"},
		{ID: uuid.NewString(), Name: "UBS Vila Esperança", Address: "Rua das Acácias, 45 - Vila Esperança"},
	}
	hospitalIDs := map[string]string{}
	existing, err := hospitalRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar hospitais: %v\n", err)
		os.Exit(1)
	}
	byName := map[string]string{}
	for _, h := range existing {
		byName[h.Name] = h.ID
	}
	for _, h := range hospitals {
		if id, ok := byName[h.Name]; ok {
			hospitalIDs[h.Name] = id
			fmt.Printf("Hospital %q já existe, pulando\n", h.Name)
			continue
		}
		if err := hospitalRepo.Create(h); err != nil {
			fmt.Fprintf(os.Stderr, "Criar hospital %q: %v\n", h.Name, err)
			os.Exit(1)
		}
		hospitalIDs[h.Name] = h.ID
		fmt.Printf("Hospital criado: %s\n", h.Name)
	}

	// ── Unidades atendidas do hospital (a UBS usa estoque geral) ─────────────
	saoLucasID := hospitalIDs["Hospital Municipal São Lucas"]
	units := []*entity.ServedUnit{
		{ID: uuid.NewString(), HospitalID: saoLucasID, Name: "Pronto Atendimento", Location: "Térreo, entrada principal"},
		{ID: uuid.NewString(), HospitalID: saoLucasID, Name: "Clínica Médica", Location: "2º andar, ala leste"},
		{ID: uuid.NewString(), HospitalID: saoLucasID, Name: "Centro Cirúrgico", Location: "3º andar"},
	}
	currentUnits, err := unitRepo.ListByHospital(saoLucasID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar unidades: %v\n", err)
		os.Exit(1)
	}
	unitNames := map[string]bool{}
	for _, u := range currentUnits {
		unitNames[u.Name] = true
	}
	for _, u := range units {
		if unitNames[u.Name] {
			fmt.Printf("Unidade %q já existe, pulando\n", u.Name)
			continue
		}
		if err := unitRepo.Create(u); err != nil {
			fmt.Fprintf(os.Stderr, "Criar unidade %q: %v\n", u.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Unidade criada: %s\n", u.Name)
	}

	// ── Catálogo de insumos ──────────────────────────────────────────────────
	items := []*entity.Item{
		{ID: uuid.NewString(), Name: "Seringa descartável 10ml", Code: "SER-10ML", UnitMeasure: "unidade", MinQuantity: 500},
		{ID: uuid.NewString(), Name: "Luva de procedimento M", Code: "LUV-PROC-M", UnitMeasure: "caixa", MinQuantity: 100},
		{ID: uuid.NewString(), Name: "Soro fisiológico 0,9% 500ml", Code: "SF-09-500", UnitMeasure: "frasco", MinQuantity: 200},
		{ID: uuid.NewString(), Name: "Gaze estéril 7,5x7,5cm", Code: "GAZ-EST-75", UnitMeasure: "pacote", MinQuantity: 300},
		{ID: uuid.NewString(), Name: "Dipirona 500mg", Code: "DIP-500", UnitMeasure: "comprimido", MinQuantity: 1000},
	}
	for _, it := range items {
		found, err := itemRepo.GetByCode(it.Code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar insumo %s: %v\n", it.Code, err)
			os.Exit(1)
		}
		if found != nil {
			fmt.Printf("Insumo %s já existe, pulando\n", it.Code)
			continue
		}
		if err := itemRepo.Create(it); err != nil {
			fmt.Fprintf(os.Stderr, "Criar insumo %s: %v\n", it.Code, err)
			os.Exit(1)
		}
		fmt.Printf("Insumo criado: %s (%s)\n", it.Name, it.Code)
	}

	fmt.Println("Seed concluído")
}
