package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
	"github.com/rafaelfarias/almoxarifado-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hospitalRepo repository.HospitalRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hospitalRepo: hospitalRepo, jwtCfg: jwtCfg}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleCentralOperator, entity.RoleHospitalOperator, entity.RoleUBSOperator, entity.RoleUser:
		return true
	}
	return false
}

// RegisterUser cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o email já estiver cadastrado.
// Operadores com escopo de hospital exigem um hospital existente.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleHospitalOperator || role == entity.RoleUBSOperator {
		if in.AssociatedHospitalID == "" {
			return nil, domain.ErrInvalidInput
		}
		hospital, err := uc.hospitalRepo.GetByID(in.AssociatedHospitalID)
		if err != nil {
			return nil, err
		}
		if hospital == nil {
			return nil, domain.ErrNotFound
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:                   uuid.New().String(),
		Email:                in.Email,
		PasswordHash:         string(hash),
		Name:                 name,
		Role:                 role,
		AssociatedHospitalID: in.AssociatedHospitalID,
		AssociatedUnitID:     in.AssociatedUnitID,
		Status:               "active",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/senha, gera JWT com o escopo do operador e retorna
// token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	claims := jwt.UserClaims{
		UserID:               user.ID,
		Role:                 user.Role,
		AssociatedHospitalID: user.AssociatedHospitalID,
		AssociatedUnitID:     user.AssociatedUnitID,
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, claims, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Name:                 u.Name,
		Role:                 u.Role,
		AssociatedHospitalID: u.AssociatedHospitalID,
		AssociatedUnitID:     u.AssociatedUnitID,
		Status:               u.Status,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}
