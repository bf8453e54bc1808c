package repository

import "github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"

// UserRepository define o porto de persistência de usuários.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
