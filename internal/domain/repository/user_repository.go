package repository

import (
	"liber-server/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByLogin(db *gorm.DB, login string) (*entity.User, error)
}
