package repository

import (
	"errors"

	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByLogin(db *gorm.DB, login string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Authorities").Where("login = ?", login).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
