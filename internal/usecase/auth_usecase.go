package usecase

import (
	"context"
	"errors"

	"liber-server/internal/delivery/dto"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type AuthUsecase interface {
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   domainRepo.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(db *gorm.DB, log *logrus.Logger, userRepo domainRepo.UserRepository, jwtService *jwt.JWTService) AuthUsecase {
	return &authUsecase{db: db, log: log, userRepo: userRepo, jwtService: jwtService}
}

func (u *authUsecase) Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByLogin(u.db.WithContext(ctx), req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activated {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	roles := make([]string, 0, len(user.Authorities))
	for _, a := range user.Authorities {
		roles = append(roles, a.Name)
	}

	token, err := u.jwtService.GenerateToken(user.Login, roles)
	if err != nil {
		return nil, err
	}

	u.log.Infof("user authenticated: %s", user.Login)
	return &dto.TokenResponse{IDToken: token}, nil
}
