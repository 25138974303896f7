package authService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/auth"
	authRepository "github.com/ranjini26/lifeos/internal/api/auth/repository"
	"github.com/ranjini26/lifeos/pkg/bcrypt"
	"github.com/ranjini26/lifeos/pkg/utils"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Profile(ctx context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcrypt         bcrypt.IBcrypt
	utils          utils.IUtils
}

func NewAuthService(
	log *logrus.Logger,
	ar authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		bcrypt:         bcryptUtils,
		utils:          utils,
	}
}
