package authService

import (
	"FinanceGolang/internal/api/auth"
	authRepository "FinanceGolang/internal/api/auth/repository"
	"FinanceGolang/pkg/bcrypt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterUserRequest) (auth.UserResponse, error)
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	GetMe(ctx context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
}

func NewAuthService(log *logrus.Logger, ar authRepository.Repository, bcryptUtils bcrypt.IBcrypt) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		bcryptUtils:    bcryptUtils,
	}
}
