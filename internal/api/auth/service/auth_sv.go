package authService

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/auth"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
	jwtPkg "github.com/ranjini26/lifeos/pkg/jwt"
)

const accessTokenTTL = 24 * time.Hour

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Timezone: user.Timezone,
	}
}

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.UserResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err = repo.Users.GetUserByEmail(ctx, email)
	if err == nil {
		return auth.UserResponse{}, auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.UserResponse{}, err
	}

	hashedPassword, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.UserResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserResponse{}, err
	}

	user := entity.User{
		ID:        ULID,
		Email:     email,
		Name:      req.Name,
		Password:  hashedPassword,
		Timezone:  req.Timezone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.UserResponse{}, auth.ErrCreateUser
	}

	return makeUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := repo.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Password mismatch on login")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	claims := map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}

	accessToken, expiredAt, err := jwtPkg.Sign(claims, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiredAt:   expiredAt,
		User:        makeUserResponse(user),
	}, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetUserByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}
