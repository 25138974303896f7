package auth

import (
	"net/http"

	"github.com/ranjini26/lifeos/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
)
