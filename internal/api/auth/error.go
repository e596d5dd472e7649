package auth

import (
	"EportsTech/pkg/response"
	"net/http"
)

var (
	ErrInvalidEmailOrPassword = response.NewError(http.StatusUnauthorized, "email or password is wrong")
	ErrAdminNotFound          = response.NewError(http.StatusNotFound, "admin not found")
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrIssueToken             = response.NewError(http.StatusInternalServerError, "failed to issue access token")
	ErrCreateAdmin            = response.NewError(http.StatusInternalServerError, "failed to create admin")
)
