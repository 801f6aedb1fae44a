package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/domain/auth"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered", "user_id", created.ID, "username", created.Username)
	response.Created(w, "Account created", created)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in", "user_id", loginResp.User.ID)
	response.Success(w, loginResp)
}
