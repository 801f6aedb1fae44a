package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffclock/attendance-backend-go/internal/domain/auth"
	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}

func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("User update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := u.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("User update service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("User updated", "user_id", id)
	response.SuccessWithMessage(w, "User updated", updated)
}

// Delete implements UserHandler.
func (u *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := u.userService.Delete(r.Context(), id); err != nil {
		slog.Error("User delete service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("User deleted", "user_id", id)
	response.SuccessWithMessage(w, "User deleted", nil)
}

// ChangePassword implements UserHandler. Admins change their own password
// here; other accounts are edited through Update.
func (u *UserHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var changeReq user.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := changeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := u.userService.ChangePassword(r.Context(), actorID, changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err, "user_id", actorID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Password changed", "user_id", actorID)
	response.SuccessWithMessage(w, "Password changed", nil)
}
