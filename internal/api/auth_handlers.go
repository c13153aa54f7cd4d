package api

import (
	"context"
	"net/http"

	"github.com/limbo/salatchecker/internal/service"
	"github.com/limbo/salatchecker/pkg/entity"
	"github.com/limbo/salatchecker/pkg/httputil"
	"go.uber.org/zap"
)

type SignUpRequest struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type SignInRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
	}
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignUpRequest
	if !decodeBody(w, r, logger, "signup", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.storeTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Username:    req.Username,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "signup", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("signup error: generating token", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
	logger.Info("successful signup", zap.String("uid", user.ID.String()))
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignInRequest
	if !decodeBody(w, r, logger, "signin", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.storeTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.PhoneNumber, req.Password)
	if err != nil {
		writeServiceError(w, logger, "signin", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("signin error: generating token", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
	logger.Info("successful signin", zap.String("uid", user.ID.String()))
}

// Me answers with the user resolved by AuthMiddleware.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, err := GetUserFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("me error: no user in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "user not found", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"user": toUserResponse(user),
	})
}
