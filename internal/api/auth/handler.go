package auth

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/apperr"
	dto "github.com/techted89/redtedcasino/internal/api/dto/auth"
	"github.com/techted89/redtedcasino/internal/service"
	"github.com/techted89/redtedcasino/pkg/req"
	"github.com/techted89/redtedcasino/pkg/resp"
)

type Handler struct {
	authService service.AuthService
}

func NewHandler(authService service.AuthService) *Handler {
	return &Handler{authService: authService}
}

// Login - POST /api/users/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	if body.Username == "" || body.Password == "" {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Username and password are required"})
		return
	}

	accessToken, user, err := h.authService.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			resp.WriteJSONResponse(w, http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
			return
		}
		log.WithError(err).WithField("username", body.Username).Error("login failed")
		resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   accessToken,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
			Wallet:   user.Wallet,
			Balance:  user.Balance,
		},
	})
}
