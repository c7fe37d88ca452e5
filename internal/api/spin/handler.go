package spin

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/apperr"
	dto "github.com/techted89/redtedcasino/internal/api/dto/spin"
	"github.com/techted89/redtedcasino/internal/converter"
	"github.com/techted89/redtedcasino/internal/service"
	"github.com/techted89/redtedcasino/pkg/req"
	"github.com/techted89/redtedcasino/pkg/resp"
)

type Handler struct {
	spinService service.SpinService
}

func NewHandler(spinService service.SpinService) *Handler {
	return &Handler{spinService: spinService}
}

// Spin - POST /api/spin.
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	outcome, err := h.spinService.Spin(r.Context(), converter.ToSpinRequestFromDTO(body))
	if err != nil {
		h.writeError(w, body, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponseFromOutcome(outcome))
}

func (h *Handler) writeError(w http.ResponseWriter, body dto.SpinRequest, err error) {
	status := apperr.HTTPStatus(err)

	var message string
	switch {
	case errors.Is(err, apperr.ErrValidation):
		message = "userId, betAmount, and gameId are required"
	case errors.Is(err, apperr.ErrNotFound):
		message = "User or game not found"
	case errors.Is(err, apperr.ErrInsufficientFunds):
		message = "Insufficient balance"
	case errors.Is(err, apperr.ErrConfiguration):
		message = "Configuration error for this game. Please contact an admin."
		log.WithError(err).WithField("game_id", body.GameID).Error("spin aborted on configuration error")
	default:
		message = "Internal server error"
		log.WithError(err).WithFields(log.Fields{
			"user_id": body.UserID,
			"game_id": body.GameID,
		}).Error("spin failed")
	}

	resp.WriteJSONResponse(w, status, dto.ErrorResponse{Message: message})
}
