package withdraw

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/apperr"
	dto "github.com/techted89/redtedcasino/internal/api/dto/withdraw"
	"github.com/techted89/redtedcasino/internal/converter"
	"github.com/techted89/redtedcasino/internal/service"
	"github.com/techted89/redtedcasino/pkg/req"
	"github.com/techted89/redtedcasino/pkg/resp"
)

type Handler struct {
	withdrawService service.WithdrawService
}

func NewHandler(withdrawService service.WithdrawService) *Handler {
	return &Handler{withdrawService: withdrawService}
}

// Withdraw - POST /api/withdraw.
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.withdrawService.Withdraw(r.Context(), converter.ToWithdrawalRequestFromDTO(body))
	if err != nil {
		h.writeError(w, body.Wallet, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawResponseFromResult(result))
}

func (h *Handler) writeError(w http.ResponseWriter, wallet string, err error) {
	status := apperr.HTTPStatus(err)

	var message string
	switch {
	case errors.Is(err, apperr.ErrValidation):
		message = "Wallet address is required"
	case errors.Is(err, apperr.ErrNotFound):
		message = "Player not found"
	case errors.Is(err, apperr.ErrInsufficientFunds):
		message = "No coins to withdraw"
	case errors.Is(err, apperr.ErrDuplicateWithdrawal):
		message = "This withdrawal has already been processed"
	case errors.Is(err, apperr.ErrCooldownActive):
		message = "Please wait 1 minute before making another withdrawal"
	case errors.Is(err, apperr.ErrWithdrawalInFlight):
		message = "A withdrawal is already in progress"
	case errors.Is(err, apperr.ErrTransferUnconfirmed):
		message = "Transfer not yet confirmed; status unknown. Do not resubmit this request blindly."
		log.WithError(err).WithField("wallet", wallet).Error("withdrawal outcome unknown")
	case errors.Is(err, apperr.ErrTransferFailed):
		message = "Transfer failed. It is safe to retry."
		log.WithError(err).WithField("wallet", wallet).Error("withdrawal transfer failed")
	default:
		message = "Internal server error during withdrawal"
		log.WithError(err).WithField("wallet", wallet).Error("withdrawal failed")
	}

	resp.WriteJSONResponse(w, status, dto.ErrorResponse{Error: message})
}
