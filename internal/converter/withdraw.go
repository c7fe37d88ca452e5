package converter

import (
	dto "github.com/techted89/redtedcasino/internal/api/dto/withdraw"
	"github.com/techted89/redtedcasino/internal/model"
)

func ToWithdrawalRequestFromDTO(req dto.WithdrawRequest) model.WithdrawalRequest {
	return model.WithdrawalRequest{
		Wallet:    req.Wallet,
		RequestID: req.RequestID,
	}
}

func ToWithdrawResponseFromResult(res *model.WithdrawalResult) dto.WithdrawResponse {
	return dto.WithdrawResponse{
		Success:   true,
		Amount:    res.Amount,
		Signature: res.Signature,
	}
}
