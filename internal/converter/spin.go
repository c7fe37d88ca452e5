package converter

import (
	dto "github.com/techted89/redtedcasino/internal/api/dto/spin"
	"github.com/techted89/redtedcasino/internal/model"
)

func ToSpinRequestFromDTO(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		UserID:    req.UserID,
		BetAmount: req.BetAmount,
		GameID:    req.GameID,
	}
}

func ToSpinResponseFromOutcome(outcome *model.SpinOutcome) dto.SpinResponse {
	return dto.SpinResponse{
		Reels:      outcome.Reels,
		Winnings:   outcome.Winnings,
		NewBalance: outcome.NewBalance,
	}
}
