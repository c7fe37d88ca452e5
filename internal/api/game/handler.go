package game

import (
	"net/http"

	dto "github.com/techted89/redtedcasino/internal/api/dto/game"
	"github.com/techted89/redtedcasino/internal/converter"
	"github.com/techted89/redtedcasino/internal/service"
	"github.com/techted89/redtedcasino/pkg/resp"
)

type Handler struct {
	gameService service.GameService
}

func NewHandler(gameService service.GameService) *Handler {
	return &Handler{gameService: gameService}
}

// ListGames - GET /api/games.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := h.gameService.ListGames()

	infos := make([]dto.GameInfo, 0, len(games))
	for _, game := range games {
		infos = append(infos, converter.ToGameInfoFromConfig(game))
	}

	resp.WriteJSONResponse(w, http.StatusOK, infos)
}
