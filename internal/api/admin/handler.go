package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/apperr"
	dto "github.com/techted89/redtedcasino/internal/api/dto/game"
	"github.com/techted89/redtedcasino/internal/converter"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/internal/service"
	"github.com/techted89/redtedcasino/pkg/req"
	"github.com/techted89/redtedcasino/pkg/resp"
)

type Handler struct {
	gameService service.GameService
}

func NewHandler(gameService service.GameService) *Handler {
	return &Handler{gameService: gameService}
}

// ListGames - GET /api/admin/games. The catalog with each game's stored
// paytable and weights.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := h.gameService.ListGames()

	infos := make([]dto.GameConfigInfo, 0, len(games))
	for _, game := range games {
		_, cfg, err := h.gameService.GetConfiguration(r.Context(), game.ID())
		if err != nil {
			log.WithError(err).WithField("game_id", game.ID()).Error("failed to load game configuration")
			resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
			return
		}
		infos = append(infos, converter.ToGameConfigInfo(game, cfg))
	}

	resp.WriteJSONResponse(w, http.StatusOK, infos)
}

// UpdateGame - PUT /api/admin/games/{gameID}.
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	body, err := req.Decode[dto.UpdateGameRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	var paytable model.Paytable
	if body.Paytable != nil {
		paytable, err = converter.ToPaytableFromDTO(body.Paytable)
		if err != nil {
			resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	var weights model.SymbolWeights
	if body.SymbolWeights != nil {
		weights = body.SymbolWeights
	}

	if err := h.gameService.UpdateConfiguration(r.Context(), gameID, paytable, weights); err != nil {
		switch {
		case errors.Is(err, apperr.ErrValidation):
			resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperr.ErrNotFound):
			resp.WriteJSONResponse(w, http.StatusNotFound, dto.ErrorResponse{Error: "Game not found"})
		default:
			log.WithError(err).WithField("game_id", gameID).Error("failed to update game configuration")
			resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	game, cfg, err := h.gameService.GetConfiguration(r.Context(), gameID)
	if err != nil {
		log.WithError(err).WithField("game_id", gameID).Error("failed to reload game configuration")
		resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameConfigInfo(game, cfg))
}
