package converter

import (
	"fmt"
	"strconv"

	dto "github.com/techted89/redtedcasino/internal/api/dto/game"
	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/model"
)

func ToGameInfoFromConfig(game config.GameConfig) dto.GameInfo {
	return dto.GameInfo{
		ID:   game.ID(),
		Name: game.Name(),
		Type: string(game.Type()),
	}
}

func ToGameConfigInfo(game config.GameConfig, cfg *model.GameConfiguration) dto.GameConfigInfo {
	info := dto.GameConfigInfo{
		ID:   game.ID(),
		Name: game.Name(),
		Type: string(game.Type()),
	}
	if cfg != nil {
		info.Paytable = ToDTOFromPaytable(cfg.Paytable)
		info.SymbolWeights = cfg.SymbolWeights
	}
	return info
}

// ToPaytableFromDTO converts JSON string run-length keys to ints. A key
// that is not a positive integer, or a negative multiplier, is a
// validation error.
func ToPaytableFromDTO(raw map[string]map[string]float64) (model.Paytable, error) {
	paytable := make(model.Paytable, len(raw))
	for symbol, runs := range raw {
		entry := make(map[int]float64, len(runs))
		for key, multiplier := range runs {
			length, err := strconv.Atoi(key)
			if err != nil || length <= 0 {
				return nil, fmt.Errorf("%w: paytable run length %q for symbol %q", apperr.ErrValidation, key, symbol)
			}
			if multiplier < 0 {
				return nil, fmt.Errorf("%w: negative multiplier for symbol %q run %d", apperr.ErrValidation, symbol, length)
			}
			entry[length] = multiplier
		}
		paytable[symbol] = entry
	}
	return paytable, nil
}

func ToDTOFromPaytable(paytable model.Paytable) map[string]map[string]float64 {
	raw := make(map[string]map[string]float64, len(paytable))
	for symbol, runs := range paytable {
		entry := make(map[string]float64, len(runs))
		for length, multiplier := range runs {
			entry[strconv.Itoa(length)] = multiplier
		}
		raw[symbol] = entry
	}
	return raw
}
