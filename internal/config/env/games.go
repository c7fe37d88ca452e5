package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/model"
)

type gamesFile struct {
	Games []gameYAML `yaml:"games"`
}

type gameYAML struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Symbols []string `yaml:"symbols"`
	Wild    string   `yaml:"wild"`
	Jackpot string   `yaml:"jackpot"`
}

type gameConfig struct {
	id      string
	name    string
	typ     model.GameType
	symbols []string
	wild    string
	jackpot string
}

// NewGamesConfigFromYAML loads the static game definitions.
func NewGamesConfigFromYAML(path string) ([]config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}
	if len(file.Games) == 0 {
		return nil, fmt.Errorf("games config is empty")
	}

	games := make([]config.GameConfig, 0, len(file.Games))
	for _, g := range file.Games {
		if g.ID == "" {
			return nil, fmt.Errorf("game with empty id in games config")
		}
		if len(g.Symbols) == 0 {
			return nil, fmt.Errorf("game %q has no symbols", g.ID)
		}

		var typ model.GameType
		switch model.GameType(g.Type) {
		case model.GameTypeMatrix:
			typ = model.GameTypeMatrix
		case model.GameTypeSingleLine:
			typ = model.GameTypeSingleLine
		default:
			return nil, fmt.Errorf("game %q has unknown type %q", g.ID, g.Type)
		}

		games = append(games, &gameConfig{
			id:      g.ID,
			name:    g.Name,
			typ:     typ,
			symbols: g.Symbols,
			wild:    g.Wild,
			jackpot: g.Jackpot,
		})
	}

	return games, nil
}

func (g *gameConfig) ID() string {
	return g.id
}

func (g *gameConfig) Name() string {
	return g.name
}

func (g *gameConfig) Type() model.GameType {
	return g.typ
}

func (g *gameConfig) Symbols() []string {
	return g.symbols
}

func (g *gameConfig) WildKey() string {
	return g.wild
}

func (g *gameConfig) JackpotKey() string {
	return g.jackpot
}
