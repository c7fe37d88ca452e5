package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"

	adminapi "github.com/techted89/redtedcasino/internal/api/admin"
	authapi "github.com/techted89/redtedcasino/internal/api/auth"
	gameapi "github.com/techted89/redtedcasino/internal/api/game"
	spinapi "github.com/techted89/redtedcasino/internal/api/spin"
	withdrawapi "github.com/techted89/redtedcasino/internal/api/withdraw"
	"github.com/techted89/redtedcasino/internal/client/solana"
	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/config/env"
	"github.com/techted89/redtedcasino/internal/repository"
	"github.com/techted89/redtedcasino/internal/repository/game_config_repo"
	"github.com/techted89/redtedcasino/internal/repository/game_stats_repo"
	"github.com/techted89/redtedcasino/internal/repository/user_repo"
	"github.com/techted89/redtedcasino/internal/repository/withdraw_state_repo"
	"github.com/techted89/redtedcasino/internal/service"
	authserv "github.com/techted89/redtedcasino/internal/service/auth"
	gameserv "github.com/techted89/redtedcasino/internal/service/game"
	spinserv "github.com/techted89/redtedcasino/internal/service/spin"
	withdrawserv "github.com/techted89/redtedcasino/internal/service/withdraw"
)

const gamesConfigPath = "games.yaml"

type serviceProvider struct {
	httpConfig     config.HTTPConfig
	pgConfig       config.PGConfig
	jwtConfig      config.JWTConfig
	solanaConfig   config.SolanaConfig
	withdrawConfig config.WithdrawConfig
	games          []config.GameConfig

	pool      *pgxpool.Pool
	txManager trm.Manager

	userRepo          repository.UserRepository
	gameConfigRepo    repository.GameConfigRepository
	gameStatsRepo     repository.GameStatsRepository
	withdrawStateRepo repository.WithdrawStateRepository

	transferClient solana.TransferClient

	spinService     service.SpinService
	withdrawService service.WithdrawService
	authService     service.AuthService
	gameService     service.GameService

	spinHandler     *spinapi.Handler
	withdrawHandler *withdrawapi.Handler
	authHandler     *authapi.Handler
	gameHandler     *gameapi.Handler
	adminHandler    *adminapi.Handler
}

func newServiceProvider() *serviceProvider {
	return &serviceProvider{}
}

func (sp *serviceProvider) HTTPConfig() config.HTTPConfig {
	if sp.httpConfig == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			log.Fatalf("failed to load http config: %v", err)
		}
		sp.httpConfig = cfg
	}
	return sp.httpConfig
}

func (sp *serviceProvider) PGConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			log.Fatalf("failed to load pg config: %v", err)
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *serviceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			log.Fatalf("failed to load jwt config: %v", err)
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *serviceProvider) SolanaConfig() config.SolanaConfig {
	if sp.solanaConfig == nil {
		cfg, err := env.NewSolanaConfig()
		if err != nil {
			log.Fatalf("failed to load solana config: %v", err)
		}
		sp.solanaConfig = cfg
	}
	return sp.solanaConfig
}

func (sp *serviceProvider) WithdrawConfig() config.WithdrawConfig {
	if sp.withdrawConfig == nil {
		cfg, err := env.NewWithdrawConfig()
		if err != nil {
			log.Fatalf("failed to load withdraw config: %v", err)
		}
		sp.withdrawConfig = cfg
	}
	return sp.withdrawConfig
}

func (sp *serviceProvider) Games() []config.GameConfig {
	if sp.games == nil {
		games, err := env.NewGamesConfigFromYAML(gamesConfigPath)
		if err != nil {
			log.Fatalf("failed to load game definitions: %v", err)
		}
		sp.games = games
	}
	return sp.games
}

func (sp *serviceProvider) Pool(ctx context.Context) *pgxpool.Pool {
	if sp.pool == nil {
		pool, err := pgxpool.New(ctx, sp.PGConfig().DSN())
		if err != nil {
			log.Fatalf("failed to create pg pool: %v", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("failed to ping pg: %v", err)
		}
		sp.pool = pool
	}
	return sp.pool
}

func (sp *serviceProvider) TxManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.Pool(ctx)))
		if err != nil {
			log.Fatalf("failed to create transaction manager: %v", err)
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *serviceProvider) UserRepository(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.Pool(ctx))
	}
	return sp.userRepo
}

func (sp *serviceProvider) GameConfigRepository(ctx context.Context) repository.GameConfigRepository {
	if sp.gameConfigRepo == nil {
		sp.gameConfigRepo = game_config_repo.NewGameConfigRepository(sp.Pool(ctx))
	}
	return sp.gameConfigRepo
}

func (sp *serviceProvider) GameStatsRepository(ctx context.Context) repository.GameStatsRepository {
	if sp.gameStatsRepo == nil {
		sp.gameStatsRepo = game_stats_repo.NewGameStatsRepository(sp.Pool(ctx))
	}
	return sp.gameStatsRepo
}

func (sp *serviceProvider) WithdrawStateRepository() repository.WithdrawStateRepository {
	if sp.withdrawStateRepo == nil {
		sp.withdrawStateRepo = withdraw_state_repo.NewWithdrawStateRepository(sp.WithdrawConfig().Cooldown())
	}
	return sp.withdrawStateRepo
}

func (sp *serviceProvider) TransferClient() solana.TransferClient {
	if sp.transferClient == nil {
		sp.transferClient = solana.NewClient(sp.SolanaConfig().GatewayURL())
	}
	return sp.transferClient
}

func (sp *serviceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinService == nil {
		sp.spinService = spinserv.NewSpinService(
			sp.Games(),
			sp.GameConfigRepository(ctx),
			sp.UserRepository(ctx),
			sp.GameStatsRepository(ctx),
			sp.TxManager(ctx),
		)
	}
	return sp.spinService
}

func (sp *serviceProvider) WithdrawService(ctx context.Context) service.WithdrawService {
	if sp.withdrawService == nil {
		sp.withdrawService = withdrawserv.NewWithdrawService(
			sp.UserRepository(ctx),
			sp.WithdrawStateRepository(),
			sp.TransferClient(),
			sp.SolanaConfig(),
		)
	}
	return sp.withdrawService
}

func (sp *serviceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authService == nil {
		sp.authService = authserv.NewAuthService(sp.UserRepository(ctx), sp.JWTConfig())
	}
	return sp.authService
}

func (sp *serviceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameService == nil {
		sp.gameService = gameserv.NewGameService(sp.Games(), sp.GameConfigRepository(ctx))
	}
	return sp.gameService
}

func (sp *serviceProvider) SpinHandler(ctx context.Context) *spinapi.Handler {
	if sp.spinHandler == nil {
		sp.spinHandler = spinapi.NewHandler(sp.SpinService(ctx))
	}
	return sp.spinHandler
}

func (sp *serviceProvider) WithdrawHandler(ctx context.Context) *withdrawapi.Handler {
	if sp.withdrawHandler == nil {
		sp.withdrawHandler = withdrawapi.NewHandler(sp.WithdrawService(ctx))
	}
	return sp.withdrawHandler
}

func (sp *serviceProvider) AuthHandler(ctx context.Context) *authapi.Handler {
	if sp.authHandler == nil {
		sp.authHandler = authapi.NewHandler(sp.AuthService(ctx))
	}
	return sp.authHandler
}

func (sp *serviceProvider) GameHandler(ctx context.Context) *gameapi.Handler {
	if sp.gameHandler == nil {
		sp.gameHandler = gameapi.NewHandler(sp.GameService(ctx))
	}
	return sp.gameHandler
}

func (sp *serviceProvider) AdminHandler(ctx context.Context) *adminapi.Handler {
	if sp.adminHandler == nil {
		sp.adminHandler = adminapi.NewHandler(sp.GameService(ctx))
	}
	return sp.adminHandler
}
