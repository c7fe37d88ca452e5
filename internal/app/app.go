package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/middleware"
)

type App struct {
	serviceProvider *serviceProvider
	router          *chi.Mux
}

func NewApp(ctx context.Context, envPath string) (*App, error) {
	if err := config.Load(envPath); err != nil {
		log.WithError(err).Warn("no env file loaded, relying on process environment")
	}

	a := &App{
		serviceProvider: newServiceProvider(),
	}
	a.initRouter(ctx)

	return a, nil
}

func (a *App) initRouter(ctx context.Context) {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/users/login", a.serviceProvider.AuthHandler(ctx).Login)
		r.Get("/games", a.serviceProvider.GameHandler(ctx).ListGames)
		r.Post("/spin", a.serviceProvider.SpinHandler(ctx).Spin)
		r.Post("/withdraw", a.serviceProvider.WithdrawHandler(ctx).Withdraw)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(a.serviceProvider.JWTConfig().AccessTokenSecretKey()))
			r.Use(middleware.AdminOnly)

			r.Get("/games", a.serviceProvider.AdminHandler(ctx).ListGames)
			r.Put("/games/{gameID}", a.serviceProvider.AdminHandler(ctx).UpdateGame)
		})
	})

	a.router = router
}

func (a *App) Run() error {
	address := a.serviceProvider.HTTPConfig().Address()
	log.WithField("address", address).Info("starting http server")

	return http.ListenAndServe(address, a.router)
}
