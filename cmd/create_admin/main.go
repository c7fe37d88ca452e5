// Command create_admin creates the initial admin user. Run once against a
// fresh database:
//
//	create_admin -username root -password <secret>
package main

import (
	"context"
	"flag"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/config/env"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/internal/repository/user_repo"
	"github.com/techted89/redtedcasino/pkg/pass"
)

var (
	envPath  = flag.String("env", ".env", "path to the env file")
	username = flag.String("username", "", "admin login name")
	password = flag.String("password", "", "admin password")
	wallet   = flag.String("wallet", "", "admin wallet address (optional)")
)

func main() {
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("usage: create_admin -username <name> -password <secret> [-wallet <address>]")
	}

	if err := config.Load(*envPath); err != nil {
		log.WithError(err).Warn("no env file loaded, relying on process environment")
	}

	pgCfg, err := env.NewPGConfig()
	if err != nil {
		log.Fatalf("failed to load pg config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgCfg.DSN())
	if err != nil {
		log.Fatalf("failed to create pg pool: %v", err)
	}
	defer pool.Close()

	hash, err := pass.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	id, err := user_repo.NewUserRepository(pool).CreateUser(ctx, &model.User{
		Username: *username,
		Password: hash,
		IsAdmin:  true,
		Wallet:   *wallet,
	})
	if err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.WithFields(log.Fields{"id": id, "username": *username}).Info("admin user created")
}
