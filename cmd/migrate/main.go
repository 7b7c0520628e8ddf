package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/arteideas/backend/internal/migrate"
	"github.com/arteideas/backend/pkg/config"
	"github.com/arteideas/backend/pkg/logger"
)

// Aplica el registro de migraciones declarativas contra PostgreSQL.
//
//	migrate up      aplica las pendientes en orden topológico
//	migrate status  lista cada migración con su estado
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping a PostgreSQL")
	}

	mgr := migrate.NewManager(db, migrate.Registry())

	switch cmd {
	case "up":
		if err := mgr.Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones al día")
	case "status":
		statuses, err := mgr.Status(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("estado de migraciones")
		}
		for _, s := range statuses {
			log.Info().Str("id", s.ID).Bool("applied", s.Applied).Msg("migración")
		}
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido (use: up | status)")
	}
}
