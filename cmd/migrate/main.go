// Command migrate aplica o revierte las migraciones embebidas de PostgreSQL.
//
//	go run ./cmd/migrate up|down|version
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "uso: migrate [up|down|version]")
	}
	flag.Parse()
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión del esquema")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migración fallida")
		os.Exit(1)
	}
}
