package main

import (
	"context"
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/database"
)

func migrateCommand() cli.Command {
	return cli.Command{
		Name:   "migrate",
		Usage:  "apply pending PostgreSQL migrations",
		Action: runMigrate,
	}
}

func runMigrate(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return fmt.Errorf("migrate needs STORAGE_DRIVER=%s, got %q", config.StorageDriverPostgres, cfg.StorageDriver)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: 1})
	if err != nil {
		return err
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "schema at version %d\n", version)
	return nil
}
