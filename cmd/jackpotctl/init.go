package main

import (
	"context"
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/osse101/Jackpot_Go/internal/bootstrap"
	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/event"
)

func initCommand() cli.Command {
	return cli.Command{
		Name:  "init",
		Usage: "create the jackpot config record from a bootstrap file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Value: config.DefaultBootstrapPath,
				Usage: "bootstrap TOML file",
			},
		},
		Action: runInit,
	}
}

func runInit(c *cli.Context) error {
	b, err := config.LoadBootstrap(c.String("config"))
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	// No subscribers run here; the server replays nothing from init
	svc, err := bootstrap.NewJackpotService(cfg, storage.Repo, event.NewMemoryBus())
	if err != nil {
		return err
	}

	jc, err := bootstrap.ApplyBootstrap(ctx, svc, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "initialized: admin=%s fee=%dbp treasury=%s vault=%s\n",
		jc.Admin, jc.PlatformFee, jc.TeamWallet, svc.VaultAddress())
	return nil
}
