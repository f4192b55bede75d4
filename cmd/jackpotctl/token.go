package main

import (
	"errors"
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/osse101/Jackpot_Go/internal/bootstrap"
	"github.com/osse101/Jackpot_Go/internal/config"
	"github.com/osse101/Jackpot_Go/internal/domain"
)

var errSubjectRequired = errors.New("--subject is required")

func tokenCommand() cli.Command {
	return cli.Command{
		Name:  "token",
		Usage: "issue a bearer token for an identity",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "subject, s", Usage: "ledger identity the token authenticates"},
		},
		Action: runToken,
	}
}

func runToken(c *cli.Context) error {
	subject := domain.Identity(c.String("subject"))
	if subject.IsZero() {
		return errSubjectRequired
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tokens, err := bootstrap.NewTokens(cfg)
	if err != nil {
		return err
	}

	tok, err := tokens.Issue(subject)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, tok)
	return nil
}
