package main

import (
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/osse101/Jackpot_Go/internal/randomness"
)

func vrfKeygenCommand() cli.Command {
	return cli.Command{
		Name:   "vrf-keygen",
		Usage:  "generate a BLS key pair for RANDOMNESS_SOURCE=vrf",
		Action: runVRFKeygen,
	}
}

func runVRFKeygen(c *cli.Context) error {
	private, public, err := randomness.GenerateKeyPair()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "VRF_PRIVATE_KEY=%s\n", private)
	fmt.Fprintf(c.App.Writer, "# public key: %s\n", public)
	return nil
}
