// Command jackpotctl runs one-off operator tasks against a jackpot
// deployment: schema migrations, bootstrap, token issuing and VRF keys.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/osse101/Jackpot_Go/internal/handler"
)

const appName = "jackpotctl"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "operate a jackpot deployment"
	app.Version = handler.CurrentVersion()
	app.Commands = []cli.Command{
		migrateCommand(),
		initCommand(),
		tokenCommand(),
		vrfKeygenCommand(),
	}
	return app
}
