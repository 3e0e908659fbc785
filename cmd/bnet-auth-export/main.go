package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bnet-tools/bnet-auth-export/command"
	"github.com/bnet-tools/bnet-auth-export/command/version"
	"github.com/bnet-tools/bnet-auth-export/config"

	// Enabled commands
	_ "github.com/bnet-tools/bnet-auth-export/command/export"
)

// Version is set by an LDFLAG at build time representing the git tag or commit
// for the current release
var Version = "N/A"

// BuildTime is set by an LDFLAG at build time representing the timestamp at
// the time of build
var BuildTime = "N/A"

func init() {
	config.Set("bnet-auth-export", Version, BuildTime)
}

func main() {
	defer panicHandler()
	// Override global framework components
	cli.VersionPrinter = func(c *cli.Context) {
		version.Command(c)
	}

	// Configure cli app
	app := cli.NewApp()
	app.Name = "bnet-auth-export"
	app.HelpName = "bnet-auth-export"
	app.Usage = "export a Battle.net authenticator into any TOTP app"
	app.Version = config.Version()
	app.Commands = command.Retrieve()

	// All non-successful output should be written to stderr
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	if err := app.Run(os.Args); err != nil {
		if os.Getenv("BNETDEBUG") == "1" {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func panicHandler() {
	if r := recover(); r != nil {
		if os.Getenv("BNETDEBUG") == "1" {
			fmt.Fprintf(os.Stderr, "%s\n", config.Version())
			fmt.Fprintf(os.Stderr, "Release Date: %s\n\n", config.ReleaseDate())
			panic(r)
		} else {
			fmt.Fprintln(os.Stderr, "Something unexpected happened.")
			fmt.Fprintln(os.Stderr, "If you want to help us debug the problem, please run:")
			fmt.Fprintf(os.Stderr, "BNETDEBUG=1 %s\n", strings.Join(os.Args, " "))
			os.Exit(2)
		}
	}
}
