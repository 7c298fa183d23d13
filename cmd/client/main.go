// Package main is the command-line client for the Growth Mindset server.
package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/atinyakov/GrowthMindset/internal/client/api"
	"github.com/atinyakov/GrowthMindset/internal/client/cli"
	"github.com/atinyakov/GrowthMindset/internal/client/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

var CLI struct {
	Version kong.VersionFlag `help:"Show build version and date."`
	Server  string           `help:"Server base URL." default:"http://localhost:8080" env:"GROWTH_SERVER"`
	Session string           `help:"Session file path." default:"${session_file}" type:"path" env:"GROWTH_SESSION"`

	Register   cli.RegisterCmd   `cmd:"" help:"Create an account."`
	Login      cli.LoginCmd      `cmd:"" help:"Log in and remember the session."`
	Logout     cli.LogoutCmd     `cmd:"" help:"Forget the stored session."`
	Progress   cli.ProgressCmd   `cmd:"" help:"Record today's progress."`
	Summary    cli.SummaryCmd    `cmd:"" help:"Download the progress summary PDF."`
	Motivation cli.MotivationCmd `cmd:"" help:"Show the quote of the day."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("growth"),
		kong.Description("Growth Mindset Challenge client"),
		kong.UsageOnError(),
		kong.Vars{
			"version":      fmt.Sprintf("%s (built %s)", cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A")),
			"session_file": storage.DefaultFile,
		},
	)

	store := storage.New(CLI.Session)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := cli.NewContext(api.New(CLI.Server), store, os.Stdin, os.Stdout)
	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
