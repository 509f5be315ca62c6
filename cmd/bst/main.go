package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "bst",
		Usage:   "build, mutate and print binary search trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: configureLogging,
	}
	app.Commands = []*cli.Command{
		cmdBuild,
		cmdDemo,
	}
	return app
}

func configureLogging(cctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	h := slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	return nil
}
