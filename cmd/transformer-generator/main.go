// Package main provides the CLI entrypoint for transformer-generator.
//
// transformer-generator reads tagged-union declarations, either Go structs
// marked with //transform:union or YAML schema files, and writes for each
// union a dispatcher and a transformer interface with identity defaults.
package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"transformer-generator/internal/config"
)

// BuildVersion is set at link time.
var BuildVersion = "dev"

// settings are loaded once by the app's Before hook.
var settings = config.Default()

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		logrus.Errorf("transformer-generator: %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "transformer-generator"
	app.Usage = "generate dispatchers and transformers for tagged unions"
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file (YAML)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: trace, debug, info, warn, error",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
	app.Before = initConfig
	app.Commands = []cli.Command{
		genCommand(),
		checkCommand(),
		inspectCommand(),
	}

	return app
}

func initConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	settings = *cfg

	return initLogging(settings.LogLevel, c.Bool("no-color"))
}

func initLogging(level string, noColor bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	color := !noColor && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !color,
		ForceColors:      color,
		DisableTimestamp: true,
	})

	if !color {
		pterm.DisableColor()
	}

	return nil
}
