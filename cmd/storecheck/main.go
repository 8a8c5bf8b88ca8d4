package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/storeqa/storecheck/internal/browser"
	internalcli "github.com/storeqa/storecheck/internal/cli"
	"github.com/storeqa/storecheck/internal/config"
)

var version = "0.1.0"

// buildRunDependencies loads all configuration a verification run needs
func buildRunDependencies(configPath string, logger zerolog.Logger) (internalcli.RunDependencies, error) {
	var deps internalcli.RunDependencies
	deps.Logger = logger

	site, err := config.LoadSiteConfig(os.Getenv)
	if err != nil {
		return deps, fmt.Errorf("invalid site configuration: %w", err)
	}
	deps.Site = site

	brow, err := config.LoadBrowserConfig(os.Getenv)
	if err != nil {
		return deps, fmt.Errorf("invalid browser configuration: %w", err)
	}
	deps.Brow = brow

	suite, err := config.LoadSuiteConfig(configPath)
	if err != nil {
		return deps, fmt.Errorf("invalid suite configuration: %w", err)
	}
	deps.Suite = suite

	return deps, nil
}

// InstallCommand returns the browser install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the browser binaries used by the suite",
		Action: func(c *cli.Context) error {
			return browser.Install()
		},
	}
}

// SmokeCommand returns the quick health-check command
func SmokeCommand(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Log in and verify the default product listing",
		Flags: []cli.Flag{suiteFlag()},
		Action: func(c *cli.Context) error {
			deps, err := buildRunDependencies(c.String("suite"), logger)
			if err != nil {
				return err
			}
			return internalcli.RunSmoke(c.Context, deps)
		},
	}
}

// ScenariosCommand returns the full declarative-check command
func ScenariosCommand(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "Run all configured sort and checkout-totals checks",
		Flags: []cli.Flag{suiteFlag()},
		Action: func(c *cli.Context) error {
			deps, err := buildRunDependencies(c.String("suite"), logger)
			if err != nil {
				return err
			}
			return internalcli.RunScenarios(c.Context, deps)
		},
	}
}

func suiteFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "suite",
		Usage: "Path to the suite fixtures YAML file",
		Value: "suite.yaml",
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := &cli.App{
		Name:    "storecheck",
		Usage:   "Browser-driven verification suite for the demo storefront",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			SmokeCommand(logger),
			ScenariosCommand(logger),
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logger.Fatal().Err(err).Msg("run failed")
	}
}
