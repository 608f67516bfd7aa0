// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/invowk/measure/internal/config"
	"github.com/invowk/measure/internal/issue"
	"github.com/invowk/measure/internal/logging"
	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/units"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every command handler receives an App and builds its catalog
	// through it, so no registry lives in package state.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
		flags  globalFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Source(opts config.LoadOptions) (string, error)
	}

	globalFlags struct {
		verbose    bool
		configPath string
	}

	// session is the state one invocation builds from its configuration.
	session struct {
		cfg     *config.Config
		catalog *catalog.Catalog
		units   *units.Set
		logger  *slog.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.flags.configPath}
}

func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, &ExitError{Code: ExitConfig, Err: err}
	}
	return cfg, nil
}

// newSession loads the configuration and builds the sealed catalog from it.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	logger := logging.New(a.stderr, logging.Options{Verbose: a.flags.verbose || cfg.UI.Verbose})

	opts, err := cfg.UnitsOptions()
	if err != nil {
		return nil, &ExitError{Code: ExitConfig, Err: catalogBuildError(err)}
	}
	c, set, err := units.New(opts, catalog.WithLogger(logger))
	if err != nil {
		return nil, &ExitError{Code: ExitConfig, Err: catalogBuildError(err)}
	}
	logger.Debug("catalog ready", "families", len(c.Families()), "custom_units", len(opts.Custom))

	return &session{cfg: cfg, catalog: c, units: set, logger: logger}, nil
}

func catalogBuildError(err error) error {
	ec := issue.NewErrorContext().WithOperation("build unit catalog").Wrap(err)
	switch {
	case errors.Is(err, units.ErrUnknownCurrency),
		errors.Is(err, quantity.ErrNotCalibratable),
		errors.Is(err, quantity.ErrInvalidFactor),
		errors.Is(err, config.ErrInvalidRate):
		ec.WithIssue(issue.CalibrationRejectedId).
			WithSuggestion("Check the currency.rates entries of your config file")
	default:
		ec.WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check the units entries of your config file").
			WithSuggestion("Custom unit names and symbols must not clash with the standard set")
	}
	return ec.BuildError()
}

// fail prints the recovery hints and the linked issue guide of err to stderr and
// returns err for the command to propagate.
func (a *App) fail(err error, scheme config.ColorScheme) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if a.flags.verbose {
			fmt.Fprintln(a.stderr, SubtitleStyle.Render(ae.Format(true)))
		} else {
			for _, s := range ae.Suggestions {
				fmt.Fprintln(a.stderr, WarningStyle.Render("• "+s))
			}
		}
	}
	if is := issue.IssueOf(err); is != nil {
		if rendered, rerr := is.Render(glamourStyle(scheme)); rerr == nil {
			fmt.Fprint(a.stderr, rendered)
		}
	}
	return err
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
