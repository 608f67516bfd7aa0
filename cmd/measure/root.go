// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "measure",
		Short: "Convert typed quantities between units and scales",
		Long: TitleStyle.Render("measure") + SubtitleStyle.Render(" - typed quantities with a sealed conversion catalog") + `

measure converts values between the units and scales of one quantity family:
lengths, areas, durations, velocities, masses, angles, energies, torques,
powers, temperatures and currencies. Families never mix, even when they share
a dimension (joule and newton meter are both M·L²·T⁻²).

` + SubtitleStyle.Render("Examples:") + `
  measure convert 1500 m km      Convert between ratio units
  measure convert 32 °F °C       Convert a scale reading
  measure units --family mass    List the units of a family
  measure config init            Write a default config file`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $HOME/.config/measure/config.cue)")

	root.AddCommand(newConvertCommand(app))
	root.AddCommand(newUnitsCommand(app))
	root.AddCommand(newFamiliesCommand(app))
	root.AddCommand(newConfigCommand(app))
	root.AddCommand(newCompletionCommand(app))

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process on failure. It is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
