// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/measure/internal/issue"
	"github.com/invowk/measure/internal/report"
	"github.com/invowk/measure/pkg/quantity"
)

const (
	formatTable = "table"
	formatTOML  = "toml"
)

// newUnitsCommand creates the `measure units` command.
func newUnitsCommand(app *App) *cobra.Command {
	var (
		family string
		format string
	)

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units and scales of the catalog",
		Long: `List the units and scales of the catalog with their symbols.

Unit rows show the factor (instances per canonical unit of the family); a
trailing * marks a calibratable factor such as an exchange rate. Scale rows show
the offset: the reading at the family's absolute zero, in the scale's unit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(err, "")
			}

			var ids []quantity.FamilyID
			if family != "" {
				f, err := s.catalog.FamilyByName(quantity.FamilyName(family))
				if err != nil {
					return app.fail(unknownFamilyError(family, err), s.cfg.UI.ColorScheme)
				}
				ids = append(ids, f.ID)
			}
			snap, err := report.Build(s.catalog, ids...)
			if err != nil {
				return err
			}
			return writeSnapshot(app, snap, format, report.UnitsTable)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list this family")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table|toml)")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatTable, formatTOML}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// newFamiliesCommand creates the `measure families` command.
func newFamiliesCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "families",
		Short: "List the quantity families of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(err, "")
			}
			snap, err := report.Build(s.catalog)
			if err != nil {
				return err
			}
			return writeSnapshot(app, snap, format, report.FamiliesTable)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table|toml)")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatTable, formatTOML}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func writeSnapshot(app *App, snap report.Snapshot, format string, table func(report.Snapshot, report.Styles) string) error {
	switch format {
	case formatTable:
		fmt.Fprintln(app.stdout, table(snap, tableStyles()))
		return nil
	case formatTOML:
		data, err := snap.TOML()
		if err != nil {
			return err
		}
		_, err = app.stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (valid: %s, %s)", format, formatTable, formatTOML)
	}
}

func unknownFamilyError(name string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("list units").
		WithResource(name).
		WithIssue(issue.UnknownFamilyId).
		WithSuggestion("Run 'measure families' to list the registered families").
		Wrap(cause).
		BuildError()
}
