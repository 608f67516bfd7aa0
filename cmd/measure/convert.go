// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/measure/internal/issue"
	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
)

// conversion is the outcome of one convert invocation.
type conversion struct {
	from, to quantity.Proxy
	result   string
}

// newConvertCommand creates the `measure convert` command.
func newConvertCommand(app *App) *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "convert <value> <from-symbol> <to-symbol>",
		Short: "Convert a value between two units or scales of one family",
		Long: `Convert a value between two units or scales of the same family.

Symbols are matched exactly against the catalog. A symbol may name both a unit
and a scale (K is the kelvin unit and the Kelvin scale); the other symbol
decides which one is meant.

` + SubtitleStyle.Render("Examples:") + `
  measure convert 1500 m km        Ratio units
  measure convert 32 °F °C         Scale readings
  measure convert 10 C° F°         Temperature differences
  measure convert 100 EUR USD      Currency, exact decimals
  measure convert -- -40 °C °F     Negative values follow --`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return app.fail(err, "")
			}
			conv, err := convert(s.catalog, args[0], args[1], args[2])
			if err != nil {
				return app.fail(&ExitError{Code: ExitConversion, Err: err}, s.cfg.UI.ColorScheme)
			}
			s.logger.Debug("converted",
				"from", conv.from.Name(), "to", conv.to.Name(), "kind", conv.from.Kind())

			if bare {
				fmt.Fprintln(app.stdout, conv.result)
				return nil
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render(conv.result)+" "+CmdStyle.Render(args[2]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "print only the converted number")
	return cmd
}

// convert resolves both symbols in c and converts value between them.
func convert(c *catalog.Catalog, value, fromSym, toSym string) (conversion, error) {
	from, to, err := resolvePair(c, fromSym, toSym)
	if err != nil {
		return conversion{}, err
	}
	out, err := catalog.ConvertText(c, from, to, value)
	if err != nil {
		return conversion{}, conversionError(err, fmt.Sprintf("%s %s -> %s", value, fromSym, toSym))
	}
	return conversion{from: from, to: to, result: out}, nil
}

func conversionError(err error, resource string) error {
	ec := issue.NewErrorContext().
		WithOperation("convert quantity").
		WithResource(resource).
		Wrap(err)
	switch {
	case errors.Is(err, numeric.ErrInvalidNumber), errors.Is(err, numeric.ErrNotFinite):
		ec.WithIssue(issue.InvalidNumberId)
	case errors.Is(err, quantity.ErrLookupMiss):
		ec.WithIssue(issue.ScaleNotFoundId)
	case errors.Is(err, catalog.ErrUnsupportedConversion):
		ec.WithIssue(issue.UnsupportedConversionId)
	case errors.Is(err, quantity.ErrIncompatibleFamily):
		ec.WithIssue(issue.IncompatibleFamilyId)
	}
	return ec.BuildError()
}
