// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	UnknownSymbolId Id = iota + 1
	AmbiguousSymbolId
	IncompatibleFamilyId
	ScaleNotFoundId
	UnsupportedConversionId
	InvalidNumberId
	UnknownFamilyId
	ConfigLoadFailedId
	CalibrationRejectedId
)

type (
	// Id identifies an issue in the catalog.
	Id int

	// MarkdownMsg is the markdown body rendered for an issue.
	MarkdownMsg string

	// HttpLink is a documentation link appended to a rendered issue.
	HttpLink string

	// Issue is a markdown guide shown when a known failure occurs.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the issue's catalog id.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render renders the issue with the glamour style at stylePath
// ("dark", "light", "notty", "auto" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		var sb strings.Builder
		sb.WriteString(md)
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
		md = sb.String()
	}
	return render(md, stylePath)
}

const docsBase = "https://github.com/invowk/measure/blob/main/README.md"

var (
	render = glamour.Render

	issues = []*Issue{
		{
			id: UnknownSymbolId,
			mdMsg: `
# Unknown unit symbol

No unit or scale in the catalog is spelled this way. Symbols are matched exactly,
so "KM" and "km" are different spellings.

## Things you can try
- List every registered symbol:
~~~
$ measure units
~~~
- Declare the unit in your config file:
~~~cue
units: [{name: "furlong", family: "length", factor: 0.00497096954, symbols: ["fur"]}]
~~~`,
			docLinks: []HttpLink{docsBase + "#custom-units"},
		},
		{
			id: AmbiguousSymbolId,
			mdMsg: `
# Ambiguous unit symbol

The symbol names proxies in more than one family, and the other symbol does not
narrow it down to one of them.

## Things you can try
- Use a more specific spelling listed by:
~~~
$ measure units --family <name>
~~~`,
		},
		{
			id: IncompatibleFamilyId,
			mdMsg: `
# Units of different families

Conversion only happens between units of the same family. Two units may share
a dimension and still be distinct families: joule (energy) and newton meter
(torque) never convert into each other.

## Things you can try
- List the families and their units:
~~~
$ measure families
$ measure units --family energy
~~~`,
			docLinks: []HttpLink{docsBase + "#families"},
		},
		{
			id: ScaleNotFoundId,
			mdMsg: `
# No scale is bound to this unit

A bare quantity can only be read as a level when its family has a scale that
reads in exactly that unit.

## Things you can try
- Convert from the scale directly, for example °F instead of F°
- Convert between units instead of scales, for example C° to F°`,
		},
		{
			id: UnsupportedConversionId,
			mdMsg: `
# A scale reading cannot become a ratio quantity

A level such as 21.5 °C is a position on a scale, not an amount. It converts to
other scales of its family, but not into a plain unit.

## Things you can try
- Convert to another scale: ` + "`measure convert 21.5 °C °F`" + `
- Convert a temperature difference between degree units: ` + "`measure convert 10 C° F°`",
		},
		{
			id: InvalidNumberId,
			mdMsg: `
# Invalid number

The value could not be parsed for the unit's numeric kind. Values use a dot as
the decimal separator and may use scientific notation (1.5, 2e3). NaN and
infinities are rejected. Currency amounts are exact decimals (19.99).

A negative value must follow ` + "`--`" + `: ` + "`measure convert -- -40 °C °F`" + `.`,
		},
		{
			id: UnknownFamilyId,
			mdMsg: `
# Unknown family

No family of that name is registered.

## Things you can try
~~~
$ measure families
~~~`,
		},
		{
			id: ConfigLoadFailedId,
			mdMsg: `
# Failed to load the configuration

The config file could not be read, or it does not match the schema.

## Things you can try
- Print the effective configuration and where it came from:
~~~
$ measure config path
$ measure config show
~~~
- Write a fresh default file:
~~~
$ measure config init
~~~`,
			docLinks: []HttpLink{docsBase + "#configuration"},
		},
		{
			id: CalibrationRejectedId,
			mdMsg: `
# Exchange rate rejected

Rates are units of the currency per one euro and must be positive decimal
strings. The euro itself is the reference and cannot be recalibrated.

## Example
~~~cue
currency: rates: {USD: "1.0842", GBP: "0.8537"}
~~~`,
		},
	}
)

// Values returns every catalog issue in id order.
func Values() []*Issue {
	return slices.Clone(issues)
}

// Get returns the issue with the given id, or nil when it is not defined.
func Get(id Id) *Issue {
	if id < 1 || int(id) > len(issues) {
		return nil
	}
	return issues[id-1]
}
