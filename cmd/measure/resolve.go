// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/invowk/measure/internal/issue"
	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

const (
	// rankSameKind pairs a unit with a unit or a scale with a scale.
	rankSameKind = iota
	// rankUnitToScale reads a ratio quantity as a level.
	rankUnitToScale
)

type proxyPair struct {
	from, to quantity.Proxy
	rank     int
}

// resolvePair picks the proxies named by two symbols. Only pairs within one
// family are considered, scale to unit pairs are skipped, and same-kind pairs win
// over unit to scale pairs. So "300 K °C" reads K as the Kelvin scale, while
// "10 K F°" reads it as the kelvin unit.
func resolvePair(c *catalog.Catalog, fromSym, toSym string) (from, to quantity.Proxy, err error) {
	froms, err := lookupSymbol(c, fromSym)
	if err != nil {
		return nil, nil, err
	}
	tos, err := lookupSymbol(c, toSym)
	if err != nil {
		return nil, nil, err
	}

	var (
		best        []proxyPair
		levelToUnit *proxyPair
	)
	for _, f := range froms {
		for _, t := range tos {
			if f.Family() != t.Family() {
				continue
			}
			rank, ok := pairRank(f, t)
			if !ok {
				levelToUnit = &proxyPair{from: f, to: t}
				continue
			}
			switch {
			case len(best) == 0 || rank < best[0].rank:
				best = []proxyPair{{from: f, to: t, rank: rank}}
			case rank == best[0].rank:
				best = append(best, proxyPair{from: f, to: t, rank: rank})
			}
		}
	}

	resource := fromSym + " -> " + toSym
	switch {
	case len(best) == 1:
		return best[0].from, best[0].to, nil
	case len(best) > 1:
		return nil, nil, issue.NewErrorContext().
			WithOperation("resolve unit symbols").
			WithResource(resource).
			WithIssue(issue.AmbiguousSymbolId).
			WithSuggestion("Candidates: " + describePairs(c, best)).
			Wrap(fmt.Errorf("%d candidate conversions", len(best))).
			BuildError()
	case levelToUnit != nil:
		return nil, nil, issue.NewErrorContext().
			WithOperation("resolve unit symbols").
			WithResource(resource).
			WithIssue(issue.UnsupportedConversionId).
			Wrap(&catalog.UnsupportedConversionError{From: levelToUnit.from.Name(), To: levelToUnit.to.Name()}).
			BuildError()
	default:
		f, t := froms[0], tos[0]
		return nil, nil, issue.NewErrorContext().
			WithOperation("resolve unit symbols").
			WithResource(resource).
			WithIssue(issue.IncompatibleFamilyId).
			WithSuggestion(fmt.Sprintf("%s is %s, %s is %s", fromSym, familyName(c, f.Family()), toSym, familyName(c, t.Family()))).
			Wrap(&quantity.IncompatibleFamilyError{From: f.Name(), To: t.Name(), FromFamily: f.Family(), ToFamily: t.Family()}).
			BuildError()
	}
}

func lookupSymbol(c *catalog.Catalog, s string) ([]quantity.Proxy, error) {
	sym := symbol.Symbol(s)
	if err := sym.Validate(); err != nil {
		return nil, unknownSymbolError(s, err)
	}
	proxies := c.LookupSymbol(sym)
	if len(proxies) == 0 {
		return nil, unknownSymbolError(s, fmt.Errorf("no unit or scale is spelled %q", s))
	}
	return proxies, nil
}

func unknownSymbolError(s string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("resolve unit symbol").
		WithResource(s).
		WithIssue(issue.UnknownSymbolId).
		WithSuggestion("Run 'measure units' to list every registered symbol").
		Wrap(cause).
		BuildError()
}

// pairRank ranks a same-family pair; ok is false for scale to unit pairs.
func pairRank(from, to quantity.Proxy) (rank int, ok bool) {
	_, fromScale := from.(quantity.ScaleProxy)
	_, toScale := to.(quantity.ScaleProxy)
	switch {
	case fromScale && !toScale:
		return 0, false
	case fromScale == toScale:
		return rankSameKind, true
	default:
		return rankUnitToScale, true
	}
}

func describePairs(c *catalog.Catalog, pairs []proxyPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s to %s (%s)", p.from.Name(), p.to.Name(), familyName(c, p.from.Family()))
	}
	return strings.Join(parts, "; ")
}

func familyName(c *catalog.Catalog, id quantity.FamilyID) string {
	if f, err := c.Family(id); err == nil {
		return string(f.Name)
	}
	return id.String()
}
