// SPDX-License-Identifier: MPL-2.0

// Package report turns a sealed catalog into renderable snapshots: a TOML
// document for machines and lipgloss tables for terminals.
package report

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	// Snapshot is a point-in-time view of a catalog. Calibratable factors are
	// captured as they were when Build ran.
	Snapshot struct {
		Families []FamilyEntry `toml:"family"`
	}

	// FamilyEntry describes one family and its proxies.
	FamilyEntry struct {
		ID        uint16       `toml:"id"`
		Name      string       `toml:"name"`
		Sense     string       `toml:"sense"`
		Kind      string       `toml:"kind"`
		Canonical string       `toml:"canonical"`
		Units     []UnitEntry  `toml:"unit"`
		Scales    []ScaleEntry `toml:"scale,omitempty"`
	}

	// UnitEntry describes a ratio unit.
	UnitEntry struct {
		Name         string   `toml:"name"`
		Symbols      []string `toml:"symbols"`
		Factor       string   `toml:"factor"`
		Calibratable bool     `toml:"calibratable,omitempty"`
	}

	// ScaleEntry describes an affine scale.
	ScaleEntry struct {
		Name    string   `toml:"name"`
		Symbols []string `toml:"symbols"`
		Unit    string   `toml:"unit"`
		Offset  string   `toml:"offset"`
	}
)

// Build captures the given families of c, or every family when none is given.
// Unknown ids fail with catalog.ErrUnknownFamily.
func Build(c *catalog.Catalog, families ...quantity.FamilyID) (Snapshot, error) {
	var fams []catalog.Family
	if len(families) == 0 {
		fams = c.Families()
	} else {
		fams = make([]catalog.Family, 0, len(families))
		for _, id := range families {
			f, err := c.Family(id)
			if err != nil {
				return Snapshot{}, err
			}
			fams = append(fams, f)
		}
	}

	snap := Snapshot{Families: make([]FamilyEntry, 0, len(fams))}
	for _, f := range fams {
		snap.Families = append(snap.Families, familyEntry(c, f))
	}
	return snap, nil
}

func familyEntry(c *catalog.Catalog, f catalog.Family) FamilyEntry {
	entry := FamilyEntry{ID: uint16(f.ID), Name: string(f.Name)}
	if canonical, err := c.Unit(f.ID); err == nil {
		entry.Canonical = string(canonical.Name())
		entry.Sense = canonical.Sense().String()
		entry.Kind = canonical.Kind().String()
	}
	for _, u := range c.Units(f.ID) {
		entry.Units = append(entry.Units, UnitEntry{
			Name:         string(u.Name()),
			Symbols:      symbolStrings(u.Symbols()),
			Factor:       u.FactorText(),
			Calibratable: u.Calibratable(),
		})
	}
	for _, s := range c.Scales(f.ID) {
		entry.Scales = append(entry.Scales, ScaleEntry{
			Name:    string(s.Name()),
			Symbols: symbolStrings(s.Symbols()),
			Unit:    string(s.BaseUnit().Name()),
			Offset:  s.OffsetText(),
		})
	}
	return entry
}

func symbolStrings(c symbol.Collection) []string {
	all := c.All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// TOML encodes the snapshot as a TOML document with one [[family]] table per family.
func (s Snapshot) TOML() ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode catalog snapshot: %w", err)
	}
	return data, nil
}

// ParseTOML decodes a document produced by Snapshot.TOML.
func ParseTOML(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := toml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode catalog snapshot: %w", err)
	}
	return s, nil
}
