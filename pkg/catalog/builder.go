// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	// Builder collects families and proxies before they are sealed into a
	// Catalog. It must be allocated exactly once, before anything is added.
	// A Builder is not safe for concurrent use.
	Builder struct {
		opts        builderOptions
		allocated   bool
		sealed      bool
		maxUnits    int
		maxScales   int
		buckets     []*bucket
		byName      map[quantity.FamilyName]quantity.FamilyID
		derivations []quantity.Derivation
	}

	// bucket holds one family's proxies in registration order.
	bucket struct {
		id     quantity.FamilyID
		name   quantity.FamilyName
		units  []quantity.UnitProxy
		scales []quantity.ScaleProxy
	}
)

// NewBuilder returns an empty, unallocated builder.
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{
		opts:   o,
		byName: make(map[quantity.FamilyName]quantity.FamilyID),
	}
}

// Allocate reserves storage: every family created afterwards holds at most
// maxUnits units and maxScales scales.
func (b *Builder) Allocate(maxUnits, maxScales int) error {
	switch {
	case b.sealed:
		return ErrSealed
	case b.allocated:
		return ErrAlreadyAllocated
	case maxUnits <= 0 || maxScales < 0:
		return fmt.Errorf("%w: units=%d scales=%d", ErrInvalidCapacity, maxUnits, maxScales)
	}
	b.allocated = true
	b.maxUnits = maxUnits
	b.maxScales = maxScales
	return nil
}

// NewFamily allocates the next family id under a unique name.
func (b *Builder) NewFamily(name quantity.FamilyName) (quantity.FamilyID, error) {
	if err := b.ready(); err != nil {
		return 0, err
	}
	if err := name.Validate(); err != nil {
		return 0, err
	}
	if _, exists := b.byName[name]; exists {
		return 0, &DuplicateFamilyError{Name: name}
	}
	if len(b.buckets) >= math.MaxUint16 {
		return 0, fmt.Errorf("%w: at most %d families", ErrCapacityExceeded, math.MaxUint16)
	}

	id := quantity.FamilyID(len(b.buckets) + 1)
	b.buckets = append(b.buckets, &bucket{
		id:     id,
		name:   name,
		units:  make([]quantity.UnitProxy, 0, b.maxUnits),
		scales: make([]quantity.ScaleProxy, 0, b.maxScales),
	})
	b.byName[name] = id
	return id, nil
}

// Add registers a unit or scale proxy in its family. The first unit added to
// a family is its canonical unit. A family holds at most one scale per
// underlying unit.
func (b *Builder) Add(proxy quantity.Proxy) error {
	if err := b.ready(); err != nil {
		return err
	}
	if isNilProxy(proxy) {
		return ErrUnsupportedProxy
	}
	bk, err := b.bucket(proxy.Family())
	if err != nil {
		return err
	}
	if bk.has(proxy.Name()) {
		return &DuplicateProxyError{Family: bk.id, Name: proxy.Name()}
	}

	switch p := proxy.(type) {
	case quantity.ScaleProxy:
		if len(bk.scales) >= b.maxScales {
			return &CapacityExceededError{Family: bk.id, Kind: "scale", Capacity: b.maxScales}
		}
		if existing := bk.scaleFor(p.BaseUnit()); existing != nil {
			return &AmbiguousScaleError{
				Family:   bk.id,
				Unit:     p.BaseUnit().Name(),
				Existing: existing.Name(),
				Rejected: p.Name(),
			}
		}
		bk.scales = append(bk.scales, p)
	case quantity.UnitProxy:
		if len(bk.units) >= b.maxUnits {
			return &CapacityExceededError{Family: bk.id, Kind: "unit", Capacity: b.maxUnits}
		}
		bk.units = append(bk.units, p)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedProxy, proxy)
	}
	return nil
}

// Derive records an assertion that a unit is derived from two others.
// Assertions are checked by Seal.
func (b *Builder) Derive(d quantity.Derivation) error {
	if err := b.ready(); err != nil {
		return err
	}
	if d == nil {
		return errors.New("nil derivation")
	}
	b.derivations = append(b.derivations, d)
	return nil
}

// Seal validates the registered proxies and returns the immutable catalog.
// Seal consumes the builder even when it fails; every later call on the
// builder returns ErrSealed.
func (b *Builder) Seal() (*Catalog, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	b.sealed = true

	var errs []error
	for _, bk := range b.buckets {
		for _, s := range bk.scales {
			if !bk.hasUnit(s.BaseUnit()) {
				errs = append(errs, &UnboundScaleError{Scale: s.Name(), Unit: s.BaseUnit().Name()})
			}
		}
	}
	for _, d := range b.derivations {
		if err := d.Check(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger := b.opts.logger
	c := &Catalog{
		buckets: b.buckets,
		byName:  b.byName,
		symbols: make(map[symbol.Symbol][]quantity.Proxy),
	}
	var units, scales int
	for _, bk := range b.buckets {
		if len(bk.units) > 0 && !bk.units[0].HasUnitFactor() {
			logger.Warn("canonical unit factor is not one",
				"family", bk.name, "unit", bk.units[0].Name(), "factor", bk.units[0].FactorText())
		}
		for _, u := range bk.units {
			c.index(u)
		}
		for _, s := range bk.scales {
			c.index(s)
		}
		units += len(bk.units)
		scales += len(bk.scales)
	}
	logger.Debug("catalog sealed", "families", len(b.buckets), "units", units, "scales", scales)

	b.buckets = nil
	b.byName = nil
	b.derivations = nil
	return c, nil
}

func (b *Builder) ready() error {
	switch {
	case b.sealed:
		return ErrSealed
	case !b.allocated:
		return ErrNotAllocated
	}
	return nil
}

func (b *Builder) bucket(id quantity.FamilyID) (*bucket, error) {
	if id == 0 || int(id) > len(b.buckets) {
		return nil, &UnknownFamilyError{ID: id}
	}
	return b.buckets[id-1], nil
}

func (bk *bucket) has(name quantity.UnitName) bool {
	for _, u := range bk.units {
		if u.Name() == name {
			return true
		}
	}
	for _, s := range bk.scales {
		if s.Name() == name {
			return true
		}
	}
	return false
}

func (bk *bucket) hasUnit(unit quantity.UnitProxy) bool {
	for _, u := range bk.units {
		if u == unit {
			return true
		}
	}
	return false
}

func (bk *bucket) scaleFor(unit quantity.UnitProxy) quantity.ScaleProxy {
	for _, s := range bk.scales {
		if s.BaseUnit() == unit {
			return s
		}
	}
	return nil
}
