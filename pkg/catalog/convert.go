// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
)

// Convert converts raw, expressed in from, into to. Both proxies must belong
// to the same family and store T.
//
//   - unit to unit: ratio conversion.
//   - scale to scale: affine conversion through the family's absolute reference.
//   - unit to scale: raw is read on the scale bound to from, resolved by c.
//   - scale to unit: rejected with *UnsupportedConversionError.
//
// A nil c resolves no scale, so unit to scale fails with *quantity.LookupMissError.
func Convert[T any](c *Catalog, from, to quantity.Proxy, raw T) (T, error) {
	var zero T
	if isNilProxy(from) || isNilProxy(to) {
		return zero, ErrUnsupportedProxy
	}
	if from.Family() != to.Family() {
		return zero, &quantity.IncompatibleFamilyError{
			From:       from.Name(),
			To:         to.Name(),
			FromFamily: from.Family(),
			ToFamily:   to.Family(),
		}
	}

	switch src := from.(type) {
	case *quantity.Unit[T]:
		switch dst := to.(type) {
		case *quantity.Unit[T]:
			q, err := dst.From(src.Create(raw))
			if err != nil {
				return zero, err
			}
			return q.Value(), nil
		case *quantity.Scale[T]:
			l, err := dst.FromQuantity(src.Create(raw), c)
			if err != nil {
				return zero, err
			}
			return l.Value(), nil
		}
		return zero, kindMismatch[T](to)
	case *quantity.Scale[T]:
		switch dst := to.(type) {
		case *quantity.Scale[T]:
			l, err := dst.From(src.Create(raw))
			if err != nil {
				return zero, err
			}
			return l.Value(), nil
		case *quantity.Unit[T]:
			return zero, &UnsupportedConversionError{From: src.Name(), To: dst.Name()}
		}
		return zero, kindMismatch[T](to)
	}
	return zero, kindMismatch[T](from)
}

// ConvertText parses input with from's numeric kind, converts it into to and
// renders the result with to's display format.
func ConvertText(c *Catalog, from, to quantity.Proxy, input string) (string, error) {
	if isNilProxy(from) || isNilProxy(to) {
		return "", ErrUnsupportedProxy
	}
	switch from.Kind() {
	case numeric.KindFloat:
		return convertText[float64](c, from, to, input)
	case numeric.KindDecimal:
		return convertText[*apd.Decimal](c, from, to, input)
	}
	return "", &numeric.InvalidKindError{Value: from.Kind()}
}

func convertText[T any](c *Catalog, from, to quantity.Proxy, input string) (string, error) {
	arith, err := arithmeticOf[T](from)
	if err != nil {
		return "", err
	}
	raw, err := arith.Parse(input)
	if err != nil {
		return "", err
	}
	out, err := Convert(c, from, to, raw)
	if err != nil {
		return "", err
	}
	dst, err := arithmeticOf[T](to)
	if err != nil {
		return "", err
	}
	return dst.Format(out, to.Format()), nil
}

func arithmeticOf[T any](p quantity.Proxy) (numeric.Arithmetic[T], error) {
	switch v := p.(type) {
	case *quantity.Unit[T]:
		return v.Arithmetic(), nil
	case *quantity.Scale[T]:
		return v.Unit().Arithmetic(), nil
	}
	return nil, kindMismatch[T](p)
}

func kindMismatch[T any](p quantity.Proxy) error {
	return &quantity.KindMismatchError{Proxy: p.Name(), Want: kindOf[T](), Got: p.Kind()}
}

func kindOf[T any]() numeric.Kind {
	var zero T
	switch any(zero).(type) {
	case float64:
		return numeric.KindFloat
	case *apd.Decimal:
		return numeric.KindDecimal
	}
	return ""
}
