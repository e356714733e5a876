// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package roll provides business day conventions that move a date that
// falls on a weekend or holiday onto a business day.
//
// The modified conventions guard against crossing a month boundary: if the
// initial walk ends in a different month to the original date, a second walk
// in the opposite direction is started one day beyond the first walk's
// result (not from the original date).
//
// Every walk is bounded, see WithMaxWalkDays. A holiday set that marks
// every day in the bound as a holiday results in an error wrapping
// ErrNonTerminatingAdjustment rather than a walk that never ends.
package roll

import (
	"errors"
	"fmt"

	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
)

var (
	// ErrNonTerminatingAdjustment is returned when no business day is
	// found within the walk bound.
	ErrNonTerminatingAdjustment = errors.New("non-terminating adjustment")

	// ErrUnknownConvention is returned for labels or values that do not
	// name a roll convention.
	ErrUnknownConvention = errors.New("unknown roll convention")
)

// MaxWalkDays is the default bound on the number of days a single walk
// may step over, a little over ten years.
const MaxWalkDays = 3700

type options struct {
	maxWalkDays int
}

// Option represents an option to Adjust.
type Option func(*options)

// WithMaxWalkDays sets the maximum number of days that a single walk
// may step over before giving up. Values <= 0 are ignored.
func WithMaxWalkDays(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxWalkDays = n
		}
	}
}

// Adjust returns the business day for cd according to the convention
// and the supplied holidays. A nil holidays is treated as having no
// holidays, so that only weekends are skipped. cd is returned unchanged
// if it is already a business day.
func Adjust(c Convention, cd datetime.CalendarDate, holidays datetime.Holidays, opts ...Option) (datetime.CalendarDate, error) {
	o := options{maxWalkDays: MaxWalkDays}
	for _, fn := range opts {
		fn(&o)
	}
	w := walker{convention: c, holidays: holidays, bound: o.maxWalkDays}
	switch c {
	case Following:
		return w.walk(cd, 1)
	case Preceding:
		return w.walk(cd, -1)
	case ModifiedFollowing:
		return w.modified(cd, 1)
	case ModifiedPreceding:
		return w.modified(cd, -1)
	}
	return cd, fmt.Errorf("%w: %d", ErrUnknownConvention, int(c))
}

// MustAdjust is like Adjust but panics on error.
func MustAdjust(c Convention, cd datetime.CalendarDate, holidays datetime.Holidays, opts ...Option) datetime.CalendarDate {
	adjusted, err := Adjust(c, cd, holidays, opts...)
	if err != nil {
		panic(err)
	}
	return adjusted
}

// Adjust is a convenience method for Adjust(c, cd, holidays, opts...).
func (c Convention) Adjust(cd datetime.CalendarDate, holidays datetime.Holidays, opts ...Option) (datetime.CalendarDate, error) {
	return Adjust(c, cd, holidays, opts...)
}

type walker struct {
	convention Convention
	holidays   datetime.Holidays
	bound      int
}

// walk steps one day at a time in the direction of step until a business
// day is found.
func (w walker) walk(cd datetime.CalendarDate, step int) (datetime.CalendarDate, error) {
	start := cd
	for n := 0; !datetime.IsBusinessDay(cd, w.holidays); n++ {
		if n >= w.bound {
			return start, fmt.Errorf("%w: %v from %v: no business day within %d days", ErrNonTerminatingAdjustment, w.convention, start, w.bound)
		}
		cd = cd.AddDays(step)
	}
	return cd, nil
}

func (w walker) modified(cd datetime.CalendarDate, step int) (datetime.CalendarDate, error) {
	adjusted, err := w.walk(cd, step)
	if err != nil {
		return cd, err
	}
	if adjusted.Month() == cd.Month() {
		return adjusted, nil
	}
	return w.walk(adjusted.AddDays(-step), -step)
}
