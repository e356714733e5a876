// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daycount provides day count conventions that convert the
// interval between two dates into the year fraction used for interest
// accrual.
//
// No ordering is imposed on the start and end dates: if end is before
// start the year fraction is negative.
package daycount

import (
	"fmt"

	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
)

type yearFractionFunc func(start, end datetime.CalendarDate) float64

var yearFractions = [numConventions]yearFractionFunc{
	Actual360:    actual(360),
	Actual365:    actual(365),
	ActualActual: actualActual,
	Thirty360:    thirty360(thirty360Rule),
	Thirty360US:  thirty360(thirty360USRule),
	Thirty360EU:  thirty360(thirty360EURule),
}

// YearFraction returns the fraction of a year between start and end
// according to the specified convention. It panics if c is not one
// of the defined conventions.
func YearFraction(c Convention, start, end datetime.CalendarDate) float64 {
	if !c.valid() {
		panic(fmt.Sprintf("daycount: unsupported convention: %d", int(c)))
	}
	return yearFractions[c](start, end)
}

// YearFraction is a convenience method for YearFraction(c, start, end).
func (c Convention) YearFraction(start, end datetime.CalendarDate) float64 {
	return YearFraction(c, start, end)
}

func actual(basis float64) yearFractionFunc {
	return func(start, end datetime.CalendarDate) float64 {
		return float64(start.DaysUntil(end)) / basis
	}
}

// actualActual uses the length of the start date's year only, there is
// no weighting across the years spanned by the interval.
func actualActual(start, end datetime.CalendarDate) float64 {
	return float64(start.DaysUntil(end)) / float64(datetime.DaysInYear(start.Year()))
}

// thirtyRule determines the adjusted day of month for each end of a 30/360
// interval. The end clamp is given the already adjusted start day.
type thirtyRule struct {
	start func(d1 int) int
	end   func(d2, d1 int) int
}

var (
	thirty360Rule = thirtyRule{
		start: func(d1 int) int { return min(d1, 30) },
		end:   func(d2, _ int) int { return min(d2, 30) },
	}

	thirty360USRule = thirtyRule{
		start: func(d1 int) int {
			if d1 == 31 {
				return 30
			}
			return d1
		},
		end: func(d2, d1 int) int {
			if d2 == 31 && d1 == 30 {
				return 30
			}
			return d2
		},
	}

	thirty360EURule = thirtyRule{
		start: clampEU,
		end:   func(d2, _ int) int { return clampEU(d2) },
	}
)

func clampEU(d int) int {
	if d == 31 {
		return 30
	}
	return min(d, 30)
}

func thirty360(rule thirtyRule) yearFractionFunc {
	return func(start, end datetime.CalendarDate) float64 {
		d1 := rule.start(start.Day())
		d2 := rule.end(end.Day(), d1)
		years := end.Year() - start.Year()
		months := int(end.Month()) - int(start.Month())
		return float64(360*years+30*months+(d2-d1)) / 360.0
	}
}
