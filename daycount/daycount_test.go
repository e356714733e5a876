// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount_test

import (
	"math"
	"testing"

	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/daycount"
)

func ncd(year int, month datetime.Month, day int) datetime.CalendarDate {
	return datetime.NewCalendarDate(year, month, day)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestActual(t *testing.T) {
	for i, tc := range []struct {
		conv       daycount.Convention
		start, end datetime.CalendarDate
		want       float64
	}{
		{daycount.Actual360, ncd(2023, 1, 1), ncd(2023, 7, 1), 181.0 / 360},
		{daycount.Actual365, ncd(2023, 1, 1), ncd(2023, 7, 1), 181.0 / 365},
		{daycount.Actual360, ncd(2023, 7, 1), ncd(2023, 1, 1), -181.0 / 360},
		{daycount.Actual365, ncd(2023, 12, 31), ncd(2024, 12, 31), 366.0 / 365},
		{daycount.ActualActual, ncd(2023, 1, 1), ncd(2023, 7, 1), 181.0 / 365},
		{daycount.ActualActual, ncd(2024, 1, 1), ncd(2024, 7, 1), 182.0 / 366},
		{daycount.ActualActual, ncd(2000, 1, 1), ncd(2001, 1, 1), 1},
		{daycount.ActualActual, ncd(1900, 1, 1), ncd(1901, 1, 1), 1},
		{daycount.ActualActual, ncd(2024, 1, 1), ncd(2025, 1, 1), 1},
		{daycount.ActualActual, ncd(2023, 1, 1), ncd(2024, 1, 1), 1},
		// Only the start year's length is used.
		{daycount.ActualActual, ncd(2023, 12, 1), ncd(2024, 12, 1), 366.0 / 365},
		{daycount.ActualActual, ncd(2024, 12, 1), ncd(2023, 12, 1), -366.0 / 366},
	} {
		if got, want := daycount.YearFraction(tc.conv, tc.start, tc.end), tc.want; !approxEqual(got, want) {
			t.Errorf("%v: %v: %v -> %v: got %v, want %v", i, tc.conv, tc.start, tc.end, got, want)
		}
	}
}

func TestThirty360(t *testing.T) {
	type fractions struct{ bond, us, eu float64 }
	for i, tc := range []struct {
		start, end datetime.CalendarDate
		want       fractions
	}{
		{ncd(2020, 1, 30), ncd(2020, 2, 28), fractions{28.0 / 360, 28.0 / 360, 28.0 / 360}},
		{ncd(2023, 1, 31), ncd(2023, 3, 1), fractions{31.0 / 360, 31.0 / 360, 31.0 / 360}},
		{ncd(2023, 1, 31), ncd(2023, 3, 31), fractions{60.0 / 360, 60.0 / 360, 60.0 / 360}},
		{ncd(2023, 1, 30), ncd(2023, 3, 31), fractions{60.0 / 360, 60.0 / 360, 60.0 / 360}},
		// The US rule only clamps an end day of 31 when the start day is 30 or 31.
		{ncd(2023, 1, 15), ncd(2023, 3, 31), fractions{75.0 / 360, 76.0 / 360, 75.0 / 360}},
		{ncd(2024, 2, 29), ncd(2024, 3, 31), fractions{31.0 / 360, 32.0 / 360, 31.0 / 360}},
		{ncd(2023, 6, 15), ncd(2025, 6, 15), fractions{2, 2, 2}},
		{ncd(2023, 3, 1), ncd(2023, 1, 31), fractions{-31.0 / 360, -30.0 / 360, -31.0 / 360}},
		{ncd(2023, 3, 31), ncd(2023, 1, 15), fractions{-75.0 / 360, -75.0 / 360, -75.0 / 360}},
	} {
		got := fractions{
			bond: daycount.YearFraction(daycount.Thirty360, tc.start, tc.end),
			us:   daycount.YearFraction(daycount.Thirty360US, tc.start, tc.end),
			eu:   daycount.YearFraction(daycount.Thirty360EU, tc.start, tc.end),
		}
		if !approxEqual(got.bond, tc.want.bond) || !approxEqual(got.us, tc.want.us) || !approxEqual(got.eu, tc.want.eu) {
			t.Errorf("%v: %v -> %v: got %+v, want %+v", i, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestSameDate(t *testing.T) {
	for _, cd := range []datetime.CalendarDate{
		ncd(2023, 1, 31), ncd(2024, 2, 29), ncd(2023, 12, 31), ncd(1900, 3, 1),
	} {
		for _, c := range daycount.Conventions() {
			if got := c.YearFraction(cd, cd); got != 0 {
				t.Errorf("%v: %v: got %v, want 0", c, cd, got)
			}
		}
	}
}

func TestAntisymmetry(t *testing.T) {
	pairs := [][2]datetime.CalendarDate{
		{ncd(2023, 1, 1), ncd(2023, 7, 1)},
		{ncd(2020, 2, 29), ncd(2024, 2, 29)},
		{ncd(2023, 12, 31), ncd(2024, 1, 1)},
	}
	for _, c := range []daycount.Convention{daycount.Actual360, daycount.Actual365} {
		for _, p := range pairs {
			fwd, rev := c.YearFraction(p[0], p[1]), c.YearFraction(p[1], p[0])
			if fwd != -rev {
				t.Errorf("%v: %v, %v: %v != -%v", c, p[0], p[1], fwd, rev)
			}
		}
	}
}

func TestConventionLabels(t *testing.T) {
	for _, tc := range []struct {
		conv  daycount.Convention
		label string
	}{
		{daycount.Actual360, "Actual/360"},
		{daycount.Actual365, "Actual/365"},
		{daycount.ActualActual, "Actual/Actual"},
		{daycount.Thirty360, "30/360"},
		{daycount.Thirty360US, "30/360 US"},
		{daycount.Thirty360EU, "30/360 European"},
	} {
		if got, want := tc.conv.String(), tc.label; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		c, err := daycount.ParseConvention(tc.label)
		if err != nil {
			t.Errorf("%v: %v", tc.label, err)
			continue
		}
		if got, want := c, tc.conv; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var uc daycount.Convention
		if err := uc.UnmarshalText([]byte(tc.label)); err != nil || uc != tc.conv {
			t.Errorf("%v: got %v, %v", tc.label, uc, err)
		}
	}
	if c, err := daycount.ParseConvention("30/360 us"); err != nil || c != daycount.Thirty360US {
		t.Errorf("got %v, %v", c, err)
	}
	if _, err := daycount.ParseConvention("Actual/364"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := len(daycount.Conventions()), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInvalidConvention(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	daycount.YearFraction(daycount.Convention(42), ncd(2023, 1, 1), ncd(2023, 1, 2))
}
