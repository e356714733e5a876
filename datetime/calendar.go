// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a year, month and day do not form
// a valid calendar date.
var ErrInvalidDate = errors.New("invalid date")

const secondsPerDay = 24 * 60 * 60

// CalendarDate represents a date with a year, month and day packed into
// a uint32 as year<<16 | month<<8 | day. The packing means that integer
// comparison of two CalendarDates is calendar order.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the year, month and day.
// The values are not validated, use NewCalendarDateChecked or IsValid
// when the inputs are not known to form a valid date.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day)) //nolint:gosec // G115
}

// NewCalendarDateChecked is like NewCalendarDate but returns an error
// wrapping ErrInvalidDate if the date is not valid.
func NewCalendarDateChecked(year int, month Month, day int) (CalendarDate, error) {
	if err := validate(year, month, day); err != nil {
		return 0, err
	}
	return NewCalendarDate(year, month, day), nil
}

// NewCalendarDateFromTime returns the CalendarDate for the year, month
// and day of t in t's location.
func NewCalendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
}

func validate(year int, month Month, day int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%w: day %d out of range for %v %d", ErrInvalidDate, day, month, year)
	}
	return nil
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsValid returns true if cd represents a valid calendar date.
func (cd CalendarDate) IsValid() bool {
	return validate(cd.Year(), cd.Month(), cd.Day()) == nil
}

// Time returns midnight UTC on cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC)
}

// dayNumber returns the number of days since 1970-01-01. Midnight UTC
// is always an exact multiple of secondsPerDay so the division is exact.
func (cd CalendarDate) dayNumber() int64 {
	return cd.Time().Unix() / secondsPerDay
}

// DaysUntil returns the number of days from cd to other, it is negative
// when other is before cd.
func (cd CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.dayNumber() - cd.dayNumber())
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDateFromTime(cd.Time().AddDate(0, 0, n))
}

// Tomorrow returns the date of the next day. 12/31 wraps to 1/1 of
// the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	switch {
	case month == 12 && day == 31:
		return NewCalendarDate(year+1, 1, 1)
	case day >= DaysInMonth(year, month):
		return NewCalendarDate(year, month+1, 1)
	}
	return NewCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day. 1/1 wraps to 12/31 of
// the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	switch {
	case month == 1 && day == 1:
		return NewCalendarDate(year-1, 12, 31)
	case day <= 1:
		return NewCalendarDate(year, month-1, DaysInMonth(year, month-1))
	}
	return NewCalendarDate(year, month, day-1)
}

// Weekday returns the day of the week with Monday as 0 and Sunday as 6.
func (cd CalendarDate) Weekday() int {
	return (int(cd.Time().Weekday()) + 6) % 7
}

// IsWeekend returns true for Saturday and Sunday.
func (cd CalendarDate) IsWeekend() bool {
	return cd.Weekday() >= 5
}

// IsEndOfMonth returns true if cd is the last day of its month.
func (cd CalendarDate) IsEndOfMonth() bool {
	return cd.Day() == DaysInMonth(cd.Year(), cd.Month())
}

// EndOfMonth returns the last day of cd's month.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	return NewCalendarDate(cd.Year(), cd.Month(), DaysInMonth(cd.Year(), cd.Month()))
}

// String returns the date in ISO 8601 format, ie. 2006-01-02.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	return cd.Parse(string(text))
}

const expectedCalendarDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// ParseCalendarDate parses a date in formats '2006-01-02', '01/02/2006'
// or 'Jan-02-2006'. The date must be valid, in particular Feb 29 is only
// accepted for leap years.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	if err := cd.Parse(val); err != nil {
		return 0, err
	}
	return cd, nil
}

// Parse is like ParseCalendarDate.
func (cd *CalendarDate) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedCalendarDateFormats)
	}
	var (
		year, day int
		month     Month
		err       error
	)
	switch {
	case strings.Contains(val, "/"):
		year, month, day, err = parseParts(strings.Split(val, "/"), 2, 0, 1, ParseNumericMonth)
	case strings.Contains(val, "-") && val[0] >= '0' && val[0] <= '9':
		year, month, day, err = parseParts(strings.Split(val, "-"), 0, 1, 2, ParseNumericMonth)
	case strings.Contains(val, "-"):
		year, month, day, err = parseParts(strings.Split(val, "-"), 2, 0, 1, ParseMonth)
	default:
		err = fmt.Errorf("unrecognised format")
	}
	if err != nil {
		return fmt.Errorf("%w %q: %v, expected %s", ErrInvalidDate, val, err, expectedCalendarDateFormats)
	}
	nd, err := NewCalendarDateChecked(year, month, day)
	if err != nil {
		return fmt.Errorf("%q: %w", val, err)
	}
	*cd = nd
	return nil
}

func parseParts(parts []string, yi, mi, di int, monthParser func(string) (Month, error)) (year int, month Month, day int, err error) {
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(parts))
	}
	if year, err = strconv.Atoi(parts[yi]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year: %s", parts[yi])
	}
	if month, err = monthParser(parts[mi]); err != nil {
		return 0, 0, 0, err
	}
	if day, err = strconv.Atoi(parts[di]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day: %s", parts[di])
	}
	return year, month, day, nil
}

// CalendarDateList is a list of CalendarDates.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is in the list. It implements Holidays.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}

// Parse a comma separated list of CalendarDates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	l := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var cd CalendarDate
		if err := cd.Parse(part); err != nil {
			return err
		}
		l = append(l, cd)
	}
	*cdl = l
	return nil
}
