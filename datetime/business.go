// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

// Holidays represents a set of non-business dates. Implementations
// must be safe for concurrent use if they are shared between goroutines,
// which is trivially the case for immutable sets.
type Holidays interface {
	Contains(CalendarDate) bool
}

// IsBusinessDay returns true if cd is a weekday (Monday to Friday)
// that is not one of the specified holidays. A nil Holidays is treated
// as an empty set.
func IsBusinessDay(cd CalendarDate, holidays Holidays) bool {
	if cd.IsWeekend() {
		return false
	}
	return holidays == nil || !holidays.Contains(cd)
}
