// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"

	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
)

func TestIsBusinessDay(t *testing.T) {
	ncd := datetime.NewCalendarDate
	holidays := datetime.CalendarDateList{ncd(2024, 12, 25), ncd(2024, 12, 28)}
	for _, tc := range []struct {
		cd       datetime.CalendarDate
		holidays datetime.Holidays
		business bool
	}{
		{ncd(2024, 12, 24), holidays, true},
		{ncd(2024, 12, 25), holidays, false},
		{ncd(2024, 12, 25), nil, true},
		{ncd(2024, 12, 25), datetime.CalendarDateList{}, true},
		{ncd(2024, 12, 28), holidays, false},
		{ncd(2024, 12, 29), nil, false},
		{ncd(2024, 12, 30), holidays, true},
	} {
		if got, want := datetime.IsBusinessDay(tc.cd, tc.holidays), tc.business; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
}
