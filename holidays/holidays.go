// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holidays provides an immutable set of holiday dates that can
// be used with the roll conventions. The dates are supplied explicitly,
// either in code or via a YAML configuration, rather than being generated
// from holiday rules.
package holidays

import (
	"strings"

	"cloudeng.io/algo/container/heap"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
)

// Set is an immutable, named, set of holidays. It implements
// datetime.Holidays and is safe for concurrent use. The zero value
// is an empty set.
type Set struct {
	name  string
	dates map[datetime.CalendarDate]struct{}
}

// New returns a Set containing the specified dates, duplicates are ignored.
func New(name string, dates ...datetime.CalendarDate) Set {
	s := Set{name: name, dates: make(map[datetime.CalendarDate]struct{}, len(dates))}
	for _, d := range dates {
		s.dates[d] = struct{}{}
	}
	return s
}

// Merge returns a new Set with the specified name that contains all of the
// dates in the supplied sets.
func Merge(name string, sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s.dates)
	}
	merged := Set{name: name, dates: make(map[datetime.CalendarDate]struct{}, n)}
	for _, s := range sets {
		for d := range s.dates {
			merged.dates[d] = struct{}{}
		}
	}
	return merged
}

// Name returns the name of the set.
func (s Set) Name() string {
	return s.name
}

// Contains implements datetime.Holidays.
func (s Set) Contains(cd datetime.CalendarDate) bool {
	_, ok := s.dates[cd]
	return ok
}

// Len returns the number of dates in the set.
func (s Set) Len() int {
	return len(s.dates)
}

// Dates returns the dates in the set in ascending order.
func (s Set) Dates() datetime.CalendarDateList {
	h := heap.NewMin(heap.WithSliceCap[uint32, datetime.CalendarDate](len(s.dates)))
	for d := range s.dates {
		h.Push(uint32(d), d)
	}
	dates := make(datetime.CalendarDateList, 0, len(s.dates))
	for h.Len() > 0 {
		_, d := h.Pop()
		dates = append(dates, d)
	}
	return dates
}

// Between returns the dates in the set that fall within from and to
// inclusive, in ascending order.
func (s Set) Between(from, to datetime.CalendarDate) datetime.CalendarDateList {
	var dates datetime.CalendarDateList
	for _, d := range s.Dates() {
		if d >= from && d <= to {
			dates = append(dates, d)
		}
	}
	return dates
}

func (s Set) String() string {
	var out strings.Builder
	out.WriteString(s.name)
	out.WriteString(": ")
	out.WriteString(s.Dates().String())
	return out.String()
}
