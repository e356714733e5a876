// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/daycount"
)

type yearFractionFlags struct {
	CommonFlags
	Convention string `subcmd:"convention,all,'day count convention, eg. Actual/360 or 30/360 US, or all for every convention'"`
}

func runYearFraction(ctx context.Context, values any, args []string) error {
	fv := values.(*yearFractionFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return yearFractions(ctx, os.Stdout, fv.Convention, args[0], args[1])
}

func dayCountConventions(label string) ([]daycount.Convention, error) {
	if strings.EqualFold(label, "all") {
		return daycount.Conventions(), nil
	}
	c, err := daycount.ParseConvention(label)
	if err != nil {
		return nil, err
	}
	return []daycount.Convention{c}, nil
}

func parseDates(dates ...string) ([]datetime.CalendarDate, error) {
	errs := &errors.M{}
	parsed := make([]datetime.CalendarDate, len(dates))
	for i, d := range dates {
		cd, err := datetime.ParseCalendarDate(d)
		errs.Append(err)
		parsed[i] = cd
	}
	return parsed, errs.Err()
}

func yearFractions(ctx context.Context, out io.Writer, convention, start, end string) error {
	conventions, err := dayCountConventions(convention)
	if err != nil {
		return err
	}
	dates, err := parseDates(start, end)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	for _, c := range conventions {
		yf := c.YearFraction(dates[0], dates[1])
		logger.Debug("year fraction", "convention", c.String(), "start", dates[0].String(), "end", dates[1].String(), "fraction", yf)
		fmt.Fprintf(out, "%-16s %v %v %.6f\n", c, dates[0], dates[1], yf)
	}
	return nil
}
