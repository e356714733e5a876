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
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/holidays"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/roll"
)

type adjustFlags struct {
	CommonFlags
	Convention  string `subcmd:"convention,all,'roll convention, eg. ModifiedFollowing, or all for every convention'"`
	Holidays    string `subcmd:"holidays,,'comma separated list of YAML holiday files'"`
	MaxWalkDays int    `subcmd:"max-walk-days,3700,maximum number of days to walk when looking for a business day"`
}

func runAdjust(ctx context.Context, values any, args []string) error {
	fv := values.(*adjustFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	hols, err := loadHolidays(ctx, fv.Holidays)
	if err != nil {
		return err
	}
	return adjust(ctx, os.Stdout, fv.Convention, args[0], hols, fv.MaxWalkDays)
}

func loadHolidays(ctx context.Context, files string) (holidays.Set, error) {
	if len(files) == 0 {
		return holidays.Set{}, nil
	}
	filenames := strings.Split(files, ",")
	return holidays.LoadFiles(ctx, strings.Join(filenames, "+"), filenames...)
}

func rollConventions(label string) ([]roll.Convention, error) {
	if strings.EqualFold(label, "all") {
		return roll.Conventions(), nil
	}
	c, err := roll.ParseConvention(label)
	if err != nil {
		return nil, err
	}
	return []roll.Convention{c}, nil
}

func adjust(ctx context.Context, out io.Writer, convention, date string, hols holidays.Set, maxWalkDays int) error {
	conventions, err := rollConventions(convention)
	if err != nil {
		return err
	}
	cd, err := datetime.ParseCalendarDate(date)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	logger.Info("adjusting", "date", cd.String(), "holidays", hols.Name(), "num_holidays", hols.Len())
	errs := &errors.M{}
	for _, c := range conventions {
		adjusted, err := roll.Adjust(c, cd, hols, roll.WithMaxWalkDays(maxWalkDays))
		if err != nil {
			errs.Append(err)
			continue
		}
		logger.Debug("adjusted", "convention", c.String(), "date", cd.String(), "adjusted", adjusted.String())
		fmt.Fprintf(out, "%-18s %v -> %v\n", c, cd, adjusted)
	}
	return errs.Err()
}
