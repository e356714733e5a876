// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command conventions computes day count year fractions and applies
// business day (roll) conventions to dates.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/daycount"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/roll"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

type listFlags struct {
	CommonFlags
}

func init() {
	yfFlagSet := subcmd.MustRegisterFlagStruct(&yearFractionFlags{}, nil, nil)
	yfCmd := subcmd.NewCommand("year-fraction", yfFlagSet, runYearFraction, subcmd.ExactlyNumArguments(2))
	yfCmd.Document(`compute the year fraction between two dates using the specified day count convention, or all conventions.`, "<start-date> <end-date>")

	adjustFlagSet := subcmd.MustRegisterFlagStruct(&adjustFlags{}, nil, nil)
	adjustCmd := subcmd.NewCommand("adjust", adjustFlagSet, runAdjust, subcmd.ExactlyNumArguments(1))
	adjustCmd.Document(`adjust a date to a business day using the specified roll convention, or all conventions.`, "<date>")

	listFlagSet := subcmd.MustRegisterFlagStruct(&listFlags{}, nil, nil)
	listCmd := subcmd.NewCommand("list", listFlagSet, runList, subcmd.WithoutArguments())
	listCmd.Document(`list the supported day count and roll conventions.`)

	cmdSet = subcmd.NewCommandSet(yfCmd, adjustCmd, listCmd)
	cmdSet.Document(`day count and business day conventions.

Dates may be specified as 2006-01-02, 01/02/2006 or Jan-02-2006.
Holidays are read from YAML files of the form:

  name: us-settlement
  dates:
    - 2024-05-27
    - 2024-07-04
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func runList(ctx context.Context, values any, _ []string) error {
	fv := values.(*listFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return list(ctx, os.Stdout)
}

func list(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "day count conventions:")
	for _, c := range daycount.Conventions() {
		fmt.Fprintf(out, "  %s\n", c)
	}
	fmt.Fprintln(out, "roll conventions:")
	for _, c := range roll.Conventions() {
		fmt.Fprintf(out, "  %s\n", c)
	}
	return nil
}
