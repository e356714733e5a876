// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/mwanzaj35/Interest-Rate-Curve-and-Volatility-Surface-Construction/datetime"
)

// Config represents the YAML configuration of a holiday set, for example:
//
//	name: us-settlement
//	dates:
//	  - 2024-01-01
//	  - 2024-07-04
//
// Dates may be in any of the formats accepted by datetime.ParseCalendarDate.
type Config struct {
	Name  string   `yaml:"name" cmd:"name of the holiday set"`
	Dates []string `yaml:"dates" cmd:"holiday dates, eg. 2024-07-04"`
}

// Set returns the Set described by the configuration. All invalid dates
// are reported.
func (c Config) Set() (Set, error) {
	errs := &errors.M{}
	dates := make([]datetime.CalendarDate, 0, len(c.Dates))
	for _, d := range c.Dates {
		cd, err := datetime.ParseCalendarDate(d)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, cd)
	}
	if err := errs.Err(); err != nil {
		return Set{}, fmt.Errorf("holiday set %q: %w", c.Name, err)
	}
	return New(c.Name, dates...), nil
}

// ParseConfig parses a YAML holiday configuration, unknown fields are
// reported as errors.
func ParseConfig(data []byte) (Set, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(data, &cfg); err != nil {
		return Set{}, err
	}
	return cfg.Set()
}

// LoadFile reads and parses the YAML holiday configuration in filename.
// The file is read using cloudeng.io/file.FSReadFile and hence may be
// read from an fs.ReadFileFS stored in the context.
func LoadFile(ctx context.Context, filename string) (Set, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Set{}, err
	}
	s, err := cfg.Set()
	if err != nil {
		return Set{}, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded holiday set", "file", filename, "name", s.Name(), "dates", s.Len())
	return s, nil
}

// LoadFiles loads each of the specified files and merges them into a
// single Set with the specified name.
func LoadFiles(ctx context.Context, name string, filenames ...string) (Set, error) {
	errs := &errors.M{}
	sets := make([]Set, 0, len(filenames))
	for _, f := range filenames {
		s, err := LoadFile(ctx, f)
		if err != nil {
			errs.Append(err)
			continue
		}
		sets = append(sets, s)
	}
	if err := errs.Err(); err != nil {
		return Set{}, err
	}
	return Merge(name, sets...), nil
}
