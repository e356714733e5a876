// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConvention is returned when parsing a label that does not
// name a day count convention.
var ErrUnknownConvention = errors.New("unknown day count convention")

// Convention identifies a day count convention.
type Convention int

const (
	Actual360 Convention = iota
	Actual365
	ActualActual
	Thirty360
	Thirty360US
	Thirty360EU
	numConventions
)

// The labels are used in configuration files and must not change.
var labels = [numConventions]string{
	Actual360:    "Actual/360",
	Actual365:    "Actual/365",
	ActualActual: "Actual/Actual",
	Thirty360:    "30/360",
	Thirty360US:  "30/360 US",
	Thirty360EU:  "30/360 European",
}

// Conventions returns all of the supported conventions in declaration order.
func Conventions() []Convention {
	c := make([]Convention, numConventions)
	for i := range c {
		c[i] = Convention(i)
	}
	return c
}

func (c Convention) valid() bool {
	return c >= 0 && c < numConventions
}

// String returns the convention's label, eg. "30/360 US".
func (c Convention) String() string {
	if !c.valid() {
		return fmt.Sprintf("daycount.Convention(%d)", int(c))
	}
	return labels[c]
}

// ParseConvention returns the convention with the specified label.
// The comparison is case insensitive.
func ParseConvention(label string) (Convention, error) {
	label = strings.TrimSpace(label)
	for i, l := range labels {
		if strings.EqualFold(l, label) {
			return Convention(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, label)
}

// Set implements flag.Value.
func (c *Convention) Set(label string) error {
	nc, err := ParseConvention(label)
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownConvention, int(c))
	}
	return []byte(labels[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}
