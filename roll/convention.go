// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package roll

import (
	"fmt"
	"strings"
)

// Convention identifies a business day (roll) convention.
type Convention int

const (
	Following Convention = iota
	ModifiedFollowing
	Preceding
	ModifiedPreceding
	numConventions
)

// The labels are used in configuration files and must not change.
var labels = [numConventions]string{
	Following:         "Following",
	ModifiedFollowing: "ModifiedFollowing",
	Preceding:         "Preceding",
	ModifiedPreceding: "ModifiedPreceding",
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

func (c Convention) String() string {
	if !c.valid() {
		return fmt.Sprintf("roll.Convention(%d)", int(c))
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
