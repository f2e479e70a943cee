// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calver

import (
	"fmt"
	"time"
)

// Date is the year and month a release is computed for.
type Date struct {
	Year  int
	Month time.Month
}

// DateOf returns the UTC year and month of t.
func DateOf(t time.Time) Date {
	utc := t.UTC()
	return Date{
		Year:  utc.Year(),
		Month: utc.Month(),
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%d.%d", d.Year, int(d.Month))
}

// FirstVersion returns the first version of the month, patch 0.
func (d Date) FirstVersion() Version {
	return Version{
		Year:  d.Year,
		Month: int(d.Month),
		Patch: 0,
	}
}
