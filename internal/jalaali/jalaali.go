// Package jalaali formats timestamps in the Persian (Jalaali) calendar,
// matching the display format the business API exposes for adjusted_at and
// paid_at fields.
package jalaali

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Format renders t as "yyyy/MM/dd HH:mm:ss" with the date part in the
// Jalaali calendar and the time part in 24-hour local time.
func Format(t time.Time) string {
	pt := ptime.New(t)
	return fmt.Sprintf("%04d/%02d/%02d %02d:%02d:%02d",
		pt.Year(), int(pt.Month()), pt.Day(),
		t.Hour(), t.Minute(), t.Second())
}

// Now returns the current time in the Jalaali display format.
func Now() string {
	return Format(time.Now())
}
