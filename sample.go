package clockface

import (
	"strings"
	"time"
)

// Sample is the wall-clock time delivered with a tick.
type Sample struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// SampleFromTime extracts the hour and minute of t in its location.
func SampleFromTime(t time.Time) Sample {
	return Sample{Hour: t.Hour(), Minute: t.Minute()}
}

// Hour12 returns the hour reduced to 0..11, where 0 is 12 o'clock.
func (s Sample) Hour12() int {
	return s.Hour % 12
}

// TimeUnits is a bitmask of the calendar fields that changed between two
// ticks.
type TimeUnits uint8

const (
	SecondUnit TimeUnits = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit
)

// Has reports whether every unit in v is set in u.
func (u TimeUnits) Has(v TimeUnits) bool {
	return u&v == v
}

var unitNames = [...]string{"second", "minute", "hour", "day", "month", "year"}

// String returns the set units joined by "|", or "none".
func (u TimeUnits) String() string {
	if u == 0 {
		return "none"
	}
	var b strings.Builder
	for i, name := range unitNames {
		if u&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	return b.String()
}

// ChangedUnits returns the units whose value differs between prev and next.
func ChangedUnits(prev, next time.Time) TimeUnits {
	var u TimeUnits
	if prev.Second() != next.Second() {
		u |= SecondUnit
	}
	if prev.Minute() != next.Minute() {
		u |= MinuteUnit
	}
	if prev.Hour() != next.Hour() {
		u |= HourUnit
	}
	if prev.Day() != next.Day() {
		u |= DayUnit
	}
	if prev.Month() != next.Month() {
		u |= MonthUnit
	}
	if prev.Year() != next.Year() {
		u |= YearUnit
	}
	return u
}
