package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ===============================
// Time of day
// ===============================

// TimeOfDay is a minute offset from local midnight.
type TimeOfDay int

const TimeLayout = "15:04"

// EndOfDay is "24:00". It is only meaningful as the end of a working day
// or break.
const EndOfDay TimeOfDay = 24 * 60

// ParseTimeOfDay reads zero padded HH:MM, plus "24:00" for a day that
// closes at midnight.
func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	if hm == "24:00" {
		return EndOfDay, nil
	}
	t, err := time.Parse(TimeLayout, hm)
	if err != nil || len(hm) != len(TimeLayout) {
		return 0, fmt.Errorf("invalid time of day %q", hm)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func MustTimeOfDay(hm string) TimeOfDay {
	t, err := ParseTimeOfDay(hm)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// On places t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/60, int(t)%60, 0, 0,
		date.Location(),
	)
}

// ===============================
// Weekly template
// ===============================

type Break struct {
	Start TimeOfDay
	End   TimeOfDay
}

// contains reports whether t falls in [Start, End).
func (b Break) contains(t TimeOfDay) bool {
	return t >= b.Start && t < b.End
}

type WorkingDay struct {
	Weekday time.Weekday
	Enabled bool
	Start   TimeOfDay
	End     TimeOfDay
	Breaks  []Break
}

type Config struct {
	BarberID uint
	Days     []WorkingDay
}

// Day returns the entry for weekday. ok is false when none is configured.
func (c Config) Day(weekday time.Weekday) (WorkingDay, bool) {
	for _, d := range c.Days {
		if d.Weekday == weekday {
			return d, true
		}
	}
	return WorkingDay{}, false
}

// ===============================
// Validation
// ===============================

type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return "invalid schedule: " + strings.Join(e.Problems, "; ")
}

// Validate checks a single day. Disabled days are always valid.
func (d WorkingDay) Validate() error {
	if !d.Enabled {
		return nil
	}

	var problems []string
	label := d.Weekday.String()

	if d.Start < 0 || d.End > EndOfDay {
		problems = append(problems, fmt.Sprintf("%s: hours out of range", label))
	}
	if d.Start >= d.End {
		problems = append(problems, fmt.Sprintf("%s: start %s must be before end %s", label, d.Start, d.End))
	}

	breaks := make([]Break, len(d.Breaks))
	copy(breaks, d.Breaks)
	sort.Slice(breaks, func(i, j int) bool { return breaks[i].Start < breaks[j].Start })

	for i, b := range breaks {
		if b.Start >= b.End {
			problems = append(problems, fmt.Sprintf("%s: break %s-%s is empty", label, b.Start, b.End))
			continue
		}
		if b.Start < d.Start || b.End > d.End {
			problems = append(problems, fmt.Sprintf("%s: break %s-%s outside working hours", label, b.Start, b.End))
		}
		if i > 0 && b.Start < breaks[i-1].End {
			problems = append(problems, fmt.Sprintf("%s: break %s-%s overlaps %s-%s", label, b.Start, b.End, breaks[i-1].Start, breaks[i-1].End))
		}
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

// Validate returns a *ConfigurationError listing every problem found.
func (c Config) Validate() error {
	var problems []string
	seen := make(map[time.Weekday]bool, 7)

	for _, d := range c.Days {
		if d.Weekday < time.Sunday || d.Weekday > time.Saturday {
			problems = append(problems, fmt.Sprintf("unknown weekday %d", d.Weekday))
			continue
		}
		if seen[d.Weekday] {
			problems = append(problems, fmt.Sprintf("%s configured twice", d.Weekday))
		}
		seen[d.Weekday] = true

		if err := d.Validate(); err != nil {
			problems = append(problems, err.(*ConfigurationError).Problems...)
		}
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}
