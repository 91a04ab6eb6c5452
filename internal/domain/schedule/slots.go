package schedule

import "time"

// GenerateSlots returns the ordered slot start times for date.
//
// The weekday comes from date's own calendar day, so callers must pass a
// date already expressed in the barber's location. Candidates step by
// intervalMinutes from the day start; a candidate inside a break
// [start, end) is dropped and the walk resumes at the break end. A closed,
// missing or malformed day yields no slots, as does a non-positive interval.
func GenerateSlots(cfg Config, date time.Time, intervalMinutes int) []TimeOfDay {
	slots := []TimeOfDay{}

	if intervalMinutes <= 0 {
		return slots
	}

	day, ok := cfg.Day(date.Weekday())
	if !ok || !day.Enabled || day.Start >= day.End {
		return slots
	}
	if err := day.Validate(); err != nil {
		return slots
	}

	for cur := day.Start; cur.Add(intervalMinutes) <= day.End; {
		if b, ok := breakAt(day.Breaks, cur); ok {
			cur = b.End
			continue
		}
		slots = append(slots, cur)
		cur = cur.Add(intervalMinutes)
	}

	return slots
}

// IsSlot reports whether t is one of the generated slots for date.
func IsSlot(cfg Config, date time.Time, intervalMinutes int, t TimeOfDay) bool {
	for _, s := range GenerateSlots(cfg, date, intervalMinutes) {
		if s == t {
			return true
		}
	}
	return false
}

func breakAt(breaks []Break, t TimeOfDay) (Break, bool) {
	for _, b := range breaks {
		if b.contains(t) {
			return b, true
		}
	}
	return Break{}, false
}
