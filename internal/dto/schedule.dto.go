package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

type BreakDTO struct {
	Start string `json:"start" binding:"required,hhmm"`
	End   string `json:"end" binding:"required,hhmm"`
}

type WorkingDayDTO struct {
	Weekday int        `json:"weekday" binding:"min=0,max=6"`
	Enabled bool       `json:"enabled"`
	Start   string     `json:"start" binding:"omitempty,hhmm"`
	End     string     `json:"end" binding:"omitempty,hhmm"`
	Breaks  []BreakDTO `json:"breaks" binding:"omitempty,dive"`
}

type ScheduleDTO struct {
	BarberID uint            `json:"barber_id"`
	Days     []WorkingDayDTO `json:"days" binding:"dive"`
}

func ScheduleFromDomain(cfg schedule.Config) ScheduleDTO {
	out := ScheduleDTO{BarberID: cfg.BarberID, Days: make([]WorkingDayDTO, 0, len(cfg.Days))}

	for _, d := range cfg.Days {
		day := WorkingDayDTO{
			Weekday: int(d.Weekday),
			Enabled: d.Enabled,
			Start:   d.Start.String(),
			End:     d.End.String(),
			Breaks:  make([]BreakDTO, 0, len(d.Breaks)),
		}
		for _, b := range d.Breaks {
			day.Breaks = append(day.Breaks, BreakDTO{Start: b.Start.String(), End: b.End.String()})
		}
		out.Days = append(out.Days, day)
	}
	return out
}

// ToDomain converts the request body. Enabled days need both hours;
// disabled days may leave them empty.
func (s ScheduleDTO) ToDomain() (schedule.Config, error) {
	cfg := schedule.Config{Days: make([]schedule.WorkingDay, 0, len(s.Days))}
	var problems []string

	for _, d := range s.Days {
		wd := time.Weekday(d.Weekday)
		day := schedule.WorkingDay{Weekday: wd, Enabled: d.Enabled}

		var err error
		if day.Start, err = optionalHM(d.Start, d.Enabled); err != nil {
			problems = append(problems, fmt.Sprintf("%s: start %v", wd, err))
		}
		if day.End, err = optionalHM(d.End, d.Enabled); err != nil {
			problems = append(problems, fmt.Sprintf("%s: end %v", wd, err))
		}

		for _, b := range d.Breaks {
			start, err1 := schedule.ParseTimeOfDay(b.Start)
			end, err2 := schedule.ParseTimeOfDay(b.End)
			if err1 != nil || err2 != nil {
				problems = append(problems, fmt.Sprintf("%s: break %q-%q is not HH:MM", wd, b.Start, b.End))
				continue
			}
			day.Breaks = append(day.Breaks, schedule.Break{Start: start, End: end})
		}

		cfg.Days = append(cfg.Days, day)
	}

	if len(problems) > 0 {
		return schedule.Config{}, &schedule.ConfigurationError{Problems: problems}
	}
	return cfg, nil
}

func optionalHM(hm string, required bool) (schedule.TimeOfDay, error) {
	if hm == "" {
		if required {
			return 0, errors.New("is required")
		}
		return 0, nil
	}
	return schedule.ParseTimeOfDay(hm)
}
