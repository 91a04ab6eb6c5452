package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// --------------------------------------------------
// Booking
// --------------------------------------------------

func bookingToDomain(row models.Booking) (booking.Booking, error) {
	status, ok := booking.ParseStatus(row.Status)
	if !ok {
		return booking.Booking{}, fmt.Errorf("booking %s: unknown status %q", row.ID, row.Status)
	}

	b := booking.Booking{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		BarberID:   row.BarberID,
		ServiceID:  row.ServiceID,
		Date:       row.Date,
		Time:       row.Time,
		Status:     status,
		Price:      row.Price,
		CreatedAt:  row.CreatedAt,
	}
	if err := b.Validate(); err != nil {
		return booking.Booking{}, err
	}
	return b, nil
}

func bookingsToDomain(rows []models.Booking) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := bookingToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func bookingFromDomain(b booking.Booking) (models.Booking, error) {
	if err := b.Validate(); err != nil {
		return models.Booking{}, err
	}
	return models.Booking{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		BarberID:   b.BarberID,
		ServiceID:  b.ServiceID,
		Date:       b.Date,
		Time:       b.Time,
		Status:     string(b.Status),
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
	}, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func scheduleToDomain(barberID uint, rows []models.WorkingDay) (*schedule.Config, error) {
	cfg := &schedule.Config{BarberID: barberID, Days: make([]schedule.WorkingDay, 0, len(rows))}

	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			return nil, fmt.Errorf("working day %d: weekday %d out of range", row.ID, row.Weekday)
		}

		day := schedule.WorkingDay{
			Weekday: time.Weekday(row.Weekday),
			Enabled: row.Enabled,
		}

		var err error
		if day.Start, err = parseOptionalHM(row.StartTime); err != nil {
			return nil, fmt.Errorf("working day %d: %w", row.ID, err)
		}
		if day.End, err = parseOptionalHM(row.EndTime); err != nil {
			return nil, fmt.Errorf("working day %d: %w", row.ID, err)
		}

		for _, br := range row.Breaks {
			start, err := schedule.ParseTimeOfDay(br.StartTime)
			if err != nil {
				return nil, fmt.Errorf("break %d: %w", br.ID, err)
			}
			end, err := schedule.ParseTimeOfDay(br.EndTime)
			if err != nil {
				return nil, fmt.Errorf("break %d: %w", br.ID, err)
			}
			day.Breaks = append(day.Breaks, schedule.Break{Start: start, End: end})
		}
		sort.Slice(day.Breaks, func(i, j int) bool { return day.Breaks[i].Start < day.Breaks[j].Start })

		cfg.Days = append(cfg.Days, day)
	}

	sort.Slice(cfg.Days, func(i, j int) bool { return mondayFirst(cfg.Days[i].Weekday) < mondayFirst(cfg.Days[j].Weekday) })
	return cfg, nil
}

func scheduleFromDomain(barberID uint, cfg schedule.Config) []models.WorkingDay {
	rows := make([]models.WorkingDay, 0, len(cfg.Days))
	for _, d := range cfg.Days {
		row := models.WorkingDay{
			BarberID:  barberID,
			Weekday:   int(d.Weekday),
			Enabled:   d.Enabled,
			StartTime: d.Start.String(),
			EndTime:   d.End.String(),
		}
		for _, b := range d.Breaks {
			row.Breaks = append(row.Breaks, models.WorkingBreak{
				StartTime: b.Start.String(),
				EndTime:   b.End.String(),
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// disabled days may be stored without hours
func parseOptionalHM(hm string) (schedule.TimeOfDay, error) {
	if hm == "" {
		return 0, nil
	}
	return schedule.ParseTimeOfDay(hm)
}

func mondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func profileToDomain(u models.User) (*barber.Profile, error) {
	if u.Role != models.RoleBarber || u.BarbershopID == nil {
		return nil, barber.ErrBarberNotFound
	}

	tz := ""
	if u.Barbershop != nil {
		tz = u.Barbershop.Timezone
	}
	if !timezone.IsValid(tz) {
		tz = timezone.Default()
	}

	return &barber.Profile{
		ID:           u.ID,
		Name:         u.Name,
		BarbershopID: *u.BarbershopID,
		Timezone:     tz,
		Location:     timezone.Location(tz),
		SlotInterval: u.SlotIntervalMin,
	}, nil
}

func serviceToDomain(s models.Service) *barber.Service {
	return &barber.Service{
		ID:           s.ID,
		BarbershopID: s.BarbershopID,
		Name:         s.Name,
		DurationMin:  s.DurationMin,
		Price:        s.Price,
		Active:       s.Active,
	}
}
