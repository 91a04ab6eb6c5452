package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

func TestScheduleHandler_GetAndUpdate(t *testing.T) {
	s := newTestServer(t)
	tok := barberToken(t)

	w := s.do(t, http.MethodGet, "/api/me/schedule", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	current := decode[dto.ScheduleDTO](t, w)
	require.Len(t, current.Days, 1)
	assert.Equal(t, 3, current.Days[0].Weekday)
	assert.Equal(t, "12:00", current.Days[0].Breaks[0].Start)

	update := dto.ScheduleDTO{Days: []dto.WorkingDayDTO{
		{Weekday: 1, Enabled: true, Start: "10:00", End: "19:00", Breaks: []dto.BreakDTO{{Start: "14:00", End: "15:00"}}},
		{Weekday: 0, Enabled: false},
	}}

	w = s.do(t, http.MethodPut, "/api/me/schedule", tok, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[dto.ScheduleDTO](t, w)
	assert.Equal(t, barberID, saved.BarberID)
	assert.Len(t, saved.Days, 2)

	// Wednesday is no longer a working day
	w = s.do(t, http.MethodGet, "/api/public/barbers/1/availability?date="+bookingDay, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestScheduleHandler_Invalid(t *testing.T) {
	s := newTestServer(t)
	tok := barberToken(t)

	tests := []struct {
		name string
		body dto.ScheduleDTO
	}{
		{"break outside hours", dto.ScheduleDTO{Days: []dto.WorkingDayDTO{
			{Weekday: 1, Enabled: true, Start: "09:00", End: "12:00", Breaks: []dto.BreakDTO{{Start: "12:00", End: "13:00"}}},
		}}},
		{"start after end", dto.ScheduleDTO{Days: []dto.WorkingDayDTO{
			{Weekday: 1, Enabled: true, Start: "18:00", End: "09:00"},
		}}},
		{"missing hours", dto.ScheduleDTO{Days: []dto.WorkingDayDTO{
			{Weekday: 2, Enabled: true},
		}}},
		{"duplicate weekday", dto.ScheduleDTO{Days: []dto.WorkingDayDTO{
			{Weekday: 2, Enabled: true, Start: "09:00", End: "12:00"},
			{Weekday: 2, Enabled: false},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPut, "/api/me/schedule", tok, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			body := decode[map[string]any](t, w)
			assert.Equal(t, "invalid_schedule", body["error_code"])
			assert.NotEmpty(t, body["problems"])
		})
	}

	w := s.do(t, http.MethodPut, "/api/me/schedule", tok, dto.ScheduleDTO{Days: []dto.WorkingDayDTO{
		{Weekday: 9, Enabled: true, Start: "09:00", End: "12:00"},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
