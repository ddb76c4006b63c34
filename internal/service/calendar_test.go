package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/service"
)

func slotBooking(slot string) *model.Booking {
	return &model.Booking{
		ID:          "b-1",
		TheatreName: "VIP Screen",
		TimeSlot:    slot,
		BookingDate: "2026-08-30",
		Guests:      6,
		TotalAmount: 1800,
		CreatedBy:   "u-1",
	}
}

func TestBuildCalendarEvent(t *testing.T) {
	ev, err := service.BuildCalendarEvent(slotBooking("2:00 PM - 4:00 PM"))
	require.NoError(t, err)

	assert.Equal(t, "b-1", ev.BookingID)
	assert.Equal(t, "VIP Screen Booking - 6 guests", ev.Title)
	assert.Equal(t, "VIP Screen", ev.Location)
	assert.Equal(t, "confirmed", ev.Status)
	assert.Equal(t, time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC), ev.StartTime)
	assert.Equal(t, time.Date(2026, 8, 30, 16, 0, 0, 0, time.UTC), ev.EndTime)
}

func TestBuildCalendarEventMorningSlot(t *testing.T) {
	ev, err := service.BuildCalendarEvent(slotBooking("10:00 AM - 12:00 PM"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), ev.StartTime)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), ev.EndTime)
}

func TestBuildCalendarEventInvertedRangeSpillsToNextDay(t *testing.T) {
	// A late slot whose label ends after midnight parses as an inverted
	// range; the end is pushed to the next day.
	ev, err := service.BuildCalendarEvent(slotBooking("11:00 PM - 1:00 AM"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC), ev.StartTime)
	assert.Equal(t, time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC), ev.EndTime)
}

func TestBuildCalendarEventFreeTextSlot(t *testing.T) {
	_, err := service.BuildCalendarEvent(slotBooking("Late Night Special"))
	assert.Error(t, err)
}

func TestBuildCalendarEventBadDate(t *testing.T) {
	b := slotBooking("2:00 PM - 4:00 PM")
	b.BookingDate = "30/08/2026"
	_, err := service.BuildCalendarEvent(b)
	assert.Error(t, err)
}
