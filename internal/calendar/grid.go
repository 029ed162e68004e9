// Package calendar builds the month grid shown on the reservations page.
package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot of a Monday-first 7-column month grid. Leading blanks pad
// the first row so day 1 lands in its weekday column; the last row is left
// irregular; layout is the renderer's job.
type Cell struct {
	Day            int
	Blank          bool
	IsToday        bool
	HasAppointment bool
}

var headers = [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

func WeekdayHeaders() [7]string {
	return headers
}

// MonthGrid lays out one month. appointmentDates holds zero-padded YYYY-MM-DD
// strings; a day is flagged when its date is in the set.
func MonthGrid(year int, month time.Month, appointmentDates map[string]struct{}, today time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday has Sunday=0; remap so Monday=0 and Sunday=6.
	leading := (int(first.Weekday()) + 6) % 7
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]Cell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		_, hasAppointment := appointmentDates[key]
		cells = append(cells, Cell{
			Day:            day,
			IsToday:        today.Year() == year && today.Month() == month && today.Day() == day,
			HasAppointment: hasAppointment,
		})
	}
	return cells
}
