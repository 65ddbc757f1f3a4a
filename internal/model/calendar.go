package model

import "time"

const (
	windowDaysBack    = 14
	windowDaysForward = 2
)

// WindowSize is the number of entries Window always produces.
const WindowSize = windowDaysBack + 1 + windowDaysForward

// Day describes one entry of the calendar strip. Derived from the wall
// clock on every render and never persisted.
type Day struct {
	Date      string
	DayName   string
	DayNumber int
	IsToday   bool
}

// Window returns the 17-day strip around today: 14 days back, today,
// 2 days forward, chronologically ascending. Day boundaries follow the
// local timezone of the given instant. Exactly one entry has IsToday
// set and its Date equals today's.
func Window(today time.Time) []Day {
	days := make([]Day, 0, WindowSize)
	for offset := -windowDaysBack; offset <= windowDaysForward; offset++ {
		d := today.AddDate(0, 0, offset)
		days = append(days, Day{
			Date:      DateOf(d),
			DayName:   d.Format("Mon"),
			DayNumber: d.Day(),
			IsToday:   offset == 0,
		})
	}
	return days
}
