package domain

import "time"

// WeekdayNames fixed day names used by recurring schedules, Sunday = index 0
var WeekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WeekdayName maps a calendar date to its fixed day name
func WeekdayName(date time.Time) string {
	return WeekdayNames[int(date.Weekday())]
}

// NormalizeDate strips the time-of-day and location from a date
// Weekday resolution works on the calendar date only, so a timestamp near a
// UTC/local boundary cannot shift the resolved day.
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate returns true if both values fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
