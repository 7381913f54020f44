package models

import (
	"regexp"
	"strings"
	"time"
)

type Reminder struct {
	ID        int64     `json:"id"`
	ChatID    string    `json:"chat_id"`     // Owning chat, authorization scope for mutations
	Message   string    `json:"message"`     // Text delivered when the reminder fires
	DayOfWeek string    `json:"day_of_week"` // English weekday name, e.g. "Sunday"
	TimeOfDay string    `json:"time"`        // 24-hour wall clock, "HH:MM"
	Recurring bool      `json:"recurring"`   // Always true today, kept for one-shot support
	CreatedAt time.Time `json:"created_at"`
}

// Weekdays is the canonical day ordering used everywhere a day set is
// collected or displayed.
var Weekdays = [7]time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// ScanDays collects every weekday whose name occurs in text as a
// case-insensitive substring, in canonical order. Substring matching is
// intentional: "wednesdays" still counts as Wednesday.
func ScanDays(text string) []time.Weekday {
	lowered := strings.ToLower(text)
	var days []time.Weekday
	for _, day := range Weekdays {
		if strings.Contains(lowered, strings.ToLower(day.String())) {
			days = append(days, day)
		}
	}
	return days
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a zero-padded 24-hour "HH:MM" string.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}
