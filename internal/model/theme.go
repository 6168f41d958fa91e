package model

import "time"

type Theme string

const (
	ThemeMorning   Theme = "morning"
	ThemeAfternoon Theme = "afternoon"
	ThemeEvening   Theme = "evening"
)

// ThemeAt buckets the local hour of t.
func ThemeAt(t time.Time) Theme {
	h := t.Hour()
	if h < 12 {
		return ThemeMorning
	}
	if h < 18 {
		return ThemeAfternoon
	}
	return ThemeEvening
}

func GreetingAt(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 6:
		return "Good night"
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
