package model

import (
	"strings"
	"time"
)

type EmotionType string

const (
	EmotionJoy        EmotionType = "Joy"
	EmotionSadness    EmotionType = "Sadness"
	EmotionAnger      EmotionType = "Anger"
	EmotionSurprise   EmotionType = "Surprise"
	EmotionCalm       EmotionType = "Calm"
	EmotionLove       EmotionType = "Love"
	EmotionFear       EmotionType = "Fear"
	EmotionExcitement EmotionType = "Excitement"
)

// EmotionTypes lists every type in enumeration order. Stats and tie-breaks rely on this order.
var EmotionTypes = []EmotionType{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionSurprise,
	EmotionCalm,
	EmotionLove,
	EmotionFear,
	EmotionExcitement,
}

// Style is the presentation pair copied onto a record when it is created.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var styles = map[EmotionType]Style{
	EmotionJoy:        {Color: "#FACC15", Icon: "😊"},
	EmotionSadness:    {Color: "#60A5FA", Icon: "😢"},
	EmotionAnger:      {Color: "#F87171", Icon: "😠"},
	EmotionSurprise:   {Color: "#C084FC", Icon: "😮"},
	EmotionCalm:       {Color: "#4ADE80", Icon: "😌"},
	EmotionLove:       {Color: "#F472B6", Icon: "❤️"},
	EmotionFear:       {Color: "#9CA3AF", Icon: "😨"},
	EmotionExcitement: {Color: "#FB923C", Icon: "🤩"},
}

// StyleFor returns the current style table entry for t.
func StyleFor(t EmotionType) (Style, bool) {
	st, ok := styles[t]
	return st, ok
}

func (t EmotionType) Valid() bool {
	_, ok := styles[t]
	return ok
}

// Emotion is one logged entry. Color and Icon are stored as they were at creation time.
type Emotion struct {
	ID        string      `json:"id"`
	Type      EmotionType `json:"type"`
	Comment   string      `json:"comment"`
	Timestamp int64       `json:"timestamp"` // unix millis
	Color     string      `json:"color"`
	Icon      string      `json:"icon"`
}

func (e Emotion) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

type View string

const (
	ViewBoard View = "board"
	ViewStats View = "stats"
)

type StatsFilter string

const (
	FilterToday StatsFilter = "today"
	FilterWeek  StatsFilter = "week"
	FilterMonth StatsFilter = "month"
)

var StatsFilters = []StatsFilter{FilterToday, FilterWeek, FilterMonth}

func (v View) Valid() bool {
	return v == ViewBoard || v == ViewStats
}

func (f StatsFilter) Valid() bool {
	switch f {
	case FilterToday, FilterWeek, FilterMonth:
		return true
	}
	return false
}

// Label is the user-facing name. Week and month are rolling 7/30 day windows despite the wording.
func (f StatsFilter) Label() string {
	switch f {
	case FilterToday:
		return "Today"
	case FilterWeek:
		return "This Week"
	case FilterMonth:
		return "This Month"
	}
	return strings.TrimSpace(string(f))
}
