package board

import (
	"math"
	"slices"
	"time"

	"emoboard/internal/model"
)

const day = 24 * time.Hour

// Threshold is the earliest instant a record may carry to be counted under f.
// Week and month are rolling windows ending at now, not calendar periods.
func Threshold(f model.StatsFilter, now time.Time) (time.Time, bool) {
	switch f {
	case model.FilterToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case model.FilterWeek:
		return now.Add(-7 * day), true
	case model.FilterMonth:
		return now.Add(-30 * day), true
	}
	return time.Time{}, false
}

// FilterSince keeps records stamped at or after since, preserving order.
func FilterSince(list []model.Emotion, since time.Time) []model.Emotion {
	cut := since.UnixMilli()
	out := make([]model.Emotion, 0, len(list))
	for _, e := range list {
		if e.Timestamp >= cut {
			out = append(out, e)
		}
	}
	return out
}

// Counts has an entry for every emotion type, zeros included.
type Counts map[model.EmotionType]int

func CountByType(list []model.Emotion) Counts {
	c := make(Counts, len(model.EmotionTypes))
	for _, t := range model.EmotionTypes {
		c[t] = 0
	}
	for _, e := range list {
		if _, ok := c[e.Type]; ok {
			c[e.Type]++
		}
	}
	return c
}

func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// FilteredEmotionsForStats applies the current stats filter against the board clock.
func (b *Board) FilteredEmotionsForStats() []model.Emotion {
	since, ok := Threshold(b.statsFilter, b.now())
	if !ok {
		return b.Emotions()
	}
	return FilterSince(b.emotions, since)
}

func (b *Board) EmotionStats() Counts {
	return CountByType(b.FilteredEmotionsForStats())
}

// Percent is count/total as a whole percentage, rounding halves up after the float division
// (so 29/200 is 14: 0.145*100 lands just below 14.5). It is 0 when total is 0.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(count)/float64(total)*100 + 0.5))
}

// Share is one row of the stats breakdown.
type Share struct {
	Type    model.EmotionType `json:"type"`
	Count   int               `json:"count"`
	Percent int               `json:"percent"`
	Color   string            `json:"color"`
	Icon    string            `json:"icon"`
}

// Breakdown lists the non-zero types by descending count. Equal counts keep enumeration order.
func Breakdown(c Counts) []Share {
	total := c.Total()
	out := make([]Share, 0, len(model.EmotionTypes))
	for _, t := range model.EmotionTypes {
		n := c[t]
		if n == 0 {
			continue
		}
		st, _ := model.StyleFor(t)
		out = append(out, Share{Type: t, Count: n, Percent: Percent(n, total), Color: st.Color, Icon: st.Icon})
	}
	slices.SortStableFunc(out, func(a, b Share) int { return b.Count - a.Count })
	return out
}

// Top is the most frequent type, if any record was counted.
func Top(c Counts) (Share, bool) {
	bd := Breakdown(c)
	if len(bd) == 0 {
		return Share{}, false
	}
	return bd[0], true
}
