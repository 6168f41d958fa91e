package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStyleTableCoversEveryType(t *testing.T) {
	t.Parallel()

	if got, want := len(EmotionTypes), 8; got != want {
		t.Fatalf("expected %d emotion types, got %d", want, got)
	}
	for _, typ := range EmotionTypes {
		st, ok := StyleFor(typ)
		if !ok {
			t.Fatalf("missing style for %s", typ)
		}
		if st.Color == "" || st.Icon == "" {
			t.Fatalf("incomplete style for %s: %#v", typ, st)
		}
	}
}

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		typ         string
		comment     string
		wantType    EmotionType
		wantComment string
		wantErr     any
	}{
		{name: "exact", typ: "Joy", comment: "sunny", wantType: EmotionJoy, wantComment: "sunny"},
		{name: "case insensitive", typ: "excitement", comment: "", wantType: EmotionExcitement},
		{name: "trims comment", typ: "Calm", comment: "  tea  ", wantType: EmotionCalm, wantComment: "tea"},
		{name: "max length ok", typ: "Fear", comment: strings.Repeat("é", MaxCommentLen), wantType: EmotionFear, wantComment: strings.Repeat("é", MaxCommentLen)},
		{name: "too long", typ: "Fear", comment: strings.Repeat("x", MaxCommentLen+1), wantErr: &CommentTooLongError{}},
		{name: "unknown type", typ: "Boredom", wantErr: &UnknownEmotionTypeError{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			typ, comment, err := ValidateInput(tt.typ, tt.comment)
			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if typ != tt.wantType || comment != tt.wantComment {
					t.Fatalf("got (%q, %q), want (%q, %q)", typ, comment, tt.wantType, tt.wantComment)
				}
			case *CommentTooLongError:
				if !errors.As(err, &want) {
					t.Fatalf("expected CommentTooLongError, got %v", err)
				}
			case *UnknownEmotionTypeError:
				if !errors.As(err, &want) {
					t.Fatalf("expected UnknownEmotionTypeError, got %v", err)
				}
			}
		})
	}
}

func TestParseViewAndFilter(t *testing.T) {
	t.Parallel()

	if v, err := ParseView(" Stats "); err != nil || v != ViewStats {
		t.Fatalf("ParseView: got %q, %v", v, err)
	}
	if _, err := ParseView("timeline"); err == nil {
		t.Fatalf("expected error for unknown view")
	}
	for _, f := range StatsFilters {
		got, err := ParseStatsFilter(string(f))
		if err != nil || got != f {
			t.Fatalf("ParseStatsFilter(%q): got %q, %v", f, got, err)
		}
	}
	if _, err := ParseStatsFilter("year"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestThemeAndGreeting(t *testing.T) {
	t.Parallel()

	at := func(h int) time.Time { return time.Date(2024, 5, 1, h, 30, 0, 0, time.Local) }
	tests := []struct {
		hour     int
		theme    Theme
		greeting string
	}{
		{0, ThemeMorning, "Good night"},
		{5, ThemeMorning, "Good night"},
		{6, ThemeMorning, "Good morning"},
		{11, ThemeMorning, "Good morning"},
		{12, ThemeAfternoon, "Good afternoon"},
		{17, ThemeAfternoon, "Good afternoon"},
		{18, ThemeEvening, "Good evening"},
		{23, ThemeEvening, "Good evening"},
	}
	for _, tt := range tests {
		if got := ThemeAt(at(tt.hour)); got != tt.theme {
			t.Fatalf("ThemeAt(%d): got %s, want %s", tt.hour, got, tt.theme)
		}
		if got := GreetingAt(at(tt.hour)); got != tt.greeting {
			t.Fatalf("GreetingAt(%d): got %q, want %q", tt.hour, got, tt.greeting)
		}
	}
}

func TestStatsFilterLabelKeepsRollingWording(t *testing.T) {
	t.Parallel()

	// Labels read like calendar periods while the windows are rolling 7 and 30 days.
	if got := FilterWeek.Label(); got != "This Week" {
		t.Fatalf("week label: %q", got)
	}
	if got := FilterMonth.Label(); got != "This Month" {
		t.Fatalf("month label: %q", got)
	}
}
