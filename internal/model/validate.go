package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxCommentLen = 200

type UnknownEmotionTypeError struct {
	Value string
}

func (e *UnknownEmotionTypeError) Error() string {
	return fmt.Sprintf("unknown emotion type: %q", e.Value)
}

type CommentTooLongError struct {
	Len int
}

func (e *CommentTooLongError) Error() string {
	return fmt.Sprintf("comment must be %d characters or less (got %d)", MaxCommentLen, e.Len)
}

// ParseEmotionType matches case-insensitively against the enumeration.
func ParseEmotionType(s string) (EmotionType, error) {
	s = strings.TrimSpace(s)
	for _, t := range EmotionTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", &UnknownEmotionTypeError{Value: s}
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown view: %q (want board|stats)", s)
	}
	return v, nil
}

func ParseStatsFilter(s string) (StatsFilter, error) {
	f := StatsFilter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown stats filter: %q (want today|week|month)", s)
	}
	return f, nil
}

// ValidateInput is the form layer that runs before a record is added: the type must be one
// of the enumeration and the trimmed comment must fit MaxCommentLen.
func ValidateInput(typ string, comment string) (EmotionType, string, error) {
	t, err := ParseEmotionType(typ)
	if err != nil {
		return "", "", err
	}
	comment = strings.TrimSpace(comment)
	if n := utf8.RuneCountInString(comment); n > MaxCommentLen {
		return "", "", &CommentTooLongError{Len: n}
	}
	return t, comment, nil
}
