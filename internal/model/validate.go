package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// ValidateTitle checks that the trimmed title has 1 to MaxTitleLen characters.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n == 0 || n > MaxTitleLen {
		return invalid(fmt.Sprintf("title is required and must be at most %d characters", MaxTitleLen))
	}
	return nil
}

// ValidateDescription checks the description length.
func ValidateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > MaxDescriptionLen {
		return invalid(fmt.Sprintf("description must be at most %d characters", MaxDescriptionLen))
	}
	return nil
}

// ValidateState accepts only the values in States.
func ValidateState(s State) error {
	for _, v := range States {
		if s == v {
			return nil
		}
	}
	return invalid(fmt.Sprintf("invalid state %q", string(s)))
}

// ValidateDifficulty accepts DifficultyEasy through DifficultyHard.
func ValidateDifficulty(d Difficulty) error {
	if d < DifficultyEasy || d > DifficultyHard {
		return invalid(fmt.Sprintf("invalid difficulty %d", int(d)))
	}
	return nil
}

// ValidateDueDate accepts nil or a set date.
func ValidateDueDate(d *time.Time) error {
	if d != nil && d.IsZero() {
		return invalid("invalid due date")
	}
	return nil
}

// Validate runs every field check on t and collects all failures.
func Validate(t Task) error {
	var reasons []string
	collect := func(err error) {
		if ve, ok := err.(*ValidationError); ok {
			reasons = append(reasons, ve.Reasons...)
		}
	}

	collect(ValidateTitle(t.Title))
	collect(ValidateDescription(t.Description))
	collect(ValidateState(t.State))
	collect(ValidateDifficulty(t.Difficulty))
	if t.CreatedAt.IsZero() {
		reasons = append(reasons, "creation time is required")
	}
	if t.LastEditedAt.IsZero() || t.LastEditedAt.Before(t.CreatedAt) {
		reasons = append(reasons, "last edit time must not precede creation time")
	}
	collect(ValidateDueDate(t.DueDate))

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}
