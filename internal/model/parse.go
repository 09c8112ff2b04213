package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func normalizeName(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// ParseState maps user input such as "in progress" or "DONE" to a State.
func ParseState(raw string) (State, error) {
	key := normalizeName(raw)
	for _, s := range States {
		if normalizeName(string(s)) == key {
			return s, nil
		}
	}
	return "", invalid(fmt.Sprintf("invalid state %q", strings.TrimSpace(raw)))
}

// ParseDifficulty accepts a difficulty name or its number (1-3).
func ParseDifficulty(raw string) (Difficulty, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		d := Difficulty(n)
		if err := ValidateDifficulty(d); err != nil {
			return 0, err
		}
		return d, nil
	}
	key := normalizeName(raw)
	for _, d := range Difficulties {
		if strings.ToLower(d.String()) == key {
			return d, nil
		}
	}
	return 0, invalid(fmt.Sprintf("invalid difficulty %q", raw))
}

// ParseDueDate reads a YYYY-MM-DD date at local midnight. Empty or
// unparsable input yields nil rather than an error.
func ParseDueDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return nil
	}
	return &d
}

// TruncateDescription cuts desc to MaxDescriptionLen characters.
func TruncateDescription(desc string) string {
	r := []rune(desc)
	if len(r) <= MaxDescriptionLen {
		return desc
	}
	return string(r[:MaxDescriptionLen])
}
