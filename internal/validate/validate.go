// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate gates catalog writes with the field rules shared by
// create and update, and checks year-range search input. Rules run in a
// fixed order and the first failure wins.
package validate

import (
	"strconv"
	"strings"

	"github.com/meshint/paperdesk/pkg/types"
)

// YearMin and YearMax bound the accepted publication year, inclusive.
const (
	YearMin = 1000
	YearMax = 9999
)

// Error reports a rejected field with a human-readable reason. It is always
// recoverable; the caller re-prompts and retries.
type Error struct {
	// Field names the offending input field.
	Field string

	// Message is the reason shown to the user.
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

const yearMessage = "year must be an integer between 1000 and 9999"

// Fields checks the required fields of a paper before any write: title
// non-empty after trimming, then authors non-empty after trimming, then
// year within [YearMin, YearMax]. Optional fields are accepted verbatim.
func Fields(p types.Paper) error {
	if strings.TrimSpace(p.Title) == "" {
		return &Error{Field: "title", Message: "title required"}
	}
	if strings.TrimSpace(p.Authors) == "" {
		return &Error{Field: "authors", Message: "authors required"}
	}
	if err := Year(p.Year); err != nil {
		return err
	}
	return nil
}

// Year checks that a publication year lies within [YearMin, YearMax].
func Year(year int) error {
	if year < YearMin || year > YearMax {
		return &Error{Field: "year", Message: yearMessage}
	}
	return nil
}

// ParseYear parses a required year field from its string form and checks
// the range. Whitespace is trimmed first.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &Error{Field: "year", Message: yearMessage}
	}
	if err := Year(year); err != nil {
		return 0, err
	}
	return year, nil
}

// ParseYearBound parses an optional year bound for range search. An empty
// or all-whitespace string means the bound is absent and yields zero.
func ParseYearBound(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ParseYear(s)
}

// YearRange checks the cross-field rule for range search: when both bounds
// are present, from must not exceed to. A zero bound is absent and imposes
// no constraint.
func YearRange(from, to int) error {
	if from != 0 {
		if err := Year(from); err != nil {
			return err
		}
	}
	if to != 0 {
		if err := Year(to); err != nil {
			return err
		}
	}
	if from != 0 && to != 0 && from > to {
		return &Error{Field: "year", Message: "start year must not exceed end year"}
	}
	return nil
}
