package domain

import (
	"strconv"
	"time"
)

// expiryKind discriminates the three expiry selection forms.
type expiryKind int

const (
	expiryRelative expiryKind = iota
	expiryAbsolute
	expiryNever
)

// absoluteDateLayout is the accepted calendar date format for absolute expiry.
const absoluteDateLayout = "2006-01-02"

// ExpirySelection is the issuance-time expiry choice: a positive number of
// days from now, an absolute calendar date, or never.
type ExpirySelection struct {
	kind expiryKind
	days int
	date time.Time
}

// ExpiryInDays selects expiry N days from the resolution instant.
func ExpiryInDays(days int) ExpirySelection {
	return ExpirySelection{kind: expiryRelative, days: days}
}

// ExpiryOnDate selects expiry at the given absolute instant.
func ExpiryOnDate(date time.Time) ExpirySelection {
	return ExpirySelection{kind: expiryAbsolute, date: date}
}

// ExpiryNever selects no expiry.
func ExpiryNever() ExpirySelection {
	return ExpirySelection{kind: expiryNever}
}

// ParseExpirySelection parses the free-form expiry field: a positive integer
// is a relative day count, "never" disables expiry, anything else must be a
// YYYY-MM-DD calendar date. Returns ErrInvalidExpiry for unusable input.
// Validation of the day count itself happens in Resolve so that selections
// built programmatically get the same treatment.
func ParseExpirySelection(s string) (ExpirySelection, error) {
	if s == "never" {
		return ExpiryNever(), nil
	}
	if days, err := strconv.Atoi(s); err == nil {
		return ExpiryInDays(days), nil
	}
	date, err := time.Parse(absoluteDateLayout, s)
	if err != nil {
		return ExpirySelection{}, ErrInvalidExpiry
	}
	return ExpiryOnDate(date), nil
}

// Resolve converts the selection into a concrete expiry instant, or nil for
// no expiry. Relative selections below one day fail with ErrInvalidExpiry.
// Absolute dates in the past are legal: an operator may deliberately issue an
// already-expired token.
func (s ExpirySelection) Resolve(now time.Time) (*time.Time, error) {
	switch s.kind {
	case expiryNever:
		return nil, nil
	case expiryRelative:
		if s.days < 1 {
			return nil, ErrInvalidExpiry
		}
		instant := now.UTC().AddDate(0, 0, s.days)
		return &instant, nil
	case expiryAbsolute:
		instant := s.date.UTC()
		return &instant, nil
	default:
		return nil, ErrInvalidExpiry
	}
}

// IsNever reports whether the selection disables expiry.
func (s ExpirySelection) IsNever() bool {
	return s.kind == expiryNever
}
