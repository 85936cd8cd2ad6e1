package models

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DrawSlot is a (date, time) pair plus the sheets available on it.
type DrawSlot struct {
	Date   string  `json:"date" validate:"required"`
	Time   string  `json:"time" validate:"required"`
	Sheets []Sheet `json:"sheets" validate:"required,min=1,dive"`
}

// Validate ensures the draw slot has well-formed data.
func (d *DrawSlot) Validate() error {
	if _, err := time.Parse(dateLayout, d.Date); err != nil {
		return fmt.Errorf("draw slot date %q is not YYYY-MM-DD: %w", d.Date, err)
	}
	if _, err := time.Parse("15:04", d.Time); err != nil {
		return fmt.Errorf("draw slot time %q is not HH:MM: %w", d.Time, err)
	}
	for i := range d.Sheets {
		if err := d.Sheets[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Key returns the "date|time" identifier used by strategies' drawSlotKeys.
func (d *DrawSlot) Key() string {
	return DrawKey(d.Date, d.Time)
}

// DrawKey builds the canonical "date|time" slot key.
func DrawKey(date, t string) string {
	return date + "|" + t
}

// ParseDate parses an ISO calendar date, returning an error for a
// string that is not YYYY-MM-DD.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// WeekKey returns the ISO Monday-anchored week identifier for a date
// string: Sunday maps to the preceding Monday.
func WeekKey(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	monday := t.AddDate(0, 0, -offset)
	return monday.Format(dateLayout), nil
}
