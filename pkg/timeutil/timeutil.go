// Package timeutil converts between human-entered clock times and signed
// HH:MM durations, and computes overtime from actual vs scheduled times.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockLayout is the primary 24-hour layout used across the board.
const ClockLayout = "15:04"

// HourLayout is the fallback layout for legacy template times like "8 AM".
const HourLayout = "3 PM"

// ParseClock parses a clock time in the primary 24-hour layout, falling back
// to the hour-plus-meridiem layout. Empty or malformed input reports ok=false
// rather than an error so callers can treat missing times as absent.
func ParseClock(s string) (time.Time, bool) {
	return ParseClockLayout(s, ClockLayout)
}

// ParseClockLayout is ParseClock with a caller-supplied primary layout.
func ParseClockLayout(s, layout string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(layout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(HourLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDisplay renders a 24-hour "HH:MM" value as "hh:mm AM/PM".
// Absent or unparseable input renders as the empty string.
func FormatDisplay(hhmm string) string {
	t, ok := ParseClock(hhmm)
	if !ok {
		return ""
	}
	return t.Format("03:04 PM")
}

// Normalize24 re-renders any parseable clock string in the 24-hour layout.
func Normalize24(s string) (string, bool) {
	t, ok := ParseClock(s)
	if !ok {
		return "", false
	}
	return t.Format(ClockLayout), true
}

// DurationToMinutes parses a signed "[-]HH:MM" duration into total minutes.
// A leading '-' negates the whole quantity.
func DurationToMinutes(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	sign := 1
	if strings.HasPrefix(trimmed, "-") {
		sign = -1
		trimmed = trimmed[1:]
	}
	hh, mm, found := strings.Cut(trimmed, ":")
	if !found {
		return 0, fmt.Errorf("malformed duration %q", s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q: %w", s, err)
	}
	return sign * (hours*60 + minutes), nil
}

// MinutesToDuration formats a signed minute count as "[-]HH:MM",
// zero-padded, with the sign only on negative values.
func MinutesToDuration(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// OvertimeMinutes computes whole minutes worked beyond the scheduled
// duration, floored at zero. An end time sorting before its start time
// means the period crosses midnight; 24 hours are added to that end
// before differencing. The rule applies independently to the actual pair
// and the scheduled pair.
func OvertimeMinutes(actualStart, actualEnd, shiftStart, shiftEnd time.Time) int {
	if actualEnd.Before(actualStart) {
		actualEnd = actualEnd.Add(24 * time.Hour)
	}
	if shiftEnd.Before(shiftStart) {
		shiftEnd = shiftEnd.Add(24 * time.Hour)
	}

	overtime := actualEnd.Sub(actualStart) - shiftEnd.Sub(shiftStart)
	if overtime < 0 {
		return 0
	}
	return int(overtime.Minutes())
}

// SumDurations sums signed "[-]HH:MM" durations into one. Blank entries
// count as zero; an empty list yields "00:00".
func SumDurations(durations []string) (string, error) {
	total := 0
	for _, d := range durations {
		if strings.TrimSpace(d) == "" {
			continue
		}
		minutes, err := DurationToMinutes(d)
		if err != nil {
			return "", err
		}
		total += minutes
	}
	return MinutesToDuration(total), nil
}

// MonthDates returns every calendar date of the given month, in order.
func MonthDates(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}
