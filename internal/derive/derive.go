// Package derive holds the arithmetic that is computed on both sides of
// the API: handlers fill these values in before persisting, clients use
// the same functions for previews so the numbers never disagree.
package derive

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// LeaveDuration returns the inclusive day count between two calendar
// dates, so a leave starting and ending on the same day has duration 1.
// Returns 0 when either date is missing or malformed.
func LeaveDuration(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}

	days := math.Ceil(math.Abs(end.Sub(start).Hours()) / 24)
	return int(days) + 1
}

// WorkedHours returns the elapsed hours between check-in and check-out
// clock times ("15:04"), rounded to two decimal places. A check-out
// earlier than the check-in is treated as the following day (overnight
// shift). Returns 0 when either endpoint is absent.
func WorkedHours(checkIn, checkOut string) float64 {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(clockLayout, checkOut)
	if err != nil {
		return 0
	}

	if out.Before(in) {
		out = out.AddDate(0, 0, 1) // overnight rollover
	}

	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100
}

// NetPay computes basicSalary + overtimeHours*overtimeRate - deduction.
// Money math goes through decimal to avoid binary-float drift.
func NetPay(basicSalary, overtimeHours, overtimeRate, deduction float64) float64 {
	net := decimal.NewFromFloat(basicSalary).
		Add(decimal.NewFromFloat(overtimeHours).Mul(decimal.NewFromFloat(overtimeRate))).
		Sub(decimal.NewFromFloat(deduction))
	f, _ := net.Round(2).Float64()
	return f
}

// AttendanceStatus resolves the status of an attendance record when no
// explicit status was supplied: no check-in means Absent, a check-in
// after the shift start means Late, anything else is Present.
func AttendanceStatus(explicit, checkIn, shiftStart string) string {
	if explicit != "" {
		return explicit
	}
	if checkIn == "" {
		return "Absent"
	}
	if shiftStart != "" {
		in, errIn := time.Parse(clockLayout, checkIn)
		start, errStart := time.Parse(clockLayout, shiftStart)
		if errIn == nil && errStart == nil && in.After(start) {
			return "Late"
		}
	}
	return "Present"
}
