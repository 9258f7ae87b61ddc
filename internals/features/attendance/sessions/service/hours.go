package service

import (
	"math"
	"time"
)

// MinutesBetween: menit penuh dari a ke b (dipotong), tidak pernah negatif.
func MinutesBetween(a, b time.Time) int {
	if !b.After(a) {
		return 0
	}
	return int(b.Sub(a) / time.Minute)
}

// WorkingMinutes = max(0, menit(start, end) - totalBreak).
func WorkingMinutes(start, end time.Time, totalBreakMinutes int) int {
	return max(0, MinutesBetween(start, end)-totalBreakMinutes)
}

// OvertimeMinutes = max(0, working - shift).
func OvertimeMinutes(workingMinutes, shiftMinutes int) int {
	return max(0, workingMinutes-shiftMinutes)
}

// MinutesToHours hanya untuk tampilan (2 desimal).
func MinutesToHours(m int) float64 {
	return math.Round(float64(m)/60*100) / 100
}
