package usecase

import (
	"math"
	"sort"
	"time"
)

// safeDiv returns 0 when the denominator is 0.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// round1 rounds to one decimal, half to even on the scaled value.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// truncate drops the fractional part toward zero.
func truncate(v float64) float64 {
	return math.Trunc(v)
}

// sortDatesDesc sorts dates newest first.
func sortDatesDesc(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
}

func distinctDatesDesc(set map[time.Time]struct{}) []time.Time {
	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sortDatesDesc(dates)
	return dates
}
