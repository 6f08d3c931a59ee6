package services

import (
	"math"
	"time"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func sameDay(a, b time.Time) bool {
	return dayStartLocal(a).Equal(dayStartLocal(b))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}
