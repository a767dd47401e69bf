// Package energy tracks self-reported energy levels per hour of day.
package energy

import (
	"context"
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidLevel = errors.New("energy level must be between 1 and 5")
	ErrInvalidHour  = errors.New("hour must be between 0 and 23")
)

// Level is one energy reading: how energetic the user felt during a
// given hour of a given day, on a 1 (drained) to 5 (peak) scale.
type Level struct {
	Date  time.Time
	Hour  int // 0-23
	Value int // 1-5
}

// NewLevel creates a validated energy reading.
func NewLevel(date time.Time, hour, value int) (Level, error) {
	if hour < 0 || hour > 23 {
		return Level{}, ErrInvalidHour
	}
	if value < 1 || value > 5 {
		return Level{}, ErrInvalidLevel
	}
	return Level{Date: date, Hour: hour, Value: value}, nil
}

// Store defines the storage interface for energy readings.
type Store interface {
	// RecordEnergy upserts the reading for its (date, hour) pair.
	RecordEnergy(ctx context.Context, level Level) error

	// ListEnergyByDateRange returns readings within the range
	// (inclusive), ordered by date then hour.
	ListEnergyByDateRange(ctx context.Context, start, end time.Time) ([]Level, error)
}

// ByHour averages readings per hour of day. Hours with no readings are
// absent from the result.
func ByHour(levels []Level) map[int]float64 {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, l := range levels {
		sums[l.Hour] += l.Value
		counts[l.Hour]++
	}

	avg := make(map[int]float64, len(sums))
	for h, sum := range sums {
		avg[h] = float64(sum) / float64(counts[h])
	}
	return avg
}

// Average returns the mean of all readings, or 0 when there are none.
func Average(levels []Level) float64 {
	if len(levels) == 0 {
		return 0
	}
	sum := 0
	for _, l := range levels {
		sum += l.Value
	}
	return float64(sum) / float64(len(levels))
}
