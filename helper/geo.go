package helper

import (
	"fmt"
	"math"
)

const (
	EarthRadiusKm  = 6371
	CruiseSpeedKmh = 850
)

// Haversine returns the great-circle distance between two coordinates in km
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(dlon/2), 2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// ArrivalClock computes the wall-clock arrival for a departure (minutes
// since midnight) and a leg distance, at fixed cruise speed. The result
// snaps to 5-minute marks: minute remainder 0-2 rounds down, 3-4 up.
// The hour wraps modulo 24; day crossings are the caller's problem.
func ArrivalClock(departureMinutes int, distanceKm float64) int {
	durationSec := int(distanceKm / CruiseSpeedKmh * 3600)
	totalSec := departureMinutes*60 + durationSec

	hour := totalSec / 3600
	minute := (totalSec % 3600) / 60

	remainder := minute % 5
	if remainder < 3 {
		minute -= remainder
	} else {
		minute += 5 - remainder
	}

	hour = (hour + minute/60) % 24
	minute = minute % 60

	return hour*60 + minute
}

func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func ParseClock(clock string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	return hour*60 + minute, nil
}

// ClockDiff is the minutes from a to b on a 24h dial, wrapping past midnight
func ClockDiff(fromMinutes, toMinutes int) int {
	diff := toMinutes - fromMinutes
	if diff < 0 {
		diff += 1440
	}
	return diff
}
