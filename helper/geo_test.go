package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.InDelta(t, 0, Haversine(41.8, 12.25, 41.8, 12.25), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		forward := Haversine(41.8, 12.25, 40.64, -73.78)
		backward := Haversine(40.64, -73.78, 41.8, 12.25)
		assert.InDelta(t, forward, backward, 1e-9)
	})

	t.Run("Rome to New York", func(t *testing.T) {
		got := Haversine(41.8, 12.25, 40.64, -73.78)
		assert.InDelta(t, 6866.6, got, 1.0)
	})
}

func TestArrivalClock(t *testing.T) {
	rome := [2]float64{41.8, 12.25}
	newYork := [2]float64{40.64, -73.78}

	t.Run("transatlantic leg", func(t *testing.T) {
		distance := Haversine(rome[0], rome[1], newYork[0], newYork[1])
		departure, err := ParseClock("08:30")
		require.NoError(t, err)

		arrival := ArrivalClock(departure, distance)
		assert.Equal(t, "16:35", FormatClock(arrival))
	})

	t.Run("zero distance keeps the departure clock", func(t *testing.T) {
		assert.Equal(t, 510, ArrivalClock(510, 0))
	})

	t.Run("minute remainder below three rounds down", func(t *testing.T) {
		// 480 km is 33m53s in the air from 10:00, rounds to 10:35
		arrival := ArrivalClock(600, 480)
		assert.Equal(t, "10:35", FormatClock(arrival))
	})

	t.Run("always snaps to five minute marks", func(t *testing.T) {
		for _, distance := range []float64{1, 57, 233, 480, 1999, 6866, 12000} {
			for _, departure := range []int{0, 137, 510, 1439} {
				arrival := ArrivalClock(departure, distance)
				assert.Zero(t, arrival%5, "distance %.0f departure %d", distance, departure)
				assert.GreaterOrEqual(t, arrival, 0)
				assert.Less(t, arrival, 1440)
			}
		}
	})

	t.Run("hour wraps past midnight", func(t *testing.T) {
		// 23:50 departure plus a short hop lands after midnight
		arrival := ArrivalClock(23*60+50, 480)
		assert.Equal(t, "00:25", FormatClock(arrival))
	})
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("14:05")
	require.NoError(t, err)
	assert.Equal(t, 845, minutes)

	_, err = ParseClock("24:00")
	assert.Error(t, err)
	_, err = ParseClock("12:60")
	assert.Error(t, err)
	_, err = ParseClock("noon")
	assert.Error(t, err)
}

func TestClockDiff(t *testing.T) {
	assert.Equal(t, 90, ClockDiff(600, 690))
	// wraps midnight
	assert.Equal(t, 70, ClockDiff(23*60+30, 40))
	assert.Equal(t, 0, ClockDiff(100, 100))
}
