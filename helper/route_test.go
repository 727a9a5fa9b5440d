package helper

import (
	"testing"

	"airline_manager/model"
	"airline_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildRoutePairDirect(t *testing.T) {
	f := newFixture(t)
	outbound, returning := f.routePair(t)

	assert.Equal(t, "AZ1", outbound)
	assert.Equal(t, "AZ2", returning)

	var out, ret model.Route
	require.NoError(t, f.db.First(&out, "code = ?", outbound).Error)
	require.NoError(t, f.db.First(&ret, "code = ?", returning).Error)

	assert.True(t, out.IsOutbound)
	assert.False(t, ret.IsOutbound)
	// both directions carry the same tariff-derived price
	assert.Equal(t, 736, out.BasePrice)
	assert.Equal(t, 736, ret.BasePrice)

	outDesc, err := DescribeRoute(f.db, outbound)
	require.NoError(t, err)
	require.Len(t, outDesc.Segments, 1)
	assert.Equal(t, "FCO", outDesc.Segments[0].From)
	assert.Equal(t, "JFK", outDesc.Segments[0].To)
	assert.Equal(t, "08:30", outDesc.Segments[0].DepartureTime)
	assert.Equal(t, "16:35", outDesc.Segments[0].ArrivalTime)

	retDesc, err := DescribeRoute(f.db, returning)
	require.NoError(t, err)
	require.Len(t, retDesc.Segments, 1)
	assert.Equal(t, "JFK", retDesc.Segments[0].From)
	assert.Equal(t, "FCO", retDesc.Segments[0].To)
	// outbound arrival 16:35 plus the 120 minute delta
	assert.Equal(t, "18:35", retDesc.Segments[0].DepartureTime)
	assert.Equal(t, "02:40", retDesc.Segments[0].ArrivalTime)
}

func TestBuildRoutePairWithStopover(t *testing.T) {
	f := newFixture(t)

	var outbound, returning string
	err := f.db.Transaction(func(tx *gorm.DB) error {
		var err error
		outbound, returning, err = BuildRoutePair(tx, model.CreateRouteInput{
			AirlineCode:         "AZ",
			NumberRoute:         7,
			StartDate:           date(2026, 9, 1),
			EndDate:             date(2026, 12, 31),
			DeltaForReturnRoute: 120,
			Section: model.FirstSectionInput{
				DepartureAirport: "FCO",
				ArrivalAirport:   "AMS",
				DepartureTime:    "08:30",
				Next: &model.NextSectionInput{
					DepartureAirport: "AMS",
					ArrivalAirport:   "JFK",
					WaitingTime:      150,
				},
			},
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "AZ7", outbound)
	assert.Equal(t, "AZ8", returning)

	var out model.Route
	require.NoError(t, f.db.First(&out, "code = ?", outbound).Error)
	// one stopover fee on top of distance and markup
	assert.Equal(t, 784, out.BasePrice)

	outDesc, err := DescribeRoute(f.db, outbound)
	require.NoError(t, err)
	require.Len(t, outDesc.Segments, 2)
	assert.Equal(t, "10:00", outDesc.Segments[0].ArrivalTime)
	assert.Equal(t, "12:30", outDesc.Segments[1].DepartureTime)
	require.NotNil(t, outDesc.Segments[1].LayoverMinutes)
	assert.Equal(t, 150, *outDesc.Segments[1].LayoverMinutes)

	retDesc, err := DescribeRoute(f.db, returning)
	require.NoError(t, err)
	require.Len(t, retDesc.Segments, 2)
	// reversed legs with swapped airports
	assert.Equal(t, "JFK", retDesc.Segments[0].From)
	assert.Equal(t, "AMS", retDesc.Segments[0].To)
	assert.Equal(t, "AMS", retDesc.Segments[1].From)
	assert.Equal(t, "FCO", retDesc.Segments[1].To)
	// the AMS layover mirrors the outbound one
	require.NotNil(t, retDesc.Segments[1].LayoverMinutes)
	assert.Equal(t, 150, *retDesc.Segments[1].LayoverMinutes)
	assert.Equal(t, "21:20", retDesc.Segments[0].DepartureTime)
	assert.Equal(t, "08:10", retDesc.Segments[1].ArrivalTime)
}

func TestBuildRoutePairReturnCodeFallback(t *testing.T) {
	f := newFixture(t)

	// number 2 takes AZ2/AZ3 first
	err := f.db.Transaction(func(tx *gorm.DB) error {
		outbound, returning, err := BuildRoutePair(tx, model.CreateRouteInput{
			AirlineCode: "AZ", NumberRoute: 2,
			StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
			DeltaForReturnRoute: 120,
			Section: model.FirstSectionInput{
				DepartureAirport: "FCO", ArrivalAirport: "AMS", DepartureTime: "06:00",
			},
		})
		require.NoError(t, err)
		require.Equal(t, "AZ2", outbound)
		require.Equal(t, "AZ3", returning)
		return nil
	})
	require.NoError(t, err)

	// number 1: AZ2 is busy, so the return route falls back to AZ0
	err = f.db.Transaction(func(tx *gorm.DB) error {
		outbound, returning, err := BuildRoutePair(tx, model.CreateRouteInput{
			AirlineCode: "AZ", NumberRoute: 1,
			StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
			DeltaForReturnRoute: 120,
			Section: model.FirstSectionInput{
				DepartureAirport: "FCO", ArrivalAirport: "JFK", DepartureTime: "08:30",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "AZ1", outbound)
		assert.Equal(t, "AZ0", returning)
		return nil
	})
	require.NoError(t, err)

	var ret model.Route
	require.NoError(t, f.db.First(&ret, "code = ?", "AZ0").Error)
	assert.False(t, ret.IsOutbound)
	assert.Equal(t, 736, ret.BasePrice)
}

func TestBuildRoutePairErrors(t *testing.T) {
	t.Run("duplicate outbound code", func(t *testing.T) {
		f := newFixture(t)
		f.routePair(t)

		err := f.db.Transaction(func(tx *gorm.DB) error {
			_, _, err := BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "AZ", NumberRoute: 1,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "FCO", ArrivalAirport: "AMS", DepartureTime: "10:00",
				},
			})
			return err
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("both return candidates taken", func(t *testing.T) {
		f := newFixture(t)
		f.routePair(t) // AZ1, AZ2
		err := f.db.Transaction(func(tx *gorm.DB) error {
			_, _, err := BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "AZ", NumberRoute: 4,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "FCO", ArrivalAirport: "AMS", DepartureTime: "10:00",
				},
			})
			return err
		})
		require.NoError(t, err) // AZ4, AZ5

		// number 3: candidates AZ4 and AZ2 are both taken
		err = f.db.Transaction(func(tx *gorm.DB) error {
			_, _, err := BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "AZ", NumberRoute: 3,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "AMS", ArrivalAirport: "JFK", DepartureTime: "10:00",
				},
			})
			return err
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing price policy", func(t *testing.T) {
		f := newFixture(t)
		lufthansa := model.Airline{IataCode: "LH", Name: "Lufthansa"}
		require.NoError(t, f.db.Create(&lufthansa).Error)

		err := f.db.Transaction(func(tx *gorm.DB) error {
			_, _, err := BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "LH", NumberRoute: 1,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "FCO", ArrivalAirport: "JFK", DepartureTime: "08:30",
				},
			})
			return err
		})
		assert.ErrorIs(t, err, ErrPolicyMissing)
	})

	t.Run("unknown airport rolls the whole pair back", func(t *testing.T) {
		f := newFixture(t)
		err := f.db.Transaction(func(tx *gorm.DB) error {
			_, _, err := BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "AZ", NumberRoute: 1,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "FCO", ArrivalAirport: "XXX", DepartureTime: "08:30",
				},
			})
			return err
		})
		assert.ErrorIs(t, err, ErrNotFound)

		var routes int64
		f.db.Model(&model.Route{}).Count(&routes)
		assert.Zero(t, routes)
		var details int64
		f.db.Model(&model.RouteDetail{}).Count(&details)
		assert.Zero(t, details)
	})
}

func TestChainOrder(t *testing.T) {
	detail := func(id uint, next *uint) model.RouteDetail {
		d := model.RouteDetail{IdNext: next}
		d.ID = id
		return d
	}

	t.Run("orders head to tail", func(t *testing.T) {
		// stored out of order: 3 <- 1 <- 2
		details := []model.RouteDetail{
			detail(3, nil),
			detail(1, utils.Ptr(uint(2))),
			detail(2, utils.Ptr(uint(3))),
		}
		ordered, err := ChainOrder(details)
		require.NoError(t, err)
		require.Len(t, ordered, 3)
		assert.Equal(t, uint(1), ordered[0].ID)
		assert.Equal(t, uint(3), ordered[2].ID)
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := ChainOrder(nil)
		assert.ErrorIs(t, err, ErrInvalidChain)
	})

	t.Run("cycle has no head", func(t *testing.T) {
		details := []model.RouteDetail{
			detail(1, utils.Ptr(uint(2))),
			detail(2, utils.Ptr(uint(1))),
		}
		_, err := ChainOrder(details)
		assert.ErrorIs(t, err, ErrInvalidChain)
	})

	t.Run("branching", func(t *testing.T) {
		details := []model.RouteDetail{
			detail(1, utils.Ptr(uint(3))),
			detail(2, utils.Ptr(uint(3))),
			detail(3, nil),
		}
		_, err := ChainOrder(details)
		assert.ErrorIs(t, err, ErrInvalidChain)
	})

	t.Run("two disconnected heads", func(t *testing.T) {
		details := []model.RouteDetail{
			detail(1, utils.Ptr(uint(2))),
			detail(2, nil),
			detail(3, nil),
		}
		_, err := ChainOrder(details)
		assert.ErrorIs(t, err, ErrInvalidChain)
	})

	t.Run("dangling next pointer", func(t *testing.T) {
		details := []model.RouteDetail{
			detail(1, utils.Ptr(uint(99))),
		}
		_, err := ChainOrder(details)
		assert.ErrorIs(t, err, ErrInvalidChain)
	})
}

func TestFindReverseRoute(t *testing.T) {
	f := newFixture(t)
	outbound, returning := f.routePair(t)

	t.Run("pairs resolve to each other", func(t *testing.T) {
		got, err := FindReverseRoute(f.db, outbound)
		require.NoError(t, err)
		assert.Equal(t, returning, got)

		got, err = FindReverseRoute(f.db, returning)
		require.NoError(t, err)
		assert.Equal(t, outbound, got)
	})

	t.Run("empty when nothing matches", func(t *testing.T) {
		err := f.db.Transaction(func(tx *gorm.DB) error {
			_, _, err := BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "AZ", NumberRoute: 5,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "FCO", ArrivalAirport: "AMS", DepartureTime: "06:00",
				},
			})
			return err
		})
		require.NoError(t, err)

		// drop AZ6's legs so AZ5 has no usable reverse
		require.NoError(t, f.db.Where("code_route = ?", "AZ6").Delete(&model.RouteDetail{}).Error)

		got, err := FindReverseRoute(f.db, "AZ5")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
