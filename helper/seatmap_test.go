package helper

import (
	"testing"

	"airline_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func matrix(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
		for j := range m[i] {
			m[i][j] = true
		}
	}
	return m
}

func (f *fixture) smallModel(t *testing.T, maxSeats, maxCols int) model.Aircraft {
	t.Helper()
	var manufacturer model.Manufacturer
	require.NoError(t, f.db.First(&manufacturer).Error)
	aircraft := model.Aircraft{
		IdManufacturer: manufacturer.ID,
		Name:           "E195-E2",
		MaxSeats:       maxSeats,
		CabinMaxCols:   maxCols,
		CruiseSpeedKmh: 833,
	}
	require.NoError(t, f.db.Create(&aircraft).Error)
	return aircraft
}

func TestInsertBlock(t *testing.T) {
	t.Run("persists cabin and cells", func(t *testing.T) {
		f := newFixture(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		seats, err := SeatCount(f.db, f.unit.ID)
		require.NoError(t, err)
		assert.Equal(t, 18, seats)

		var cabin model.Cabin
		require.NoError(t, f.db.First(&cabin, "id_aircraft = ?", f.unit.ID).Error)
		assert.Equal(t, 3, cabin.Rows)
		assert.Equal(t, 6, cabin.Cols)

		var cells int64
		f.db.Model(&model.Cell{}).Where("id_cabin = ?", cabin.ID).Count(&cells)
		assert.EqualValues(t, 18, cells)
	})

	t.Run("aisle gaps are cells but not seats", func(t *testing.T) {
		f := newFixture(t)
		block := matrix(2, 5)
		block[0][2] = false
		block[1][2] = false

		err := f.db.Transaction(func(tx *gorm.DB) error {
			return InsertBlock(tx, block, f.economy.ID, f.unit.ID)
		})
		require.NoError(t, err)

		seats, err := SeatCount(f.db, f.unit.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, seats)

		var cells int64
		f.db.Model(&model.Cell{}).Count(&cells)
		assert.EqualValues(t, 10, cells)
	})

	t.Run("too many columns rejected, nothing persisted", func(t *testing.T) {
		f := newFixture(t)
		err := f.db.Transaction(func(tx *gorm.DB) error {
			return InsertBlock(tx, matrix(2, 7), f.economy.ID, f.unit.ID)
		})
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		var cabins int64
		f.db.Model(&model.Cabin{}).Count(&cabins)
		assert.Zero(t, cabins)
	})

	t.Run("seat ceiling counts existing cabins", func(t *testing.T) {
		f := newFixture(t)
		small := f.smallModel(t, 20, 6)
		unit := f.addFleetUnit(t, small.ID)

		f.seatBlock(t, unit.ID, 3, 6) // 18 of 20

		err := f.db.Transaction(func(tx *gorm.DB) error {
			return InsertBlock(tx, matrix(1, 3), f.economy.ID, unit.ID)
		})
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		seats, err := SeatCount(f.db, unit.ID)
		require.NoError(t, err)
		assert.Equal(t, 18, seats)
	})

	t.Run("unknown class or fleet unit", func(t *testing.T) {
		f := newFixture(t)
		err := f.db.Transaction(func(tx *gorm.DB) error {
			return InsertBlock(tx, matrix(1, 2), 9999, f.unit.ID)
		})
		assert.ErrorIs(t, err, ErrNotFound)

		err = f.db.Transaction(func(tx *gorm.DB) error {
			return InsertBlock(tx, matrix(1, 2), f.economy.ID, 9999)
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCloneSeatMap(t *testing.T) {
	t.Run("copies every cabin and replaces the target layout", func(t *testing.T) {
		f := newFixture(t)
		source := f.unit
		target := f.addFleetUnit(t, f.model_.ID)

		f.seatBlock(t, source.ID, 3, 6)
		f.seatBlock(t, source.ID, 2, 4)
		// target has an old layout that must disappear
		f.seatBlock(t, target.ID, 10, 6)

		copied, err := CloneSeatMap(f.db, source.ID, target.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, copied)

		sourceSeats, err := SeatCount(f.db, source.ID)
		require.NoError(t, err)
		targetSeats, err := SeatCount(f.db, target.ID)
		require.NoError(t, err)
		assert.Equal(t, sourceSeats, targetSeats)

		var targetCabins int64
		f.db.Model(&model.Cabin{}).Where("id_aircraft = ?", target.ID).Count(&targetCabins)
		assert.EqualValues(t, 2, targetCabins)

		// source untouched
		var sourceCabins int64
		f.db.Model(&model.Cabin{}).Where("id_aircraft = ?", source.ID).Count(&sourceCabins)
		assert.EqualValues(t, 2, sourceCabins)
	})

	t.Run("column mismatch", func(t *testing.T) {
		f := newFixture(t)
		wide := f.smallModel(t, 300, 9)
		target := f.addFleetUnit(t, wide.ID)
		f.seatBlock(t, f.unit.ID, 3, 6)

		_, err := CloneSeatMap(f.db, f.unit.ID, target.ID)
		assert.ErrorIs(t, err, ErrIncompatibleLayout)
	})

	t.Run("source bigger than target maximum leaves target untouched", func(t *testing.T) {
		f := newFixture(t)
		f.seatBlock(t, f.unit.ID, 30, 6) // 180 seats

		tight := f.smallModel(t, 150, 6)
		target := f.addFleetUnit(t, tight.ID)
		f.seatBlock(t, target.ID, 5, 6) // 30 seats already there

		_, err := CloneSeatMap(f.db, f.unit.ID, target.ID)
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		seats, err := SeatCount(f.db, target.ID)
		require.NoError(t, err)
		assert.Equal(t, 30, seats)
	})

	t.Run("empty source", func(t *testing.T) {
		f := newFixture(t)
		target := f.addFleetUnit(t, f.model_.ID)

		_, err := CloneSeatMap(f.db, f.unit.ID, target.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSeatMapJSON(t *testing.T) {
	f := newFixture(t)
	f.seatBlock(t, f.unit.ID, 2, 3)

	seatMap, err := SeatMapJSON(f.db, f.unit.ID)
	require.NoError(t, err)
	require.Len(t, seatMap, 1)
	assert.Equal(t, 2, seatMap[0].Rows)
	assert.Equal(t, 3, seatMap[0].Cols)
	assert.Equal(t, "Economy", seatMap[0].ClassName)
	assert.Len(t, seatMap[0].Cells, 6)
}

func TestAircraftBySeat(t *testing.T) {
	f := newFixture(t)
	f.seatBlock(t, f.unit.ID, 1, 2)

	var cell model.Cell
	require.NoError(t, f.db.First(&cell).Error)

	owner, err := AircraftBySeat(f.db, cell.ID)
	require.NoError(t, err)
	assert.Equal(t, f.unit.ID, owner)

	idClass, err := ClassBySeat(f.db, cell.ID)
	require.NoError(t, err)
	require.NotNil(t, idClass)
	assert.Equal(t, f.economy.ID, *idClass)

	_, err = AircraftBySeat(f.db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFleetUnits(t *testing.T) {
	t.Run("retires listed units", func(t *testing.T) {
		f := newFixture(t)
		second := f.addFleetUnit(t, f.model_.ID)

		deleted, err := RemoveFleetUnits(f.db, "AZ", []uint{f.unit.ID, second.ID})
		require.NoError(t, err)
		assert.Equal(t, []uint{f.unit.ID, second.ID}, deleted)

		var remaining int64
		f.db.Model(&model.AircraftAirline{}).Count(&remaining)
		assert.Zero(t, remaining)
	})

	t.Run("unit serving flights fails the whole batch", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)
		second := f.addFleetUnit(t, f.model_.ID)

		flight := model.Flight{
			IdAircraft:            f.unit.ID,
			RouteCode:             outbound,
			ScheduledDepartureDay: date(2026, 10, 1),
			ScheduledArrivalDay:   date(2026, 10, 1),
		}
		require.NoError(t, f.db.Create(&flight).Error)

		_, err := RemoveFleetUnits(f.db, "AZ", []uint{second.ID, f.unit.ID})
		assert.ErrorIs(t, err, ErrScheduleConflict)

		var remaining int64
		f.db.Model(&model.AircraftAirline{}).Count(&remaining)
		assert.EqualValues(t, 2, remaining, "a failed batch must retire nothing")
	})

	t.Run("foreign airline unit", func(t *testing.T) {
		f := newFixture(t)
		lufthansa := model.Airline{IataCode: "LH", Name: "Lufthansa"}
		require.NoError(t, f.db.Create(&lufthansa).Error)
		foreign := model.AircraftAirline{AirlineCode: "LH", IdAircraftModel: f.model_.ID}
		require.NoError(t, f.db.Create(&foreign).Error)

		_, err := RemoveFleetUnits(f.db, "AZ", []uint{foreign.ID})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown unit", func(t *testing.T) {
		f := newFixture(t)
		_, err := RemoveFleetUnits(f.db, "AZ", []uint{999})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
