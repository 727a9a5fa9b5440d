package helper

import (
	"airline_manager/model"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// SeatCount counts configured seat cells across every cabin of a fleet
// unit. Sale status is irrelevant here.
func SeatCount(db *gorm.DB, idAircraftAirline uint) (int, error) {
	var count int64
	err := db.Model(&model.Cell{}).
		Joins("JOIN cabins ON cabins.id = cells.id_cabin").
		Where("cabins.id_aircraft = ? AND cells.is_seat = ?", idAircraftAirline, true).
		Count(&count).Error
	return int(count), err
}

// FleetUnitModel loads a fleet unit together with its aircraft model limits
func FleetUnitModel(db *gorm.DB, idAircraftAirline uint) (*model.AircraftAirline, error) {
	var unit model.AircraftAirline
	err := db.Preload("Aircraft").First(&unit, idAircraftAirline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("fleet unit %d: %w", idAircraftAirline, ErrNotFound)
		}
		return nil, err
	}
	return &unit, nil
}

// RemoveFleetUnits retires the given fleet units of one airline, all or
// nothing. A unit of another airline or one already serving flights
// fails the whole batch.
func RemoveFleetUnits(db *gorm.DB, airlineCode string, ids []uint) ([]uint, error) {
	var deleted []uint
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			unit, err := FleetUnitModel(tx, id)
			if err != nil {
				return err
			}
			if unit.AirlineCode != airlineCode {
				return fmt.Errorf("fleet unit %d belongs to %s: %w", id, unit.AirlineCode, ErrValidation)
			}
			var flights int64
			if err := tx.Model(&model.Flight{}).Where("id_aircraft = ?", unit.ID).Count(&flights).Error; err != nil {
				return err
			}
			if flights > 0 {
				return fmt.Errorf("fleet unit %d serves flights: %w", id, ErrScheduleConflict)
			}
			if err := tx.Delete(&model.AircraftAirline{}, unit.ID).Error; err != nil {
				return err
			}
			deleted = append(deleted, unit.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// InsertBlock appends one cabin built from a boolean seat matrix,
// guarding the model's column and seat ceilings. Runs in the caller's
// transaction; on error nothing must be kept.
func InsertBlock(tx *gorm.DB, matrix [][]bool, idClass uint, idAircraftAirline uint) error {
	var class model.ClassSeat
	if err := tx.First(&class, idClass).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("class %d: %w", idClass, ErrNotFound)
		}
		return err
	}

	unit, err := FleetUnitModel(tx, idAircraftAirline)
	if err != nil {
		return err
	}

	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return fmt.Errorf("empty seat matrix: %w", ErrValidation)
	}

	cols := len(matrix[0])
	if cols > unit.Aircraft.CabinMaxCols {
		return fmt.Errorf("block has %d columns, model allows %d: %w", cols, unit.Aircraft.CabinMaxCols, ErrCapacityExceeded)
	}

	newSeats := 0
	for _, row := range matrix {
		for _, isSeat := range row {
			if isSeat {
				newSeats++
			}
		}
	}

	existing, err := SeatCount(tx, idAircraftAirline)
	if err != nil {
		return err
	}
	if newSeats+existing > unit.Aircraft.MaxSeats {
		return fmt.Errorf("%d seats over the model maximum of %d: %w", newSeats+existing, unit.Aircraft.MaxSeats, ErrCapacityExceeded)
	}

	cabin := model.Cabin{
		IdAircraft: idAircraftAirline,
		IdClass:    &idClass,
		Rows:       len(matrix),
		Cols:       cols,
	}
	if err := tx.Create(&cabin).Error; err != nil {
		return err
	}

	cells := make([]model.Cell, 0, len(matrix)*cols)
	for y, row := range matrix {
		for x, isSeat := range row {
			cells = append(cells, model.Cell{
				IdCabin: cabin.ID,
				X:       x,
				Y:       y,
				IsSeat:  isSeat,
			})
		}
	}
	return tx.Create(&cells).Error
}

// CloneSeatMap copies every cabin and cell from one fleet unit to
// another. Column counts must match exactly and the seats must fit the
// target model. Any existing target configuration is replaced, not
// merged; the whole thing is one transaction.
func CloneSeatMap(db *gorm.DB, sourceId, targetId uint) (int, error) {
	source, err := FleetUnitModel(db, sourceId)
	if err != nil {
		return 0, err
	}
	target, err := FleetUnitModel(db, targetId)
	if err != nil {
		return 0, err
	}

	if source.Aircraft.CabinMaxCols != target.Aircraft.CabinMaxCols {
		return 0, fmt.Errorf("source cols=%d, target cols=%d: %w",
			source.Aircraft.CabinMaxCols, target.Aircraft.CabinMaxCols, ErrIncompatibleLayout)
	}

	seats, err := SeatCount(db, sourceId)
	if err != nil {
		return 0, err
	}
	if seats > target.Aircraft.MaxSeats {
		return 0, fmt.Errorf("source has %d seats, target max_seats=%d: %w",
			seats, target.Aircraft.MaxSeats, ErrCapacityExceeded)
	}

	var sourceCabins []model.Cabin
	if err := db.Preload("Cells").Where("id_aircraft = ?", sourceId).Find(&sourceCabins).Error; err != nil {
		return 0, err
	}
	if len(sourceCabins) == 0 {
		return 0, fmt.Errorf("fleet unit %d has no cabins: %w", sourceId, ErrNotFound)
	}

	copied := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		var targetCabinIds []uint
		if err := tx.Model(&model.Cabin{}).Where("id_aircraft = ?", targetId).Pluck("id", &targetCabinIds).Error; err != nil {
			return err
		}
		if len(targetCabinIds) > 0 {
			if err := tx.Where("id_cabin IN ?", targetCabinIds).Delete(&model.Cell{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", targetCabinIds).Delete(&model.Cabin{}).Error; err != nil {
				return err
			}
		}

		for _, sourceCabin := range sourceCabins {
			newCabin := model.Cabin{
				IdAircraft: targetId,
				IdClass:    sourceCabin.IdClass,
				Rows:       sourceCabin.Rows,
				Cols:       sourceCabin.Cols,
			}
			if err := tx.Create(&newCabin).Error; err != nil {
				return err
			}

			newCells := make([]model.Cell, 0, len(sourceCabin.Cells))
			for _, cell := range sourceCabin.Cells {
				var newCell model.Cell
				copier.Copy(&newCell, &cell)
				newCell.ID = 0
				newCell.IdCabin = newCabin.ID
				newCells = append(newCells, newCell)
			}
			if err := tx.Create(&newCells).Error; err != nil {
				return err
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return copied, nil
}

// SeatMapJSON builds the cabin/cell view the dashboard renders
func SeatMapJSON(db *gorm.DB, idAircraftAirline uint) ([]model.SeatMapCabin, error) {
	var cabins []model.Cabin
	err := db.Preload("Cells").Preload("ClassSeat").
		Where("id_aircraft = ?", idAircraftAirline).
		Order("id").
		Find(&cabins).Error
	if err != nil {
		return nil, err
	}

	seatMap := make([]model.SeatMapCabin, 0, len(cabins))
	for _, cabin := range cabins {
		entry := model.SeatMapCabin{
			IdCabin:   cabin.ID,
			Rows:      cabin.Rows,
			Cols:      cabin.Cols,
			IdClass:   cabin.IdClass,
			ClassName: cabin.ClassSeat.Name,
		}
		for _, cell := range cabin.Cells {
			entry.Cells = append(entry.Cells, model.SeatMapCell{
				IdCell: cell.ID,
				X:      cell.X,
				Y:      cell.Y,
				IsSeat: cell.IsSeat,
			})
		}
		seatMap = append(seatMap, entry)
	}
	return seatMap, nil
}

// AircraftBySeat resolves the fleet unit owning a cell
func AircraftBySeat(db *gorm.DB, idSeat uint) (uint, error) {
	var cell model.Cell
	if err := db.Preload("Cabin").First(&cell, idSeat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("seat %d: %w", idSeat, ErrNotFound)
		}
		return 0, err
	}
	return cell.Cabin.IdAircraft, nil
}

// ClassBySeat resolves the class of a cell's cabin, nil when unset
func ClassBySeat(db *gorm.DB, idSeat uint) (*uint, error) {
	var cell model.Cell
	if err := db.Preload("Cabin").First(&cell, idSeat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("seat %d: %w", idSeat, ErrNotFound)
		}
		return nil, err
	}
	return cell.Cabin.IdClass, nil
}
