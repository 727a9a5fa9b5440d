package model

type ClassSeat struct {
	DTO
	Name string `gorm:"unique;not null" json:"name"` // Economy, Business, First
}

// Cabin is one rectangular seating block of a fleet unit
type Cabin struct {
	DTO
	IdAircraft uint            `gorm:"not null" json:"idAircraft"`
	Aircraft   AircraftAirline `gorm:"foreignKey:IdAircraft;constraint:OnDelete:CASCADE" json:"-"`
	IdClass    *uint           `json:"idClass"`
	ClassSeat  ClassSeat       `gorm:"foreignKey:IdClass;constraint:OnDelete:SET NULL" json:"classSeat"`
	Rows       int             `gorm:"not null" json:"rows"`
	Cols       int             `gorm:"not null" json:"cols"`

	Cells []Cell `gorm:"foreignKey:IdCabin;constraint:OnDelete:CASCADE" json:"cells"`
}

// Cell is one grid position; IsSeat false means aisle / gap
type Cell struct {
	DTO
	IdCabin uint  `gorm:"not null;uniqueIndex:uq_cabin_position" json:"idCabin"`
	Cabin   Cabin `gorm:"foreignKey:IdCabin;constraint:OnDelete:CASCADE" json:"-"`
	X       int   `gorm:"not null;uniqueIndex:uq_cabin_position" json:"x"`
	Y       int   `gorm:"not null;uniqueIndex:uq_cabin_position" json:"y"`
	IsSeat  bool  `gorm:"default:false" json:"isSeat"`
}

type InsertBlockInput struct {
	AirlineCode       string   `json:"airlineCode" validate:"required,len=2"`
	IdAircraftAirline uint     `json:"idAircraftAirline" validate:"required,gt=0"`
	IdClass           uint     `json:"idClass" validate:"required,gt=0"`
	Matrix            [][]bool `json:"matrix" validate:"required,min=1"`
}

type CloneSeatMapInput struct {
	AirlineCode string `json:"airlineCode" validate:"required,len=2"`
	SourceId    uint   `json:"sourceId" validate:"required,gt=0"`
	TargetId    uint   `json:"targetId" validate:"required,gt=0"`
}

type SeatMapCabin struct {
	IdCabin   uint          `json:"idCabin"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	IdClass   *uint         `json:"idClass"`
	ClassName string        `json:"className"`
	Cells     []SeatMapCell `json:"cells"`
}

type SeatMapCell struct {
	IdCell uint `json:"idCell"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	IsSeat bool `json:"isSeat"`
}
