package model

type Role struct {
	DTO
	Name string `gorm:"unique;not null" json:"name"`
}

type User struct {
	DTO
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Lastname    string  `gorm:"not null" validate:"required" json:"lastname"`
	Email       string  `gorm:"unique;not null" validate:"required,email" json:"email"`
	Password    string  `gorm:"not null" json:"-"`
	IdRole      uint    `gorm:"not null" json:"idRole"`
	Role        Role    `gorm:"foreignKey:IdRole" json:"role"`
	AirlineCode *string `gorm:"size:2" json:"airlineCode"`
	Airline     Airline `gorm:"foreignKey:AirlineCode" json:"-"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Lastname string `json:"lastname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
