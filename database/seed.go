package database

import (
	"airline_manager/constants"
	"airline_manager/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	roles := []model.Role{
		{Name: constants.ROLE_ADMIN},
		{Name: constants.ROLE_CUSTOMER},
		{Name: constants.ROLE_AIRLINE},
	}
	for _, role := range roles {
		if err := db.Where(model.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			log.Println("failed to seed role:", role.Name, "error:", err)
		}
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte("admin1234"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "admin1234"
	}
	var adminRole model.Role
	db.Where(model.Role{Name: constants.ROLE_ADMIN}).First(&adminRole)
	admin := model.User{
		Name:     "Admin",
		Lastname: "Admin",
		Email:    "admin@airline.local",
		Password: hashPassword,
		IdRole:   adminRole.ID,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}

	classes := []model.ClassSeat{
		{Name: "Economy"},
		{Name: "Business"},
		{Name: "First"},
	}
	for _, class := range classes {
		if err := db.Where(model.ClassSeat{Name: class.Name}).FirstOrCreate(&class).Error; err != nil {
			log.Println("failed to seed class:", class.Name, "error:", err)
		}
	}

	baggage := []model.Baggage{
		{Name: "Cabin bag"},
		{Name: "Checked bag 23kg"},
		{Name: "Checked bag 32kg"},
		{Name: "Special equipment"},
	}
	for _, b := range baggage {
		if err := db.Where(model.Baggage{Name: b.Name}).FirstOrCreate(&b).Error; err != nil {
			log.Println("failed to seed baggage type:", b.Name, "error:", err)
		}
	}

	manufacturers := []model.Manufacturer{
		{Name: "Boeing"},
		{Name: "Airbus"},
		{Name: "Embraer"},
	}
	for _, m := range manufacturers {
		if err := db.Where(model.Manufacturer{Name: m.Name}).FirstOrCreate(&m).Error; err != nil {
			log.Println("failed to seed manufacturer:", m.Name, "error:", err)
		}
	}

	aircraft := []model.Aircraft{
		{Name: "737-800", MaxSeats: 189, CabinMaxCols: 6, CruiseSpeedKmh: 850},
		{Name: "A320neo", MaxSeats: 186, CabinMaxCols: 6, CruiseSpeedKmh: 850},
		{Name: "A350-900", MaxSeats: 325, CabinMaxCols: 9, CruiseSpeedKmh: 900},
		{Name: "E195-E2", MaxSeats: 146, CabinMaxCols: 4, CruiseSpeedKmh: 830},
	}
	for i, a := range aircraft {
		var manufacturer model.Manufacturer
		name := "Boeing"
		if i == 1 || i == 2 {
			name = "Airbus"
		} else if i == 3 {
			name = "Embraer"
		}
		db.Where(model.Manufacturer{Name: name}).First(&manufacturer)
		a.IdManufacturer = manufacturer.ID
		if err := db.Where(model.Aircraft{Name: a.Name}).FirstOrCreate(&a).Error; err != nil {
			log.Println("failed to seed aircraft model:", a.Name, "error:", err)
		}
	}
}
