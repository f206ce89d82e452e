package configs

import (
	"log"
	"os"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := os.Getenv("ADMIN_EMAIL")
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedFleet puts a small demo fleet in place so unit resolution works on a
// fresh database. Idempotent via FirstOrCreate.
func SeedFleet() error {
	db := DB()

	team := entity.Team{Name: "Night Team"}
	db.FirstOrCreate(&team, entity.Team{Name: "Night Team"})

	unit := entity.Unit{UnitNumber: "U-100", TeamID: &team.ID}
	db.FirstOrCreate(&unit, entity.Unit{UnitNumber: "U-100"})

	db.FirstOrCreate(&entity.Truck{}, entity.Truck{UnitNumber: "T-100", UnitID: &unit.ID})
	db.FirstOrCreate(&entity.Trailer{}, entity.Trailer{TrailerNumber: "TR-100", Type: entity.EquipmentDryVan, UnitID: &unit.ID})
	db.FirstOrCreate(&entity.Driver{}, entity.Driver{FirstName: "Sam", LastName: "Carter", UnitID: &unit.ID})
	db.FirstOrCreate(&entity.Dispatcher{}, entity.Dispatcher{FirstName: "Dana", LastName: "Reyes", Nickname: "DR"})

	return nil
}
