package configs

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Team{}, &entity.Unit{},
		&entity.Truck{}, &entity.Trailer{}, &entity.Driver{}, &entity.Dispatcher{},
		&entity.CustomerBroker{},
		&entity.Load{}, &entity.Stop{},
		&entity.ChatMessage{}, &entity.Document{},
	)
}
