package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

// openTestDB opens a per-test sqlite database with the full schema. The
// database lives in a per-test temp dir; shared-cache in-memory mode is not
// usable here because its table-level locking rejects reads from a second
// pool connection while a write transaction is open.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s/%s.db", t.TempDir(), name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Team{}, &entity.Unit{},
		&entity.Truck{}, &entity.Trailer{}, &entity.Driver{}, &entity.Dispatcher{},
		&entity.CustomerBroker{},
		&entity.Load{}, &entity.Stop{},
		&entity.ChatMessage{}, &entity.Document{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newLoadService(db *gorm.DB) *LoadService {
	loadRepo := repository.NewLoadRepository(db)
	brokerRepo := repository.NewBrokerRepository(db)
	unitSvc := NewUnitService(repository.NewUnitRepository(db))
	return NewLoadService(db, loadRepo, brokerRepo, unitSvc)
}

func fullCaps() utils.Capabilities {
	return utils.RoleCapabilities("admin")
}

func seedBroker(t *testing.T, db *gorm.DB) *entity.CustomerBroker {
	t.Helper()
	broker := entity.CustomerBroker{
		CompanyName: "Acme Logistics",
		MCNumber:    "MC123",
		BillingType: entity.BillingNone,
	}
	if err := db.Create(&broker).Error; err != nil {
		t.Fatalf("seed broker: %v", err)
	}
	return &broker
}

func seedDraft(t *testing.T, svc *LoadService, brokerID uint) *entity.Load {
	t.Helper()
	load, err := svc.CreateDraft(fullCaps(), 1, &CreateDraftReq{
		LoadNumber:     "L1",
		ReferenceID:    "R1",
		CustomerBroker: IDRef{ID: brokerID},
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	return load
}

// seedUnit builds a unit carrying two of everything so first-in-list
// resolution is observable.
func seedUnit(t *testing.T, db *gorm.DB) *entity.Unit {
	t.Helper()
	team := entity.Team{Name: "Team A"}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	unit := entity.Unit{UnitNumber: "U-1", TeamID: &team.ID}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	for i, tr := range []entity.Truck{
		{UnitNumber: "T-1", UnitID: &unit.ID},
		{UnitNumber: "T-2", UnitID: &unit.ID},
	} {
		if err := db.Create(&tr).Error; err != nil {
			t.Fatalf("seed truck %d: %v", i, err)
		}
	}
	for i, tr := range []entity.Trailer{
		{TrailerNumber: "TR-1", Type: entity.EquipmentReefer, UnitID: &unit.ID},
		{TrailerNumber: "TR-2", Type: entity.EquipmentDryVan, UnitID: &unit.ID},
	} {
		if err := db.Create(&tr).Error; err != nil {
			t.Fatalf("seed trailer %d: %v", i, err)
		}
	}
	for i, d := range []entity.Driver{
		{FirstName: "Ana", LastName: "Ortiz", UnitID: &unit.ID},
		{FirstName: "Ben", LastName: "Shaw", UnitID: &unit.ID},
	} {
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("seed driver %d: %v", i, err)
		}
	}
	return &unit
}
