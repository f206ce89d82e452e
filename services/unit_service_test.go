package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
)

func TestResolveFirstInListWins(t *testing.T) {
	db := openTestDB(t)
	svc := NewUnitService(repository.NewUnitRepository(db))
	unit := seedUnit(t, db)

	links, err := svc.Resolve(unit.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var firstTruck entity.Truck
	db.Where("unit_id = ?", unit.ID).Order("id ASC").First(&firstTruck)
	if links.TruckID == nil || *links.TruckID != firstTruck.ID {
		t.Errorf("truck: want %d got %v", firstTruck.ID, links.TruckID)
	}

	var firstTrailer entity.Trailer
	db.Where("unit_id = ?", unit.ID).Order("id ASC").First(&firstTrailer)
	if links.TrailerID == nil || *links.TrailerID != firstTrailer.ID {
		t.Errorf("trailer: want %d got %v", firstTrailer.ID, links.TrailerID)
	}

	// equipment comes from the first trailer's cargo type
	if links.EquipmentType != entity.EquipmentReefer {
		t.Errorf("equipment: want REEFER got %q", links.EquipmentType)
	}

	if links.DriverID == nil {
		t.Error("driver should resolve")
	}
	if links.TeamID == nil || *links.TeamID != *unit.TeamID {
		t.Errorf("team: want %v got %v", unit.TeamID, links.TeamID)
	}
}

func TestResolveEmptyUnit(t *testing.T) {
	db := openTestDB(t)
	svc := NewUnitService(repository.NewUnitRepository(db))

	unit := entity.Unit{UnitNumber: "U-EMPTY"}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}

	links, err := svc.Resolve(unit.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if links.TruckID != nil || links.TrailerID != nil || links.DriverID != nil {
		t.Errorf("empty unit should resolve nothing, got %+v", links)
	}
	if links.EquipmentType != "" {
		t.Errorf("equipment should stay unset, got %q", links.EquipmentType)
	}
}

func TestResolveUnknownUnit(t *testing.T) {
	db := openTestDB(t)
	svc := NewUnitService(repository.NewUnitRepository(db))

	if _, err := svc.Resolve(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyUnitCascadesAndClears(t *testing.T) {
	db := openTestDB(t)
	svc := newLoadService(db)
	broker := seedBroker(t, db)
	load := seedDraft(t, svc, broker.ID)
	unit := seedUnit(t, db)

	// select the unit
	updated, err := svc.ApplyUnit(fullCaps(), load.ID, load.Version, &unit.ID)
	if err != nil {
		t.Fatalf("apply unit: %v", err)
	}
	if updated.TruckID == nil || updated.TrailerID == nil || updated.DriverID == nil || updated.TeamID == nil {
		t.Fatalf("unit selection should set all links, got %+v", updated)
	}
	if updated.EquipmentType != entity.EquipmentReefer {
		t.Errorf("equipment: want REEFER got %q", updated.EquipmentType)
	}

	// deselect: no stale references may survive
	cleared, err := svc.ApplyUnit(fullCaps(), load.ID, updated.Version, nil)
	if err != nil {
		t.Fatalf("clear unit: %v", err)
	}
	if cleared.TruckID != nil || cleared.TrailerID != nil || cleared.DriverID != nil || cleared.TeamID != nil {
		t.Errorf("deselect must clear truck/trailer/driver/team, got %+v", cleared)
	}
}

func TestApplyUnknownUnit(t *testing.T) {
	db := openTestDB(t)
	svc := newLoadService(db)
	broker := seedBroker(t, db)
	load := seedDraft(t, svc, broker.ID)

	unknown := uint(404)
	if _, err := svc.ApplyUnit(fullCaps(), load.ID, load.Version, &unknown); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIDRefAcceptsBareIDAndObject(t *testing.T) {
	var ref IDRef
	if err := json.Unmarshal([]byte(`7`), &ref); err != nil {
		t.Fatalf("bare id: %v", err)
	}
	if ref.ID != 7 {
		t.Errorf("bare id: got %d", ref.ID)
	}

	if err := json.Unmarshal([]byte(`{"id":9,"company_name":"Acme"}`), &ref); err != nil {
		t.Fatalf("expanded object: %v", err)
	}
	if ref.ID != 9 {
		t.Errorf("expanded object: got %d", ref.ID)
	}
}
