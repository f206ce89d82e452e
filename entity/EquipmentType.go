package entity

// Equipment types a load can require. Matches trailer cargo types one-to-one
// so a trailer pick can set the load's equipment directly.
const (
	EquipmentDryVan   = "DRYVAN"
	EquipmentReefer   = "REEFER"
	EquipmentStepDeck = "STEPDECK"
	EquipmentLowboy   = "LOWBOY"
	EquipmentCarHaul  = "CARHAUL"
	EquipmentFlatbed  = "FLATBED"
)

var equipmentTypes = map[string]bool{
	EquipmentDryVan:   true,
	EquipmentReefer:   true,
	EquipmentStepDeck: true,
	EquipmentLowboy:   true,
	EquipmentCarHaul:  true,
	EquipmentFlatbed:  true,
}

func ValidEquipmentType(t string) bool { return equipmentTypes[t] }
