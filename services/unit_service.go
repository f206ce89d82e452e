package services

import (
	"errors"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
	"gorm.io/gorm"
)

type UnitService struct {
	repo *repository.UnitRepository
}

func NewUnitService(repo *repository.UnitRepository) *UnitService {
	return &UnitService{repo}
}

// ResolvedLinks is what a unit selection contributes to a load. Nil means the
// unit has nothing in that slot.
type ResolvedLinks struct {
	TruckID       *uint  `json:"truck"`
	TrailerID     *uint  `json:"trailer"`
	DriverID      *uint  `json:"driver"`
	TeamID        *uint  `json:"team"`
	EquipmentType string `json:"equipment_type"`
}

// Resolve picks the first truck, trailer and driver of the unit. When a
// trailer resolves, its cargo type becomes the equipment type; that lookup is
// best-effort and never fails the resolution.
func (s *UnitService) Resolve(unitID uint) (*ResolvedLinks, error) {
	unit, err := s.repo.GetByID(unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	links := &ResolvedLinks{TeamID: unit.TeamID}
	if len(unit.Trucks) > 0 {
		id := unit.Trucks[0].ID
		links.TruckID = &id
	}
	if len(unit.Drivers) > 0 {
		id := unit.Drivers[0].ID
		links.DriverID = &id
	}
	if len(unit.Trailers) > 0 {
		id := unit.Trailers[0].ID
		links.TrailerID = &id

		trailer, err := s.repo.GetTrailer(id)
		if err == nil && entity.ValidEquipmentType(trailer.Type) {
			links.EquipmentType = trailer.Type
		}
	}
	return links, nil
}

func (s *UnitService) Get(caps utils.Capabilities, unitID uint) (*entity.Unit, error) {
	if !caps.Allow(utils.PermUnitsView) {
		return nil, ErrForbidden
	}
	unit, err := s.repo.GetByID(unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return unit, nil
}

func (s *UnitService) List(caps utils.Capabilities) ([]entity.Unit, error) {
	if !caps.Allow(utils.PermUnitsView) {
		return nil, ErrForbidden
	}
	return s.repo.List()
}

func (s *UnitService) GetTrailer(caps utils.Capabilities, trailerID uint) (*entity.Trailer, error) {
	if !caps.Allow(utils.PermUnitsView) {
		return nil, ErrForbidden
	}
	trailer, err := s.repo.GetTrailer(trailerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trailer, nil
}
