package repository

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"gorm.io/gorm"
)

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db}
}

// assignment lists come back ordered so index 0 is the active one
func (r *UnitRepository) GetByID(id uint) (*entity.Unit, error) {
	var unit entity.Unit
	err := r.db.
		Preload("Trucks", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Trailers", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Drivers", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *UnitRepository) List() ([]entity.Unit, error) {
	var units []entity.Unit
	err := r.db.
		Preload("Trucks", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Trailers", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Drivers", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("unit_number ASC").
		Find(&units).Error
	return units, err
}

func (r *UnitRepository) GetTrailer(id uint) (*entity.Trailer, error) {
	var trailer entity.Trailer
	if err := r.db.First(&trailer, id).Error; err != nil {
		return nil, err
	}
	return &trailer, nil
}
