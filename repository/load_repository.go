package repository

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"gorm.io/gorm"
)

type LoadRepository struct {
	db *gorm.DB
}

func NewLoadRepository(db *gorm.DB) *LoadRepository {
	return &LoadRepository{db}
}

func (r *LoadRepository) Create(tx *gorm.DB, load *entity.Load) error {
	return tx.Create(load).Error
}

func (r *LoadRepository) GetByID(id uint) (*entity.Load, error) {
	var load entity.Load
	err := r.db.
		Preload("CustomerBroker").
		Preload("Driver").
		Preload("Dispatcher").
		Preload("Truck").
		Preload("Trailer").
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		First(&load, id).Error
	if err != nil {
		return nil, err
	}
	return &load, nil
}

func (r *LoadRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Load{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *LoadRepository) List() ([]entity.Load, error) {
	var loads []entity.Load
	err := r.db.Order("created_at DESC").Find(&loads).Error
	return loads, err
}

// UpdateFieldsGuard applies a partial update only if the caller's version is
// still current, bumping version in the same statement. RowsAffected == 0
// means the load changed underneath the caller (or does not exist).
func (r *LoadRepository) UpdateFieldsGuard(tx *gorm.DB, loadID, version uint, fields map[string]any) (int64, error) {
	fields["version"] = gorm.Expr("version + 1")
	res := tx.Model(&entity.Load{}).
		Where("id = ? AND version = ?", loadID, version).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// AdvanceStatusGuard moves load_status from one label to the next in a single
// guarded update. Guards on both the current label and the version so a
// concurrent advance or edit makes this a no-op.
func (r *LoadRepository) AdvanceStatusGuard(tx *gorm.DB, loadID, version uint, fromLabel, toLabel, updatedDate string) (int64, error) {
	res := tx.Model(&entity.Load{}).
		Where("id = ? AND load_status = ? AND version = ?", loadID, fromLabel, version).
		Updates(map[string]any{
			"load_status":  toLabel,
			"updated_date": updatedDate,
			"version":      gorm.Expr("version + 1"),
		})
	return res.RowsAffected, res.Error
}
