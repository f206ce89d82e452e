package repository

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"gorm.io/gorm"
)

type BrokerRepository struct {
	db *gorm.DB
}

func NewBrokerRepository(db *gorm.DB) *BrokerRepository {
	return &BrokerRepository{db}
}

func (r *BrokerRepository) Create(broker *entity.CustomerBroker) error {
	return r.db.Create(broker).Error
}

func (r *BrokerRepository) GetByID(id uint) (*entity.CustomerBroker, error) {
	var broker entity.CustomerBroker
	if err := r.db.First(&broker, id).Error; err != nil {
		return nil, err
	}
	return &broker, nil
}

func (r *BrokerRepository) List() ([]entity.CustomerBroker, error) {
	var brokers []entity.CustomerBroker
	err := r.db.Order("company_name ASC").Find(&brokers).Error
	return brokers, err
}

func (r *BrokerRepository) CountByMCNumber(mc string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.CustomerBroker{}).Where("mc_number = ?", mc).Count(&count).Error
	return count, err
}

func (r *BrokerRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.CustomerBroker{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
