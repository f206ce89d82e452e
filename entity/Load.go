package entity

import (
	"gorm.io/gorm"
)

type Load struct {
	gorm.Model
	// Version increases on every successful write; writes carrying a stale
	// version are rejected instead of silently overwriting.
	Version uint `json:"version" gorm:"default:1"`

	LoadNumber  string `json:"load_id" gorm:"column:load_number"`
	ReferenceID string `json:"reference_id"`

	CompanyName  string `json:"company_name"`
	Instructions string `json:"instructions"`
	Bills        string `json:"bills"`

	EquipmentType string `json:"equipment_type"`
	LoadStatus    string `json:"load_status"`

	LoadPay    *float64 `json:"load_pay"`
	TotalPay   *float64 `json:"total_pay"`
	PerMile    *float64 `json:"per_mile"`
	TotalMiles *float64 `json:"total_miles"`

	// Wire format for all four dates is YYYY-MM-DD.
	PickupDate   string `json:"pickup_date"`
	DeliveryDate string `json:"delivery_date"`
	CreatedDate  string `json:"created_date"`
	UpdatedDate  string `json:"updated_date"`

	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`

	CustomerBrokerID uint           `json:"customer_broker"`
	CustomerBroker   CustomerBroker `json:"-"` // preload only on detail

	DriverID     *uint       `json:"driver"`
	Driver       *Driver     `json:"-"`
	DispatcherID *uint       `json:"dispatcher"`
	Dispatcher   *Dispatcher `json:"-"`
	TruckID      *uint       `json:"truck"`
	Truck        *Truck      `json:"-"`
	TrailerID    *uint       `json:"trailer"`
	Trailer      *Trailer    `json:"-"`
	TeamID       *uint       `json:"team"`

	CreatedByID uint `json:"created_by"`

	// stop records ride along with the load; not mutated by the workflow
	Stops []Stop `json:"-" gorm:"foreignKey:LoadID"`

	ChatMessages []ChatMessage `json:"-" gorm:"foreignKey:LoadID"`
	Documents    []Document    `json:"-" gorm:"foreignKey:LoadID"`
}
