package entity

import (
	"gorm.io/gorm"
)

// Billing types for a broker. NONE is the default for inline-created brokers.
const (
	BillingNone             = "NONE"
	BillingFactoringCompany = "FACTORING_COMPANY"
	BillingEmail            = "EMAIL"
	BillingManual           = "MANUAL"
)

var billingTypes = map[string]bool{
	BillingNone:             true,
	BillingFactoringCompany: true,
	BillingEmail:            true,
	BillingManual:           true,
}

func ValidBillingType(t string) bool { return billingTypes[t] }

type CustomerBroker struct {
	gorm.Model
	CompanyName   string `json:"company_name"`
	MCNumber      string `json:"mc_number" gorm:"column:mc_number;uniqueIndex"`
	ContactNumber string `json:"contact_number"`
	EmailAddress  string `json:"email_address"`

	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	// blank zip stays NULL, never coerced to zero
	ZipCode *string `json:"zip_code"`

	BillingType string `json:"billing_type" gorm:"default:NONE"`

	Loads []Load `json:"-" gorm:"foreignKey:CustomerBrokerID"`
}
