package services

import (
	"regexp"
	"strings"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

type BrokerService struct {
	repo *repository.BrokerRepository
}

func NewBrokerService(repo *repository.BrokerRepository) *BrokerService {
	return &BrokerService{repo}
}

type CreateBrokerReq struct {
	CompanyName   string `json:"company_name"`
	MCNumber      string `json:"mc_number"`
	ContactNumber string `json:"contact_number"`
	EmailAddress  string `json:"email_address"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	ZipCode       string `json:"zip_code"`
	BillingType   string `json:"billing_type"`
}

// CreateInline provisions a broker without leaving the load-creation flow.
// The returned broker is immediately selectable for the in-progress draft.
func (s *BrokerService) CreateInline(caps utils.Capabilities, req *CreateBrokerReq) (*entity.CustomerBroker, error) {
	if !caps.Allow(utils.PermBrokersCreate) {
		return nil, ErrForbidden
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.MCNumber = strings.TrimSpace(req.MCNumber)

	fieldErrs := FieldErrors{}
	if req.CompanyName == "" {
		fieldErrs["company_name"] = "required"
	}
	if req.MCNumber == "" {
		fieldErrs["mc_number"] = "required"
	}
	if req.EmailAddress != "" && !emailPattern.MatchString(req.EmailAddress) {
		fieldErrs["email_address"] = "invalid email address"
	}
	if req.ContactNumber != "" && !digitsPattern.MatchString(req.ContactNumber) {
		fieldErrs["contact_number"] = "digits only"
	}
	billing := req.BillingType
	if billing == "" {
		billing = entity.BillingNone
	}
	if !entity.ValidBillingType(billing) {
		fieldErrs["billing_type"] = "unknown billing type"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	count, err := s.repo.CountByMCNumber(req.MCNumber)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, FieldErrors{"mc_number": "already registered"}
	}

	broker := entity.CustomerBroker{
		CompanyName:   req.CompanyName,
		MCNumber:      req.MCNumber,
		ContactNumber: req.ContactNumber,
		EmailAddress:  req.EmailAddress,
		Address1:      req.Address1,
		Address2:      req.Address2,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		BillingType:   billing,
	}
	// blank zip stays NULL, not zero
	if zip := strings.TrimSpace(req.ZipCode); zip != "" {
		broker.ZipCode = &zip
	}

	if err := s.repo.Create(&broker); err != nil {
		return nil, err
	}
	return &broker, nil
}

func (s *BrokerService) List(caps utils.Capabilities) ([]entity.CustomerBroker, error) {
	if !caps.Allow(utils.PermBrokersView) {
		return nil, ErrForbidden
	}
	return s.repo.List()
}
