package services

import (
	"encoding/json"
	"errors"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
	"gorm.io/gorm"
)

// IDRef normalizes reference fields at the store boundary: callers may send a
// bare id or an expanded object, only the id is kept either way.
type IDRef struct {
	ID uint
}

func (r *IDRef) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}
	var obj struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	return nil
}

func (r *IDRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

type LoadService struct {
	DB         *gorm.DB
	Repo       *repository.LoadRepository
	BrokerRepo *repository.BrokerRepository
	Units      *UnitService
}

func NewLoadService(db *gorm.DB, repo *repository.LoadRepository, brokerRepo *repository.BrokerRepository, units *UnitService) *LoadService {
	return &LoadService{DB: db, Repo: repo, BrokerRepo: brokerRepo, Units: units}
}

// ----- Draft creation -----

type CreateDraftReq struct {
	LoadNumber     string `json:"load_id"`
	ReferenceID    string `json:"reference_id"`
	CustomerBroker IDRef  `json:"customer_broker"`
}

// CreateDraft is the only write allowed before a load has an id. It takes the
// minimal triple and opens the load at stage OPEN.
func (s *LoadService) CreateDraft(caps utils.Capabilities, userID uint, req *CreateDraftReq) (*entity.Load, error) {
	if !caps.Allow(utils.PermLoadsCreate) {
		return nil, ErrForbidden
	}

	fieldErrs := FieldErrors{}
	if req.LoadNumber == "" {
		fieldErrs["load_id"] = "required"
	}
	if req.ReferenceID == "" {
		fieldErrs["reference_id"] = "required"
	}
	if req.CustomerBroker.ID == 0 {
		fieldErrs["customer_broker"] = "required"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	ok, err := s.BrokerRepo.Exists(req.CustomerBroker.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	today := utils.Today()
	load := entity.Load{
		Version:          1,
		LoadNumber:       req.LoadNumber,
		ReferenceID:      req.ReferenceID,
		CustomerBrokerID: req.CustomerBroker.ID,
		LoadStatus:       entity.StageOpen.Label(),
		CreatedDate:      today,
		UpdatedDate:      today,
		CreatedByID:      userID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &load)
	})
	if err != nil {
		return nil, err
	}
	return &load, nil
}

// ----- Partial stage-flow update -----

// LoadPatch carries the subset of fields a stage screen submits. Nil means
// "leave unchanged". load_status is deliberately absent: status moves only
// through Advance.
type LoadPatch struct {
	LoadNumber  *string `json:"load_id"`
	ReferenceID *string `json:"reference_id"`

	CompanyName  *string `json:"company_name"`
	Instructions *string `json:"instructions"`
	Bills        *string `json:"bills"`

	EquipmentType *string `json:"equipment_type"`

	LoadPay    *float64 `json:"load_pay"`
	TotalPay   *float64 `json:"total_pay"`
	PerMile    *float64 `json:"per_mile"`
	TotalMiles *float64 `json:"total_miles"`

	PickupDate   *string `json:"pickup_date"`
	DeliveryDate *string `json:"delivery_date"`

	PickupLocation   *string `json:"pickup_location"`
	DeliveryLocation *string `json:"delivery_location"`

	CustomerBroker *IDRef `json:"customer_broker"`
	Driver         *IDRef `json:"driver"`
	Dispatcher     *IDRef `json:"dispatcher"`
}

func (p *LoadPatch) fields() (map[string]any, error) {
	fieldErrs := FieldErrors{}
	out := map[string]any{}

	setStr := func(col string, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	setStr("load_number", p.LoadNumber)
	setStr("reference_id", p.ReferenceID)
	setStr("company_name", p.CompanyName)
	setStr("instructions", p.Instructions)
	setStr("bills", p.Bills)
	setStr("pickup_location", p.PickupLocation)
	setStr("delivery_location", p.DeliveryLocation)

	if p.EquipmentType != nil {
		if *p.EquipmentType != "" && !entity.ValidEquipmentType(*p.EquipmentType) {
			fieldErrs["equipment_type"] = "unknown equipment type"
		} else {
			out["equipment_type"] = *p.EquipmentType
		}
	}

	setNum := func(col string, v *float64) {
		if v != nil {
			out[col] = *v
		}
	}
	setNum("load_pay", p.LoadPay)
	setNum("total_pay", p.TotalPay)
	setNum("per_mile", p.PerMile)
	setNum("total_miles", p.TotalMiles)

	setDate := func(col, field string, v *string) {
		if v == nil {
			return
		}
		norm, err := utils.NormalizeDate(*v)
		if err != nil {
			fieldErrs[field] = "expected YYYY-MM-DD"
			return
		}
		out[col] = norm
	}
	setDate("pickup_date", "pickup_date", p.PickupDate)
	setDate("delivery_date", "delivery_date", p.DeliveryDate)

	if p.CustomerBroker != nil {
		out["customer_broker_id"] = p.CustomerBroker.ID
	}
	if p.Driver != nil {
		out["driver_id"] = p.Driver.ID
	}
	if p.Dispatcher != nil {
		out["dispatcher_id"] = p.Dispatcher.ID
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return out, nil
}

// PatchStage applies the changed fields a stage screen submitted. Validation
// happens before any write; the write is rejected when the caller's version
// is stale.
func (s *LoadService) PatchStage(caps utils.Capabilities, loadID, version uint, patch *LoadPatch) (*entity.Load, error) {
	if !caps.Allow(utils.PermLoadsEdit) {
		return nil, ErrForbidden
	}

	fields, err := patch.fields()
	if err != nil {
		return nil, err
	}
	fields["updated_date"] = utils.Today()

	if err := s.applyGuarded(loadID, version, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(loadID)
}

// ----- Full ad hoc save -----

// SaveReq is the full-record replace used outside the stage flow. Every field
// is written as given; load_status is still untouched.
type SaveReq struct {
	LoadNumber  string `json:"load_id"`
	ReferenceID string `json:"reference_id"`

	CompanyName  string `json:"company_name"`
	Instructions string `json:"instructions"`
	Bills        string `json:"bills"`

	EquipmentType string `json:"equipment_type"`

	LoadPay    *float64 `json:"load_pay"`
	TotalPay   *float64 `json:"total_pay"`
	PerMile    *float64 `json:"per_mile"`
	TotalMiles *float64 `json:"total_miles"`

	PickupDate   string `json:"pickup_date"`
	DeliveryDate string `json:"delivery_date"`

	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`

	CustomerBroker IDRef  `json:"customer_broker"`
	Driver         *IDRef `json:"driver"`
	Dispatcher     *IDRef `json:"dispatcher"`
}

func (s *LoadService) Save(caps utils.Capabilities, loadID, version uint, req *SaveReq) (*entity.Load, error) {
	if !caps.Allow(utils.PermLoadsEdit) {
		return nil, ErrForbidden
	}

	fieldErrs := FieldErrors{}
	if req.LoadNumber == "" {
		fieldErrs["load_id"] = "required"
	}
	if req.ReferenceID == "" {
		fieldErrs["reference_id"] = "required"
	}
	if req.CustomerBroker.ID == 0 {
		fieldErrs["customer_broker"] = "required"
	}
	if req.EquipmentType != "" && !entity.ValidEquipmentType(req.EquipmentType) {
		fieldErrs["equipment_type"] = "unknown equipment type"
	}

	pickup, err := utils.NormalizeDate(req.PickupDate)
	if err != nil {
		fieldErrs["pickup_date"] = "expected YYYY-MM-DD"
	}
	delivery, err := utils.NormalizeDate(req.DeliveryDate)
	if err != nil {
		fieldErrs["delivery_date"] = "expected YYYY-MM-DD"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	fields := map[string]any{
		"load_number":        req.LoadNumber,
		"reference_id":       req.ReferenceID,
		"company_name":       req.CompanyName,
		"instructions":       req.Instructions,
		"bills":              req.Bills,
		"equipment_type":     req.EquipmentType,
		"load_pay":           req.LoadPay,
		"total_pay":          req.TotalPay,
		"per_mile":           req.PerMile,
		"total_miles":        req.TotalMiles,
		"pickup_date":        pickup,
		"delivery_date":      delivery,
		"pickup_location":    req.PickupLocation,
		"delivery_location":  req.DeliveryLocation,
		"customer_broker_id": req.CustomerBroker.ID,
		"updated_date":       utils.Today(),
	}
	if req.Driver != nil {
		fields["driver_id"] = req.Driver.ID
	} else {
		fields["driver_id"] = nil
	}
	if req.Dispatcher != nil {
		fields["dispatcher_id"] = req.Dispatcher.ID
	} else {
		fields["dispatcher_id"] = nil
	}

	if err := s.applyGuarded(loadID, version, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(loadID)
}

// ----- Stage advance -----

// Advance moves the load to the next stage after the required-field check.
// A failed advance leaves the load exactly as it was.
func (s *LoadService) Advance(caps utils.Capabilities, loadID, version uint) (*entity.Load, error) {
	if !caps.Allow(utils.PermLoadsAdvance) {
		return nil, ErrForbidden
	}

	load, err := s.Repo.GetByID(loadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if load.Version != version {
		return nil, ErrStaleWrite
	}

	_, toLabel, err := NextTransition(load)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.AdvanceStatusGuard(tx, loadID, version, load.LoadStatus, toLabel, utils.Today())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleWrite
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(loadID)
}

// ----- Unit assignment -----

// ApplyUnit cascades a unit selection onto the load: first truck, trailer and
// driver of the unit, the unit's team, and the equipment type inferred from
// the trailer. A nil unitID clears all four links so no stale assignment
// survives a deselection.
func (s *LoadService) ApplyUnit(caps utils.Capabilities, loadID, version uint, unitID *uint) (*entity.Load, error) {
	if !caps.Allow(utils.PermLoadsEdit) {
		return nil, ErrForbidden
	}

	fields := map[string]any{
		"truck_id":     nil,
		"trailer_id":   nil,
		"driver_id":    nil,
		"team_id":      nil,
		"updated_date": utils.Today(),
	}
	if unitID != nil {
		links, err := s.Units.Resolve(*unitID)
		if err != nil {
			return nil, err
		}
		fields["truck_id"] = links.TruckID
		fields["trailer_id"] = links.TrailerID
		fields["driver_id"] = links.DriverID
		fields["team_id"] = links.TeamID
		if links.EquipmentType != "" {
			fields["equipment_type"] = links.EquipmentType
		}
	}

	if err := s.applyGuarded(loadID, version, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(loadID)
}

// ----- Reads -----

func (s *LoadService) Get(caps utils.Capabilities, loadID uint) (*entity.Load, error) {
	if !caps.Allow(utils.PermLoadsView) {
		return nil, ErrForbidden
	}
	load, err := s.Repo.GetByID(loadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return load, nil
}

func (s *LoadService) List(caps utils.Capabilities) ([]entity.Load, error) {
	if !caps.Allow(utils.PermLoadsView) {
		return nil, ErrForbidden
	}
	return s.Repo.List()
}

// applyGuarded runs a version-guarded partial update and turns a zero
// rows-affected result into NotFound or StaleWrite.
func (s *LoadService) applyGuarded(loadID, version uint, fields map[string]any) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateFieldsGuard(tx, loadID, version, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			exists, err := s.Repo.Exists(loadID)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNotFound
			}
			return ErrStaleWrite
		}
		return nil
	})
}
