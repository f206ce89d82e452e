package services

import (
	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
)

// Required fields for leaving each stage. Leaving OPEN needs the full pricing
// and date set; every later stage needs only the reference id. The table
// exists so a per-stage tightening is a one-line change.
var stageRequiredFields = func() map[entity.Stage][]string {
	table := map[entity.Stage][]string{
		entity.StageOpen: {
			"load_id", "reference_id", "created_date", "updated_date",
			"load_pay", "total_pay", "per_mile", "total_miles",
		},
	}
	for s := entity.StageCovered; s <= entity.StageInYard; s++ {
		table[s] = []string{"reference_id"}
	}
	return table
}()

func RequiredFields(stage entity.Stage) []string {
	fields := stageRequiredFields[stage]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

func fieldPresent(load *entity.Load, field string) bool {
	switch field {
	case "load_id":
		return load.LoadNumber != ""
	case "reference_id":
		return load.ReferenceID != ""
	case "created_date":
		return load.CreatedDate != ""
	case "updated_date":
		return load.UpdatedDate != ""
	case "load_pay":
		return load.LoadPay != nil
	case "total_pay":
		return load.TotalPay != nil
	case "per_mile":
		return load.PerMile != nil
	case "total_miles":
		return load.TotalMiles != nil
	default:
		return false
	}
}

// MissingFields reports which of the stage's required fields are unset on the
// load. An empty result means the load may leave the stage.
func MissingFields(load *entity.Load, stage entity.Stage) []string {
	var missing []string
	for _, f := range stageRequiredFields[stage] {
		if !fieldPresent(load, f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// NextTransition resolves the target label for advancing the load out of its
// current stage. Pure; no I/O.
//   - unparseable status       -> entity.ErrUnknownStage
//   - terminal stage           -> ErrWorkflowComplete
//   - required fields missing  -> *MissingFieldsError
func NextTransition(load *entity.Load) (from entity.Stage, toLabel string, err error) {
	stage, err := entity.ParseStage(load.LoadStatus)
	if err != nil {
		return 0, "", err
	}
	next, ok := stage.Next()
	if !ok {
		return stage, "", ErrWorkflowComplete
	}
	if missing := MissingFields(load, stage); len(missing) > 0 {
		return stage, "", &MissingFieldsError{Fields: missing}
	}
	return stage, next.Label(), nil
}
