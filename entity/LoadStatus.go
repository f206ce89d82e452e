package entity

import "errors"

// Stage is the position of a Load in its operational lifecycle. Stages only
// ever move forward, one at a time, in the order listed below.
type Stage int

const (
	StageOpen Stage = iota
	StageCovered
	StageDispatched
	StageLoading
	StageOnRoute
	StageUnloading
	StageDelivered
	StageCompleted
	StageInYard
)

// stageLabels are the canonical wire labels, uppercase and space-separated.
var stageLabels = []string{
	"OPEN",
	"COVERED",
	"DISPATCHED",
	"LOADING",
	"ON ROUTE",
	"UNLOADING",
	"DELIVERED",
	"COMPLETED",
	"IN YARD",
}

var ErrUnknownStage = errors.New("unknown load status")

func (s Stage) Label() string {
	if s < StageOpen || s > StageInYard {
		return ""
	}
	return stageLabels[s]
}

func (s Stage) IsTerminal() bool { return s == StageInYard }

// Next returns the following stage. ok is false on the terminal stage.
func (s Stage) Next() (Stage, bool) {
	if s.IsTerminal() {
		return s, false
	}
	return s + 1, true
}

func ParseStage(label string) (Stage, error) {
	for i, l := range stageLabels {
		if l == label {
			return Stage(i), nil
		}
	}
	return 0, ErrUnknownStage
}

func StageLabels() []string {
	out := make([]string, len(stageLabels))
	copy(out, stageLabels)
	return out
}
