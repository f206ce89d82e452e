package services

import (
	"errors"
	"testing"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
)

func f64(v float64) *float64 { return &v }

func fullyPricedLoad() *entity.Load {
	return &entity.Load{
		LoadNumber:  "L1",
		ReferenceID: "R1",
		CreatedDate: "2026-08-01",
		UpdatedDate: "2026-08-01",
		LoadPay:     f64(1500),
		TotalPay:    f64(1500),
		PerMile:     f64(2.5),
		TotalMiles:  f64(600),
		LoadStatus:  entity.StageOpen.Label(),
	}
}

func TestStageOrderAndLabels(t *testing.T) {
	want := []string{
		"OPEN", "COVERED", "DISPATCHED", "LOADING", "ON ROUTE",
		"UNLOADING", "DELIVERED", "COMPLETED", "IN YARD",
	}
	got := entity.StageLabels()
	if len(got) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage %d: want %q got %q", i, want[i], got[i])
		}
	}

	// labels parse back to their stage
	for i, label := range want {
		s, err := entity.ParseStage(label)
		if err != nil {
			t.Fatalf("parse %q: %v", label, err)
		}
		if int(s) != i {
			t.Errorf("parse %q: want stage %d got %d", label, i, s)
		}
	}

	if _, err := entity.ParseStage("SHIPPED"); !errors.Is(err, entity.ErrUnknownStage) {
		t.Errorf("expected ErrUnknownStage, got %v", err)
	}
}

func TestRequiredFieldsTable(t *testing.T) {
	open := RequiredFields(entity.StageOpen)
	if len(open) != 8 {
		t.Fatalf("OPEN should require 8 fields, got %d: %v", len(open), open)
	}
	for s := entity.StageCovered; s <= entity.StageInYard; s++ {
		fields := RequiredFields(s)
		if len(fields) != 1 || fields[0] != "reference_id" {
			t.Errorf("stage %s: want [reference_id] got %v", s.Label(), fields)
		}
	}
}

func TestMissingFieldsAllOrNothing(t *testing.T) {
	load := fullyPricedLoad()
	if missing := MissingFields(load, entity.StageOpen); len(missing) != 0 {
		t.Fatalf("complete load should have no missing fields, got %v", missing)
	}

	load.LoadPay = nil
	load.ReferenceID = ""
	missing := MissingFields(load, entity.StageOpen)
	want := map[string]bool{"reference_id": true, "load_pay": true}
	if len(missing) != len(want) {
		t.Fatalf("want %d missing fields, got %v", len(want), missing)
	}
	for _, f := range missing {
		if !want[f] {
			t.Errorf("unexpected missing field %q", f)
		}
	}
}

func TestNextTransitionWalksForward(t *testing.T) {
	load := fullyPricedLoad()
	labels := entity.StageLabels()

	for i := 0; i < len(labels)-1; i++ {
		load.LoadStatus = labels[i]
		from, to, err := NextTransition(load)
		if err != nil {
			t.Fatalf("advance out of %s: %v", labels[i], err)
		}
		if from.Label() != labels[i] {
			t.Errorf("from: want %s got %s", labels[i], from.Label())
		}
		if to != labels[i+1] {
			t.Errorf("to: want %s got %s", labels[i+1], to)
		}
	}
}

func TestNextTransitionTerminal(t *testing.T) {
	load := fullyPricedLoad()
	load.LoadStatus = entity.StageInYard.Label()

	_, _, err := NextTransition(load)
	if !errors.Is(err, ErrWorkflowComplete) {
		t.Fatalf("expected ErrWorkflowComplete, got %v", err)
	}
	if load.LoadStatus != entity.StageInYard.Label() {
		t.Errorf("terminal advance must not change status, got %s", load.LoadStatus)
	}
}

func TestNextTransitionNamesEveryMissingField(t *testing.T) {
	load := &entity.Load{LoadStatus: entity.StageOpen.Label()}
	_, _, err := NextTransition(load)

	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 8 {
		t.Errorf("empty load should miss all 8 OPEN fields, got %v", missing.Fields)
	}
}

func TestNextTransitionLaterStagesOnlyNeedReference(t *testing.T) {
	load := &entity.Load{LoadStatus: entity.StageCovered.Label(), ReferenceID: "R1"}
	_, to, err := NextTransition(load)
	if err != nil {
		t.Fatalf("advance out of COVERED: %v", err)
	}
	if to != "DISPATCHED" {
		t.Errorf("want DISPATCHED got %s", to)
	}

	load.ReferenceID = ""
	_, _, err = NextTransition(load)
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "reference_id" {
		t.Errorf("want [reference_id] got %v", missing.Fields)
	}
}
